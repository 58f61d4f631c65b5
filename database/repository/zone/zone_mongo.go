package zoneRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"poojaconnect/database"
	"poojaconnect/models"
)

// MongoZoneRepo implements ZoneRepository using MongoDB.
type MongoZoneRepo struct {
	coll *mongo.Collection
}

// NewMongoZoneRepo creates a new instance of ZoneRepository using MongoDB.
func NewMongoZoneRepo() ZoneRepository {
	return &MongoZoneRepo{coll: database.DB().Collection("zones")}
}

func (r *MongoZoneRepo) GetAllActive(ctx context.Context) ([]models.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve zones: %w", err)
	}
	defer cursor.Close(ctx)
	var zones []models.Zone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *MongoZoneRepo) GetByID(ctx context.Context, id string) (*models.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var zone models.Zone
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&zone); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

func (r *MongoZoneRepo) Create(ctx context.Context, zone *models.Zone) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if zone.ID == "" {
		zone.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, zone); err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

func (r *MongoZoneRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
