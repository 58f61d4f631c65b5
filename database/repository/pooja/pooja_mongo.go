package poojaRepo

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

// MongoPoojaRepo implements PoojaRepository using MongoDB.
type MongoPoojaRepo struct {
	coll *mongo.Collection
}

// NewMongoPoojaRepo creates a new instance of PoojaRepository using MongoDB.
func NewMongoPoojaRepo() PoojaRepository {
	return &MongoPoojaRepo{coll: database.DB().Collection("poojas")}
}

func (r *MongoPoojaRepo) GetAllActive(ctx context.Context) ([]models.Pooja, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve poojas: %w", err)
	}
	defer cursor.Close(ctx)
	var poojas []models.Pooja
	if err := cursor.All(ctx, &poojas); err != nil {
		return nil, err
	}
	return poojas, nil
}

func (r *MongoPoojaRepo) GetByID(ctx context.Context, id string) (*models.Pooja, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoPoojaRepo) GetBySlug(ctx context.Context, slug string) (*models.Pooja, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoPoojaRepo) findOne(ctx context.Context, filter bson.M) (*models.Pooja, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var pooja models.Pooja
	if err := r.coll.FindOne(ctx, filter).Decode(&pooja); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pooja, nil
}

func (r *MongoPoojaRepo) Create(ctx context.Context, pooja *models.Pooja) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if pooja.ID == "" {
		pooja.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, pooja); err != nil {
		return fmt.Errorf("failed to create pooja: %w", err)
	}
	return nil
}
