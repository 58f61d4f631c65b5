package priestRepo

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

// MongoPriestRepo implements PriestRepository using MongoDB. Priests and
// their zone links live in two collections.
type MongoPriestRepo struct {
	coll     *mongo.Collection
	zoneColl *mongo.Collection
}

// NewMongoPriestRepo creates a new instance of PriestRepository using MongoDB.
func NewMongoPriestRepo() PriestRepository {
	db := database.DB()
	return &MongoPriestRepo{
		coll:     db.Collection("priests"),
		zoneColl: db.Collection("priest_zones"),
	}
}

func (r *MongoPriestRepo) GetActive(ctx context.Context) ([]models.Priest, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *MongoPriestRepo) GetAll(ctx context.Context) ([]models.Priest, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPriestRepo) find(ctx context.Context, filter bson.M) ([]models.Priest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve priests: %w", err)
	}
	defer cursor.Close(ctx)
	var priests []models.Priest
	if err := cursor.All(ctx, &priests); err != nil {
		return nil, err
	}
	return priests, nil
}

func (r *MongoPriestRepo) GetByID(ctx context.Context, id string) (*models.Priest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var priest models.Priest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&priest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &priest, nil
}

func (r *MongoPriestRepo) Create(ctx context.Context, priest *models.Priest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if priest.ID == "" {
		priest.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, priest); err != nil {
		return fmt.Errorf("failed to create priest: %w", err)
	}
	return nil
}

func (r *MongoPriestRepo) CreateZoneLink(ctx context.Context, link *models.PriestZone) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if _, err := r.zoneColl.InsertOne(ctx, link); err != nil {
		return fmt.Errorf("failed to create priest zone link: %w", err)
	}
	return nil
}

func (r *MongoPriestRepo) GetZoneLinks(ctx context.Context, priestID string) ([]models.PriestZone, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cursor, err := r.zoneColl.Find(ctx, bson.M{"priestId": priestID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve priest zone links: %w", err)
	}
	defer cursor.Close(ctx)
	var links []models.PriestZone
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}
