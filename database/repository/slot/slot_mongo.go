package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poojaconnect/database"
	"poojaconnect/models"
)

// MongoSlotRepo implements SlotRepository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo creates a new instance of SlotRepository using MongoDB.
func NewMongoSlotRepo() SlotRepository {
	return &MongoSlotRepo{coll: database.DB().Collection("availability_slots")}
}

func (r *MongoSlotRepo) GetByPriestID(ctx context.Context, priestID string) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"priestId": priestID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availability slots: %w", err)
	}
	defer cursor.Close(ctx)
	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *MongoSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create availability slots: %w", err)
	}
	return nil
}

// Reserve flips isBooked false->true in one FindOneAndUpdate. The filter
// carries the unbooked check, so a concurrent request that already consumed
// the slot makes this call miss.
func (r *MongoSlotRepo) Reserve(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "isBooked": false}
	update := bson.M{"$set": bson.M{"isBooked": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.AvailabilitySlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err == nil {
		return &slot, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to reserve slot %s: %w", slotID, err)
	}

	// The miss is either a lost race or a bad ID; look the slot up to tell.
	count, countErr := r.coll.CountDocuments(ctx, bson.M{"id": slotID})
	if countErr != nil {
		return nil, fmt.Errorf("failed to reserve slot %s: %w", slotID, countErr)
	}
	if count == 0 {
		return nil, ErrSlotNotFound
	}
	return nil, ErrSlotAlreadyBooked
}

func (r *MongoSlotRepo) CountUpcoming(ctx context.Context, priestID string, from time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"priestId": priestID, "startTime": bson.M{"$gte": from}}
	return r.coll.CountDocuments(ctx, filter)
}
