package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"caresync/database"
	"caresync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReminderRepository defines persistence operations for scheduled reminders.
type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	GetByID(id string) (*models.Reminder, error)
	ListByUser(userID string) ([]models.Reminder, error)
	MarkSent(id string) error
	Delete(id string) error
}

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo creates a new instance of ReminderRepository using MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	repo := &MongoReminderRepo{coll: database.Collection("reminders")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReminderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "fireAt", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new reminder.
func (r *MongoReminderRepo) Create(reminder *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, reminder); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetByID retrieves a reminder by id. Returns (nil, nil) when not found.
func (r *MongoReminderRepo) GetByID(id string) (*models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reminder models.Reminder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reminder); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reminder %s: %w", id, err)
	}
	return &reminder, nil
}

// ListByUser returns a user's reminders ordered by fire time.
func (r *MongoReminderRepo) ListByUser(userID string) ([]models.Reminder, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fireAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	for cursor.Next(ctx) {
		var rem models.Reminder
		if err := cursor.Decode(&rem); err != nil {
			return nil, fmt.Errorf("failed to decode reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}

// MarkSent flags a reminder as delivered.
func (r *MongoReminderRepo) MarkSent(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updates := bson.M{"sent": true, "updatedAt": time.Now()}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updates}); err != nil {
		return fmt.Errorf("failed to mark reminder %s sent: %w", id, err)
	}
	return nil
}

// Delete removes a reminder.
func (r *MongoReminderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("reminder %s not found", id)
	}
	return nil
}
