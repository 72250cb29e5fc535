package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	repo := &MongoScheduleRepo{coll: database.Collection("schedules")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique provider index; one template per doctor.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "providerId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByProvider returns the provider's weekly template, or (nil, nil) when the
// provider has none configured.
func (r *MongoScheduleRepo) GetByProvider(providerID string) (*models.WeeklySchedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	if err := r.coll.FindOne(ctx, bson.M{"providerId": providerID}).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for provider %s: %w", providerID, err)
	}
	return &schedule, nil
}

// Upsert replaces the provider's template, creating it if absent.
func (r *MongoScheduleRepo) Upsert(schedule *models.WeeklySchedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"providerId": schedule.ProviderID}, schedule, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule for provider %s: %w", schedule.ProviderID, err)
	}
	return nil
}

// Delete removes the provider's template.
func (r *MongoScheduleRepo) Delete(providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"providerId": providerID}); err != nil {
		return fmt.Errorf("failed to delete schedule for provider %s: %w", providerID, err)
	}
	return nil
}
