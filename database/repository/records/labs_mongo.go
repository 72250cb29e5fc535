package recordsRepo

import (
	"fmt"
	"time"

	"caresync/database"
	"caresync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLabRepo implements LabRepository using MongoDB.
type MongoLabRepo struct {
	coll *mongo.Collection
}

// NewMongoLabRepo creates a new instance of LabRepository using MongoDB.
func NewMongoLabRepo() LabRepository {
	repo := &MongoLabRepo{coll: database.Collection("lab_results")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLabRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "reportedAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new lab result.
func (r *MongoLabRepo) Create(result *models.LabResult) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	result.CreatedAt = now
	result.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("failed to create lab result: %w", err)
	}
	return nil
}

// GetByID retrieves a lab result by id. Returns (nil, nil) when not found.
func (r *MongoLabRepo) GetByID(id string) (*models.LabResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var result models.LabResult
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&result); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lab result %s: %w", id, err)
	}
	return &result, nil
}

// ListByPatient returns a patient's lab results, newest first.
func (r *MongoLabRepo) ListByPatient(patientID string) ([]models.LabResult, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "reportedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab results: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.LabResult
	for cursor.Next(ctx) {
		var lr models.LabResult
		if err := cursor.Decode(&lr); err != nil {
			return nil, fmt.Errorf("failed to decode lab result: %w", err)
		}
		results = append(results, lr)
	}
	return results, nil
}

// Delete removes a lab result.
func (r *MongoLabRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lab result %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("lab result %s not found", id)
	}
	return nil
}
