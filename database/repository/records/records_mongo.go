package recordsRepo

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

// MongoRecordRepo implements RecordRepository using MongoDB.
type MongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo creates a new instance of RecordRepository using MongoDB.
func NewMongoRecordRepo() RecordRepository {
	repo := &MongoRecordRepo{coll: database.Collection("medical_records")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRecordRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "recordedAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new medical record.
func (r *MongoRecordRepo) Create(record *models.MedicalRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

// GetByID retrieves a medical record by id. Returns (nil, nil) when not found.
func (r *MongoRecordRepo) GetByID(id string) (*models.MedicalRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.MedicalRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch medical record %s: %w", id, err)
	}
	return &record, nil
}

// ListByPatient returns a patient's medical records, newest first.
func (r *MongoRecordRepo) ListByPatient(patientID string) ([]models.MedicalRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	for cursor.Next(ctx) {
		var rec models.MedicalRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode medical record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete removes a medical record.
func (r *MongoRecordRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete medical record %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("medical record %s not found", id)
	}
	return nil
}
