package prescriptionRepo

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

// PrescriptionRepository defines persistence operations for prescriptions.
type PrescriptionRepository interface {
	Create(p *models.Prescription) error
	GetByID(id string) (*models.Prescription, error)
	ListByPatient(patientID string) ([]models.Prescription, error)
	ListByDoctor(doctorID string) ([]models.Prescription, error)
	// ListActiveByPatient returns the patient's active prescriptions only.
	ListActiveByPatient(patientID string) ([]models.Prescription, error)
	UpdateStatus(id string, status models.PrescriptionStatus) (*models.Prescription, error)
}

// MongoPrescriptionRepo implements PrescriptionRepository using MongoDB.
type MongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo creates a new instance of PrescriptionRepository using MongoDB.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	repo := &MongoPrescriptionRepo{coll: database.Collection("prescriptions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPrescriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "issuedAt", Value: -1}}},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "issuedAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new prescription.
func (r *MongoPrescriptionRepo) Create(p *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

// GetByID retrieves a prescription by id. Returns (nil, nil) when not found.
func (r *MongoPrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Prescription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch prescription %s: %w", id, err)
	}
	return &p, nil
}

// ListByPatient returns a patient's prescriptions, newest first.
func (r *MongoPrescriptionRepo) ListByPatient(patientID string) ([]models.Prescription, error) {
	return r.list(bson.M{"patientId": patientID})
}

// ListByDoctor returns prescriptions issued by a doctor, newest first.
func (r *MongoPrescriptionRepo) ListByDoctor(doctorID string) ([]models.Prescription, error) {
	return r.list(bson.M{"doctorId": doctorID})
}

// ListActiveByPatient returns the patient's active prescriptions only.
func (r *MongoPrescriptionRepo) ListActiveByPatient(patientID string) ([]models.Prescription, error) {
	return r.list(bson.M{"patientId": patientID, "status": string(models.PrescriptionActive)})
}

func (r *MongoPrescriptionRepo) list(filter bson.M) ([]models.Prescription, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "issuedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	for cursor.Next(ctx) {
		var p models.Prescription
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode prescription: %w", err)
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, nil
}

// UpdateStatus transitions a prescription's status.
func (r *MongoPrescriptionRepo) UpdateStatus(id string, status models.PrescriptionStatus) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updates := bson.M{"status": status, "updatedAt": time.Now()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Prescription
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update prescription %s: %w", id, err)
	}
	return &p, nil
}
