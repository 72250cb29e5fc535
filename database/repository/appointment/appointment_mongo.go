package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: database.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates query indexes plus the unique (providerId, scheduledAt)
// constraint that closes the read-then-book race at the write boundary.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"status": bson.M{"$ne": string(models.AppointmentCancelled)}},
			),
		},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "scheduledAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a new appointment.
func (r *MongoAppointmentRepo) Insert(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID. Returns (nil, nil) when not found.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListByProviderBetween returns the provider's appointments scheduled within
// [from, to], boundaries inclusive.
func (r *MongoAppointmentRepo) ListByProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"providerId":  providerID,
		"scheduledAt": bson.M{"$gte": from, "$lte": to},
		"status":      bson.M{"$ne": string(models.AppointmentCancelled)},
	}
	return r.list(filter)
}

// ListByPatient returns all of a patient's appointments, newest first.
func (r *MongoAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	return r.list(bson.M{"patientId": patientID})
}

// ListByProvider returns all of a provider's appointments.
func (r *MongoAppointmentRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	return r.list(bson.M{"providerId": providerID})
}

func (r *MongoAppointmentRepo) list(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// UpdateStatus transitions an appointment's status and optionally appends notes.
func (r *MongoAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus, notes string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updates := bson.M{"status": status, "updatedAt": time.Now()}
	if notes != "" {
		updates["notes"] = notes
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Delete removes an appointment document.
func (r *MongoAppointmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// DistinctProvidersForPatient returns ids of every doctor the patient has booked with.
func (r *MongoAppointmentRepo) DistinctProvidersForPatient(patientID string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "providerId", bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for patient %s: %w", patientID, err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
