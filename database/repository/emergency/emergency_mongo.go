package emergencyRepo

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

// EmergencyRepository defines persistence operations for emergency contacts
// and SOS events.
type EmergencyRepository interface {
	CreateContact(contact *models.EmergencyContact) error
	GetContact(id string) (*models.EmergencyContact, error)
	ListContacts(patientID string) ([]models.EmergencyContact, error)
	DeleteContact(id string) error
	RecordSOS(event *models.SOSEvent) error
	ListSOSEvents(patientID string) ([]models.SOSEvent, error)
}

// MongoEmergencyRepo implements EmergencyRepository using MongoDB.
type MongoEmergencyRepo struct {
	contacts *mongo.Collection
	events   *mongo.Collection
}

// NewMongoEmergencyRepo creates a new instance of EmergencyRepository using MongoDB.
func NewMongoEmergencyRepo() EmergencyRepository {
	repo := &MongoEmergencyRepo{
		contacts: database.Collection("emergency_contacts"),
		events:   database.Collection("sos_events"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmergencyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	contactIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "priority", Value: 1}}},
	}
	if _, err := r.contacts.Indexes().CreateMany(ctx, contactIndexes); err != nil {
		return fmt.Errorf("failed to create contact indexes: %w", err)
	}

	eventIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "triggeredAt", Value: -1}}},
	}
	if _, err := r.events.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}

// CreateContact inserts a new emergency contact.
func (r *MongoEmergencyRepo) CreateContact(contact *models.EmergencyContact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := r.contacts.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create emergency contact: %w", err)
	}
	return nil
}

// GetContact retrieves a contact by id. Returns (nil, nil) when not found.
func (r *MongoEmergencyRepo) GetContact(id string) (*models.EmergencyContact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contact models.EmergencyContact
	if err := r.contacts.FindOne(ctx, bson.M{"id": id}).Decode(&contact); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch emergency contact %s: %w", id, err)
	}
	return &contact, nil
}

// ListContacts returns a patient's emergency contacts ordered by priority.
func (r *MongoEmergencyRepo) ListContacts(patientID string) ([]models.EmergencyContact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}})
	cursor, err := r.contacts.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.EmergencyContact
	for cursor.Next(ctx) {
		var c models.EmergencyContact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode emergency contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// DeleteContact removes an emergency contact.
func (r *MongoEmergencyRepo) DeleteContact(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.contacts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete emergency contact %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("emergency contact %s not found", id)
	}
	return nil
}

// RecordSOS persists a triggered SOS event.
func (r *MongoEmergencyRepo) RecordSOS(event *models.SOSEvent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to record SOS event: %w", err)
	}
	return nil
}

// ListSOSEvents returns a patient's SOS history, newest first.
func (r *MongoEmergencyRepo) ListSOSEvents(patientID string) ([]models.SOSEvent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "triggeredAt", Value: -1}})
	cursor, err := r.events.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list SOS events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.SOSEvent
	for cursor.Next(ctx) {
		var e models.SOSEvent
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode SOS event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
