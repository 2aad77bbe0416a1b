package repository

import (
	"context"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type prescriptionRepository struct {
	collection *mongo.Collection
}

func NewPrescriptionRepository(db *mongo.Database) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{
		collection: db.Collection(entity.PrescriptionCollection),
	}
}

func (r *prescriptionRepository) Insert(ctx context.Context, prescription *entity.Prescription) error {
	prescription.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, prescription)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		prescription.ID = oid
	}
	return nil
}

func (r *prescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) ([]entity.Prescription, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"appointment_id": appointmentID},
		options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prescriptions []entity.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}
