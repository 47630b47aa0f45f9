package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

const collectionDonations = "donations"

// DonationRepository implements ports.DonationRepository on MongoDB.
type DonationRepository struct {
	col *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{col: db.Collection(collectionDonations)}
}

type donationDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	DonorName      string             `bson:"donor_name"`
	DonorEmail     string             `bson:"donor_email"`
	PatientName    string             `bson:"patient_name"`
	RequesterEmail string             `bson:"requester_email"`
	RecordedAt     time.Time          `bson:"recorded_at"`
}

func (r *DonationRepository) Create(ctx context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := donationDoc{
		DonorName:      rec.DonorName,
		DonorEmail:     rec.DonorEmail,
		PatientName:    rec.PatientName,
		RequesterEmail: rec.RequesterEmail,
		RecordedAt:     rec.RecordedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert donation record: %w", err)
	}

	created := *rec
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}
