package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

const collectionDonors = "donors"

// DonorRepository implements ports.DonorRepository on MongoDB.
// Location filters match the full field case-insensitively; the
// service layer trims whitespace before querying.
type DonorRepository struct {
	col *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{col: db.Collection(collectionDonors)}
}

type donorDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserID             string             `bson:"user_id"`
	Username           string             `bson:"username"`
	Name               string             `bson:"name"`
	Gender             string             `bson:"gender"`
	Phone              string             `bson:"phone_no"`
	Email              string             `bson:"email"`
	BloodGroup         string             `bson:"blood_group"`
	Location           string             `bson:"location"`
	DOB                time.Time          `bson:"dob"`
	LastDonationDate   *time.Time         `bson:"last_donation_date,omitempty"`
	AvailabilityStatus bool               `bson:"availability_status"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

func (r *DonorRepository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := donorDoc{
		UserID:             donor.UserID,
		Username:           donor.Username,
		Name:               donor.Name,
		Gender:             donor.Gender,
		Phone:              donor.Phone,
		Email:              donor.Email,
		BloodGroup:         string(donor.BloodGroup),
		Location:           donor.Location,
		DOB:                donor.DOB,
		LastDonationDate:   donor.LastDonationDate,
		AvailabilityStatus: donor.AvailabilityStatus,
		CreatedAt:          donor.CreatedAt,
		UpdatedAt:          donor.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert donor: %w", err)
	}

	created := *donor
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DonorRepository) FindByGroupAndLocation(ctx context.Context, group domain.BloodGroup, location string) ([]domain.Donor, error) {
	return r.find(ctx, bson.M{
		"blood_group": string(group),
		"location":    locationFilter(location),
	})
}

func (r *DonorRepository) FindByGroup(ctx context.Context, group domain.BloodGroup) ([]domain.Donor, error) {
	return r.find(ctx, bson.M{"blood_group": string(group)})
}

func (r *DonorRepository) find(ctx context.Context, filter bson.M) ([]domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find donors: %w", err)
	}
	defer cur.Close(ctx)

	var docs []donorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode donors: %w", err)
	}

	donors := make([]domain.Donor, 0, len(docs))
	for _, d := range docs {
		donors = append(donors, *d.toDomain())
	}
	return donors, nil
}

// EnsureIndexes creates the matching-query indexes on the donors
// collection.
func (r *DonorRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "blood_group", Value: 1}, {Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (d donorDoc) toDomain() *domain.Donor {
	return &domain.Donor{
		ID:                 d.ID.Hex(),
		UserID:             d.UserID,
		Username:           d.Username,
		Name:               d.Name,
		Gender:             d.Gender,
		Phone:              d.Phone,
		Email:              d.Email,
		BloodGroup:         domain.BloodGroup(d.BloodGroup),
		Location:           d.Location,
		DOB:                d.DOB,
		LastDonationDate:   d.LastDonationDate,
		AvailabilityStatus: d.AvailabilityStatus,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// locationFilter builds an anchored case-insensitive exact match so
// stored locations with historic casing still hit.
func locationFilter(location string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(location) + "$",
		Options: "i",
	}
}
