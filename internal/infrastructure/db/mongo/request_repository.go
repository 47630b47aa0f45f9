package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

const collectionRequests = "requests"

// RequestRepository implements ports.RequestRepository on MongoDB.
type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	RequesterName   string             `bson:"requester_name"`
	RequesterPhone  string             `bson:"requester_phone"`
	RequesterEmail  string             `bson:"requester_email,omitempty"`
	PatientName     string             `bson:"patient_name"`
	PatientAge      int                `bson:"patient_age"`
	PatientGender   string             `bson:"patient_gender,omitempty"`
	BloodGroup      string             `bson:"blood_group"`
	UnitsRequired   int                `bson:"units_required"`
	HospitalName    string             `bson:"hospital_name"`
	HospitalAddress string             `bson:"hospital_address"`
	Location        string             `bson:"location"`
	RequiredDate    time.Time          `bson:"required_date"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := requestDoc{
		RequesterName:   req.RequesterName,
		RequesterPhone:  req.RequesterPhone,
		RequesterEmail:  req.RequesterEmail,
		PatientName:     req.PatientName,
		PatientAge:      req.PatientAge,
		PatientGender:   req.PatientGender,
		BloodGroup:      string(req.BloodGroup),
		UnitsRequired:   req.UnitsRequired,
		HospitalName:    req.HospitalName,
		HospitalAddress: req.HospitalAddress,
		Location:        req.Location,
		RequiredDate:    req.RequiredDate,
		CreatedAt:       req.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns all recorded requests, newest first.
func (r *RequestRepository) List(ctx context.Context) ([]domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}

	requests := make([]domain.Request, 0, len(docs))
	for _, d := range docs {
		requests = append(requests, domain.Request{
			ID:              d.ID.Hex(),
			RequesterName:   d.RequesterName,
			RequesterPhone:  d.RequesterPhone,
			RequesterEmail:  d.RequesterEmail,
			PatientName:     d.PatientName,
			PatientAge:      d.PatientAge,
			PatientGender:   d.PatientGender,
			BloodGroup:      domain.BloodGroup(d.BloodGroup),
			UnitsRequired:   d.UnitsRequired,
			HospitalName:    d.HospitalName,
			HospitalAddress: d.HospitalAddress,
			Location:        d.Location,
			RequiredDate:    d.RequiredDate,
			CreatedAt:       d.CreatedAt,
		})
	}
	return requests, nil
}
