package handler

import (
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// bloodRequestBody mirrors the blood-request form; requiredDate
// arrives as a YYYY-MM-DD string.
type bloodRequestBody struct {
	RequesterName   string `json:"requesterName"   validate:"required"`
	RequesterPhone  string `json:"requesterPhone"  validate:"required"`
	RequesterEmail  string `json:"requesterEmail"  validate:"omitempty,email"`
	PatientName     string `json:"patientName"     validate:"required"`
	PatientAge      int    `json:"patientAge"      validate:"gte=0"`
	PatientGender   string `json:"patientGender"`
	BloodGroup      string `json:"bloodGroup"      validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsRequired   int    `json:"unitsRequired"   validate:"required,gt=0"`
	HospitalName    string `json:"hospitalName"    validate:"required"`
	HospitalAddress string `json:"hospitalAddress" validate:"required"`
	Location        string `json:"location"        validate:"required"`
	RequiredDate    string `json:"requiredDate"    validate:"required,datetime=2006-01-02"`
}

func (b bloodRequestBody) toInput() (ports.RequestInput, error) {
	required, err := time.Parse(dateLayout, b.RequiredDate)
	if err != nil {
		return ports.RequestInput{}, err
	}

	return ports.RequestInput{
		RequesterName:   b.RequesterName,
		RequesterPhone:  b.RequesterPhone,
		RequesterEmail:  b.RequesterEmail,
		PatientName:     b.PatientName,
		PatientAge:      b.PatientAge,
		PatientGender:   b.PatientGender,
		BloodGroup:      b.BloodGroup,
		UnitsRequired:   b.UnitsRequired,
		HospitalName:    b.HospitalName,
		HospitalAddress: b.HospitalAddress,
		Location:        b.Location,
		RequiredDate:    required,
	}, nil
}

// notifyDonorsRequest matches the original boundary shape: matching
// criteria at the top level, full request details nested.
type notifyDonorsRequest struct {
	BloodGroup     string           `json:"bloodGroup"     validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Location       string           `json:"location"       validate:"required"`
	RequestDetails bloodRequestBody `json:"requestDetails" validate:"required"`
}

type requestResponse struct {
	RequestID       string `json:"request_id"`
	RequesterName   string `json:"requesterName"`
	RequesterPhone  string `json:"requesterPhone"`
	PatientName     string `json:"patientName"`
	PatientAge      int    `json:"patientAge"`
	BloodGroup      string `json:"bloodGroup"`
	UnitsRequired   int    `json:"unitsRequired"`
	HospitalName    string `json:"hospitalName"`
	HospitalAddress string `json:"hospitalAddress"`
	Location        string `json:"location"`
	RequiredDate    string `json:"requiredDate"`
	CreatedAt       string `json:"created_at"`
}

func toRequestResponses(requests []domain.Request) []requestResponse {
	out := make([]requestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, requestResponse{
			RequestID:       r.ID,
			RequesterName:   r.RequesterName,
			RequesterPhone:  r.RequesterPhone,
			PatientName:     r.PatientName,
			PatientAge:      r.PatientAge,
			BloodGroup:      string(r.BloodGroup),
			UnitsRequired:   r.UnitsRequired,
			HospitalName:    r.HospitalName,
			HospitalAddress: r.HospitalAddress,
			Location:        r.Location,
			RequiredDate:    r.RequiredDate.Format(dateLayout),
			CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// donationRequest keeps the original form's field names.
type donationRequest struct {
	DonorName      string `json:"d_name"  validate:"required"`
	DonorEmail     string `json:"d_email" validate:"required,email"`
	PatientName    string `json:"p_name"  validate:"required"`
	RequesterEmail string `json:"u_email" validate:"required,email"`
}
