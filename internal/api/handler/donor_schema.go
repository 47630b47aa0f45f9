package handler

import (
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

const dateLayout = "2006-01-02"

// registerDonorRequest mirrors the donor registration form. Dates
// arrive as plain YYYY-MM-DD strings.
type registerDonorRequest struct {
	Name             string `json:"name"             validate:"required"`
	Gender           string `json:"gender"           validate:"required"`
	Phone            string `json:"phone_no"         validate:"required"`
	Email            string `json:"email"            validate:"required,email"`
	BloodGroup       string `json:"bloodGroup"       validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Location         string `json:"location"         validate:"required"`
	DOB              string `json:"dob"              validate:"required,datetime=2006-01-02"`
	LastDonationDate string `json:"lastDonationDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r registerDonorRequest) toInput() (ports.RegisterDonorInput, error) {
	dob, err := time.Parse(dateLayout, r.DOB)
	if err != nil {
		return ports.RegisterDonorInput{}, err
	}

	var last *time.Time
	if r.LastDonationDate != "" {
		t, err := time.Parse(dateLayout, r.LastDonationDate)
		if err != nil {
			return ports.RegisterDonorInput{}, err
		}
		last = &t
	}

	return ports.RegisterDonorInput{
		Name:             r.Name,
		Gender:           r.Gender,
		Phone:            r.Phone,
		Email:            r.Email,
		BloodGroup:       r.BloodGroup,
		Location:         r.Location,
		DOB:              dob,
		LastDonationDate: last,
	}, nil
}

// donorResponse is the transport view of a donor; dates are rendered
// back as YYYY-MM-DD.
type donorResponse struct {
	DonorID            string `json:"donor_id"`
	UserID             string `json:"user_id"`
	Username           string `json:"username"`
	Name               string `json:"name"`
	Gender             string `json:"gender"`
	Phone              string `json:"phone_no"`
	Email              string `json:"email"`
	BloodGroup         string `json:"bloodGroup"`
	Location           string `json:"location"`
	DOB                string `json:"dob"`
	LastDonationDate   string `json:"lastDonationDate,omitempty"`
	AvailabilityStatus bool   `json:"availabilityStatus"`
}

func toDonorResponse(d domain.Donor) donorResponse {
	resp := donorResponse{
		DonorID:            d.ID,
		UserID:             d.UserID,
		Username:           d.Username,
		Name:               d.Name,
		Gender:             d.Gender,
		Phone:              d.Phone,
		Email:              d.Email,
		BloodGroup:         string(d.BloodGroup),
		Location:           d.Location,
		DOB:                d.DOB.Format(dateLayout),
		AvailabilityStatus: d.AvailabilityStatus,
	}
	if d.LastDonationDate != nil && !d.LastDonationDate.IsZero() {
		resp.LastDonationDate = d.LastDonationDate.Format(dateLayout)
	}
	return resp
}

func toDonorResponses(donors []domain.Donor) []donorResponse {
	out := make([]donorResponse, 0, len(donors))
	for _, d := range donors {
		out = append(out, toDonorResponse(d))
	}
	return out
}
