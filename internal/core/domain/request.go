package domain

import "time"

// Request describes a patient's need for blood of a given group at a
// given place and time. Requests are immutable once recorded.
type Request struct {
	ID              string     `json:"request_id" bson:"_id,omitempty"`
	RequesterName   string     `json:"requesterName" bson:"requester_name"`
	RequesterPhone  string     `json:"requesterPhone" bson:"requester_phone"`
	RequesterEmail  string     `json:"requesterEmail,omitempty" bson:"requester_email,omitempty"`
	PatientName     string     `json:"patientName" bson:"patient_name"`
	PatientAge      int        `json:"patientAge" bson:"patient_age"`
	PatientGender   string     `json:"patientGender,omitempty" bson:"patient_gender,omitempty"`
	BloodGroup      BloodGroup `json:"bloodGroup" bson:"blood_group"`
	UnitsRequired   int        `json:"unitsRequired" bson:"units_required"`
	HospitalName    string     `json:"hospitalName" bson:"hospital_name"`
	HospitalAddress string     `json:"hospitalAddress" bson:"hospital_address"`
	Location        string     `json:"location" bson:"location"`
	RequiredDate    time.Time  `json:"requiredDate" bson:"required_date"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}
