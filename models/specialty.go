package models

import "encoding/json"

// Specialty is immutable reference data used to filter doctors.
type Specialty struct {
	ID    string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// DoctorSpecialty links a doctor to a specialty. Older API versions keyed the
// specialty reference as "specialityId" or "specialitiesId"; decoding accepts
// all three and normalizes to SpecialtyID so nothing downstream has to care.
type DoctorSpecialty struct {
	SpecialtyID string     `bson:"specialtyId" json:"specialtyId"`
	Specialty   *Specialty `bson:"specialty,omitempty" json:"specialty,omitempty"`
}

func (ds *DoctorSpecialty) UnmarshalJSON(data []byte) error {
	var raw struct {
		SpecialtyID    string     `json:"specialtyId"`
		SpecialityID   string     `json:"specialityId"`
		SpecialitiesID string     `json:"specialitiesId"`
		Specialty      *Specialty `json:"specialty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ds.SpecialtyID = raw.SpecialtyID
	if ds.SpecialtyID == "" {
		ds.SpecialtyID = raw.SpecialityID
	}
	if ds.SpecialtyID == "" {
		ds.SpecialtyID = raw.SpecialitiesID
	}
	ds.Specialty = raw.Specialty
	return nil
}
