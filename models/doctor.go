package models

// Doctor represents a doctor profile as shown in the booking flow.
type Doctor struct {
	ID             string            `bson:"id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Designation    string            `bson:"designation,omitempty" json:"designation,omitempty"`
	ProfilePhoto   string            `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	AppointmentFee float64           `bson:"appointmentFee" json:"appointmentFee"`
	AverageRating  float64           `bson:"averageRating,omitempty" json:"averageRating,omitempty"`
	Specialties    []DoctorSpecialty `bson:"specialties,omitempty" json:"specialties,omitempty"`
}

// HasSpecialty reports whether the doctor carries the given specialty
// association.
func (d Doctor) HasSpecialty(specialtyID string) bool {
	for _, s := range d.Specialties {
		if s.SpecialtyID == specialtyID {
			return true
		}
	}
	return false
}
