// models/user.go
package models

import "time"

// Platform roles.
const (
	RolePatient    = "PATIENT"
	RoleDoctor     = "DOCTOR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User represents a platform user.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DashboardPath maps a role to its dashboard root. It is the redirect target
// when a non-patient attempts a patient-only action.
func DashboardPath(role string) string {
	switch role {
	case RoleAdmin, RoleSuperAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctor/dashboard"
	default:
		return "/"
	}
}
