package domain

import "time"

// UserRole enumerates supported account roles.
type UserRole string

const (
	UserRoleHospitalStaff UserRole = "hospital_staff"
	UserRoleDonor         UserRole = "donor"
)

// Valid reports whether the role is one of the supported values.
func (r UserRole) Valid() bool {
	return r == UserRoleHospitalStaff || r == UserRoleDonor
}

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"AB+": {}, "AB-": {},
	"O+": {}, "O-": {},
}

// ValidBloodType reports whether the value is one of the eight ABO/Rh groups.
func ValidBloodType(bt string) bool {
	_, ok := bloodTypes[bt]
	return ok
}

// User represents a registered account: hospital staff or donor.
// Donor-specific fields stay zero-valued for hospital staff and vice versa.
type User struct {
	ID               string
	Email            string
	PasswordHash     string
	Name             string
	Role             UserRole
	Phone            string
	HospitalName     string
	HospitalAddress  string
	BloodType        string
	City             string
	Latitude         *float64
	Longitude        *float64
	LastDonationDate *time.Time
	IsAvailable      bool
	CreatedAt        time.Time
}

// IsDonor reports whether the account is a donor.
func (u User) IsDonor() bool {
	return u.Role == UserRoleDonor
}

// HasCoordinates reports whether both latitude and longitude are set.
func (u User) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil
}
