package entity

// Role claim values carried in tokens. Comparison is case-insensitive
// at validation time.
const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)
