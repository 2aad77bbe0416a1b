package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name           string   `json:"name" validate:"required,min=3,max=100"`
	Specialty      string   `json:"specialty" validate:"required,min=3,max=50"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	Phone          string   `json:"phone" validate:"omitempty,min=10,max=20"`
	AvailableTimes []string `json:"available_times" validate:"omitempty,dive,min=5,max=5"`
}

type UpdateDoctorRequest struct {
	ID             int64    `json:"id" validate:"required,min=1"`
	Name           string   `json:"name" validate:"omitempty,min=3,max=100"`
	Specialty      string   `json:"specialty" validate:"omitempty,min=3,max=50"`
	Phone          string   `json:"phone" validate:"omitempty,min=10,max=20"`
	Password       string   `json:"password" validate:"omitempty,min=6"`
	AvailableTimes []string `json:"available_times" validate:"omitempty,dive,min=5,max=5"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Specialty      string    `json:"specialty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	AvailableTimes []string  `json:"available_times,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type AvailabilityResponse struct {
	Availability []string `json:"availability"`
}
