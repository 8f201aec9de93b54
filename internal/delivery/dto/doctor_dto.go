package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DaySchedule struct {
	Day   string   `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Slots []string `json:"slots"`
}

type CreateDoctorRequest struct {
	Name         string        `json:"name" validate:"required,max=255"`
	Specialty    string        `json:"specialty" validate:"required,max=100"`
	Bio          string        `json:"bio"`
	ImageURL     string        `json:"image_url"`
	Availability []DaySchedule `json:"availability" validate:"dive"`
}

type UpdateDoctorRequest struct {
	Name         string        `json:"name" validate:"required,max=255"`
	Specialty    string        `json:"specialty" validate:"required,max=100"`
	Bio          string        `json:"bio"`
	ImageURL     string        `json:"image_url"`
	Availability []DaySchedule `json:"availability" validate:"dive"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Specialty    string        `json:"specialty"`
	Bio          string        `json:"bio,omitempty"`
	ImageURL     string        `json:"image_url,omitempty"`
	Availability []DaySchedule `json:"availability"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DoctorSummary is the denormalized snapshot embedded in appointment responses.
type DoctorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	ImageURL  string    `json:"image_url,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
