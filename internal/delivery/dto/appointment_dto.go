package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string    `json:"time" validate:"required,max=20"`
	Reason   string    `json:"reason"`
}

// UpdateAppointmentRequest carries a partial update; only non-nil fields are
// applied.
type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time,omitempty" validate:"omitempty,max=20"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Reason *string `json:"reason,omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	DoctorID  uuid.UUID      `json:"doctor_id"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Status    string         `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	Doctor    *DoctorSummary `json:"doctor,omitempty"`
	User      *UserSummary   `json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UserSummary is embedded in admin appointment listings.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
