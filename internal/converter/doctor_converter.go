package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// AvailabilityToDTO converts the domain availability document to its DTO shape
func AvailabilityToDTO(availability entity.Availability) []dto.DaySchedule {
	days := make([]dto.DaySchedule, len(availability))
	for i, d := range availability {
		days[i] = dto.DaySchedule{
			Day:   d.Day,
			Slots: d.Slots,
		}
	}
	return days
}

// AvailabilityFromDTO converts the DTO availability shape to the domain document
func AvailabilityFromDTO(days []dto.DaySchedule) entity.Availability {
	availability := make(entity.Availability, len(days))
	for i, d := range days {
		availability[i] = entity.DaySchedule{
			Day:   d.Day,
			Slots: d.Slots,
		}
	}
	return availability
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Bio:          doctor.Bio,
		ImageURL:     doctor.ImageURL,
		Availability: AvailabilityToDTO(doctor.Availability),
		CreatedAt:    doctor.CreatedAt,
		UpdatedAt:    doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DoctorToSummary converts a Doctor entity to the snapshot embedded in
// appointment responses
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorSummary{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		ImageURL:  doctor.ImageURL,
	}
}
