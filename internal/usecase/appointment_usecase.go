package usecase

import (
	"context"
	"errors"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/delivery/http/middleware"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAppointmentOwner = errors.New("appointment does not belong to you")
	ErrInvalidSlot         = errors.New("time is not an available slot for that day")
	ErrSlotTaken           = errors.New("slot is already booked")
	ErrInvalidTransition   = errors.New("status change is not allowed")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// canAccess is the ownership predicate: the owner or an admin may read or
// mutate an appointment.
func canAccess(ctx context.Context, appointment *entity.Appointment) bool {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return false
	}
	if appointment.UserID == userID {
		return true
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)
	return role == entity.RoleAdmin
}

// ListAppointments returns all appointments for admins, otherwise the
// caller's own, newest date first.
func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}
	role, _ := middleware.GetUserRoleFromContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	if role == entity.RoleAdmin {
		appointments, err = u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	} else {
		appointments, err = u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CreateAppointment books a pending appointment after validating the slot.
//
// Flow:
// 1. Resolve the doctor
// 2. Check the time label is in the doctor's slot list for the date's weekday
// 3. Check no active appointment already holds the slot
// 4. Insert with status pending; the partial unique index on active slots is
//    the backstop for two callers racing past step 3
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if !doctor.Availability.HasSlot(date.Weekday().String(), req.Time) {
		return nil, ErrInvalidSlot
	}

	existing, err := u.appointmentRepo.FindActiveSlot(tx, doctor.ID, date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		UserID:   userID,
		DoctorID: doctor.ID,
		Date:     date,
		Time:     req.Time,
		Status:   entity.AppointmentStatusPending,
		Reason:   req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), req); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	u.log.Infof("Appointment created: id=%s, doctor=%s, date=%s %s", appointment.ID, doctor.ID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccess(ctx, appointment) {
		return nil, ErrNotAppointmentOwner
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment applies a partial update. Date or time changes are
// re-validated against the doctor's availability and the slot guard; status
// changes must follow the transition table.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccess(ctx, appointment) {
		return nil, ErrNotAppointmentOwner
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}

	// Re-validate the slot whenever the booked moment moves
	if req.Date != nil || req.Time != nil {
		doctor, err := u.doctorRepo.FindByID(tx, appointment.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		if !doctor.Availability.HasSlot(appointment.Date.Weekday().String(), appointment.Time) {
			return nil, ErrInvalidSlot
		}
		existing, err := u.appointmentRepo.FindActiveSlot(tx, appointment.DoctorID, appointment.Date, appointment.Time)
		if err != nil {
			u.log.Warnf("Failed to check slot availability: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != appointment.ID {
			return nil, ErrSlotTaken
		}
	}

	if req.Status != nil {
		target := entity.AppointmentStatus(*req.Status)
		if !appointment.CanTransitionTo(target) {
			return nil, ErrInvalidTransition
		}
		appointment.Status = target
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Record(ctx, tx, &callerID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), req); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment sets the appointment to cancelled. Cancelling an already
// cancelled appointment succeeds; the operation overwrites status and is
// naturally idempotent.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccess(ctx, appointment) {
		return nil, ErrNotAppointmentOwner
	}

	if !appointment.IsCancelled() {
		if !appointment.CanTransitionTo(entity.AppointmentStatusCancelled) {
			return nil, ErrInvalidTransition
		}
		appointment.Status = entity.AppointmentStatusCancelled

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
			return nil, err
		}

		callerID, _ := middleware.GetUserIDFromContext(ctx)
		if err := u.auditService.Record(ctx, tx, &callerID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), nil); err != nil {
			u.log.Warnf("Failed to record audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if !canAccess(ctx, appointment) {
		return ErrNotAppointmentOwner
	}

	if _, err := u.appointmentRepo.Delete(tx, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Record(ctx, tx, &callerID, entity.AuditActionAppointmentDelete, "appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to record audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
