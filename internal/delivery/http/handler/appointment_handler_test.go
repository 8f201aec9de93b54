package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/usecase"
	"medibook/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

var _ usecase.AppointmentUsecase = (*MockAppointmentUsecase)(nil)

func newAppointmentHandler(u usecase.AppointmentUsecase) *AppointmentHandler {
	return NewAppointmentHandler(u, validator.NewValidator())
}

func TestCreateAppointment(t *testing.T) {
	doctorID := uuid.New()
	body := `{"doctor_id":"` + doctorID.String() + `","date":"2026-09-07","time":"9:00 AM","reason":"Checkup"}`

	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockAppointmentUsecase)
		expectedStatus int
	}{
		{
			name: "created",
			body: body,
			mockSetup: func(m *MockAppointmentUsecase) {
				m.On("CreateAppointment", mock.Anything, mock.Anything).
					Return(&dto.AppointmentResponse{
						ID:       uuid.New(),
						DoctorID: doctorID,
						Date:     "2026-09-07",
						Time:     "9:00 AM",
						Status:   "pending",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "doctor not found",
			body: body,
			mockSetup: func(m *MockAppointmentUsecase) {
				m.On("CreateAppointment", mock.Anything, mock.Anything).
					Return(nil, usecase.ErrDoctorNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "slot not offered",
			body: body,
			mockSetup: func(m *MockAppointmentUsecase) {
				m.On("CreateAppointment", mock.Anything, mock.Anything).
					Return(nil, usecase.ErrInvalidSlot)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "slot already booked",
			body: body,
			mockSetup: func(m *MockAppointmentUsecase) {
				m.On("CreateAppointment", mock.Anything, mock.Anything).
					Return(nil, usecase.ErrSlotTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "bad date format rejected by validation",
			body:           `{"doctor_id":"` + doctorID.String() + `","date":"09/07/2026","time":"9:00 AM"}`,
			mockSetup:      func(m *MockAppointmentUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing doctor id",
			body:           `{"date":"2026-09-07","time":"9:00 AM"}`,
			mockSetup:      func(m *MockAppointmentUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := new(MockAppointmentUsecase)
			tt.mockSetup(mockUsecase)
			h := newAppointmentHandler(mockUsecase)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.CreateAppointment(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockUsecase.AssertExpectations(t)
		})
	}
}

func TestGetAppointment_Forbidden(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("GetAppointment", mock.Anything, appointmentID).
		Return(nil, usecase.ErrNotAppointmentOwner)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+appointmentID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetAppointment_Success(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("GetAppointment", mock.Anything, appointmentID).
		Return(&dto.AppointmentResponse{
			ID:       appointmentID,
			DoctorID: doctorID,
			Date:     "2026-09-07",
			Time:     "9:00 AM",
			Status:   "pending",
			Doctor:   &dto.DoctorSummary{ID: doctorID, Name: "Dr. Sarah Johnson", Specialty: "Cardiology"},
		}, nil)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+appointmentID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.GetAppointment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    dto.AppointmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appointmentID, resp.Data.ID)
	require.NotNil(t, resp.Data.Doctor)
	assert.Equal(t, "Dr. Sarah Johnson", resp.Data.Doctor.Name)
}

func TestUpdateAppointment_InvalidTransition(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("UpdateAppointment", mock.Anything, appointmentID, mock.Anything).
		Return(nil, usecase.ErrInvalidTransition)

	h := newAppointmentHandler(mockUsecase)

	body := `{"status":"pending"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+appointmentID.String(), bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateAppointment_UnknownStatusRejected(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	h := newAppointmentHandler(mockUsecase)

	body := `{"status":"archived"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+appointmentID.String(), bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "UpdateAppointment")
}

func TestCancelAppointment(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("CancelAppointment", mock.Anything, appointmentID).
		Return(&dto.AppointmentResponse{ID: appointmentID, Status: "cancelled"}, nil)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+appointmentID.String()+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.CancelAppointment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Data.Status)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("CancelAppointment", mock.Anything, appointmentID).
		Return(nil, usecase.ErrAppointmentNotFound)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+appointmentID.String()+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.CancelAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAppointment_Forbidden(t *testing.T) {
	appointmentID := uuid.New()

	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("DeleteAppointment", mock.Anything, appointmentID).
		Return(usecase.ErrNotAppointmentOwner)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+appointmentID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	h.DeleteAppointment(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListAppointments(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	mockUsecase.On("ListAppointments", mock.Anything).
		Return(&dto.AppointmentListResponse{
			Appointments: []dto.AppointmentResponse{
				{ID: uuid.New(), Date: "2026-09-07", Time: "9:00 AM", Status: "pending"},
				{ID: uuid.New(), Date: "2026-09-01", Time: "2:00 PM", Status: "cancelled"},
			},
			Total: 2,
		}, nil)

	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	h.ListAppointments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.AppointmentListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	assert.Len(t, resp.Data.Appointments, 2)
}

func TestAppointmentInvalidID(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := newAppointmentHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "GetAppointment")
}
