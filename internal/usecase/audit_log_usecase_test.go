package usecase

import (
	"context"
	"testing"

	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	args := m.Called(db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

func TestGetRecentLogs(t *testing.T) {
	db, _ := newTestDB(t)

	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("FindRecent", mock.Anything, 10).Return([]entity.AuditLog{
		{ID: 1, Action: entity.AuditActionUserRegister},
		{ID: 2, Action: entity.AuditActionAppointmentCreate},
	}, nil)

	u := NewAuditLogUsecase(db, noopLogger(), auditRepo)

	resp, err := u.GetRecentLogs(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, entity.AuditActionUserRegister, resp.Logs[0].Action)
}

func TestGetRecentLogs_DefaultLimit(t *testing.T) {
	db, _ := newTestDB(t)

	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("FindRecent", mock.Anything, defaultAuditLogLimit).Return([]entity.AuditLog{}, nil)

	u := NewAuditLogUsecase(db, noopLogger(), auditRepo)

	resp, err := u.GetRecentLogs(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	auditRepo.AssertExpectations(t)
}
