package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *mockPatientRepository) FindAll(db *gorm.DB, filter repository.PatientFilter) ([]entity.Patient, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *mockPatientRepository) Delete(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

type mockVitalSignRepository struct {
	mock.Mock
}

func (m *mockVitalSignRepository) Create(db *gorm.DB, vitalSign *entity.VitalSign) error {
	args := m.Called(db, vitalSign)
	return args.Error(0)
}

func (m *mockVitalSignRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.VitalSign, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VitalSign), args.Error(1)
}

func (m *mockVitalSignRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.VitalSign, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VitalSign), args.Error(1)
}

func (m *mockVitalSignRepository) FindAll(db *gorm.DB) ([]entity.VitalSign, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VitalSign), args.Error(1)
}

func (m *mockVitalSignRepository) Update(db *gorm.DB, vitalSign *entity.VitalSign) error {
	args := m.Called(db, vitalSign)
	return args.Error(0)
}

func (m *mockVitalSignRepository) Delete(db *gorm.DB, vitalSign *entity.VitalSign) error {
	args := m.Called(db, vitalSign)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(db *gorm.DB, id int) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *mockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func boolPtr(b bool) *bool { return &b }

// testDB is a connectionless handle. The mocked repositories never touch it;
// it only has to survive WithContext.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func TestStatisticsDashboardRequiresAdministrator(t *testing.T) {
	u := NewStatisticsUsecase(testDB(), logrus.New(), new(mockPatientRepository), new(mockVitalSignRepository), new(mockUserRepository), nil)

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := u.GetDashboard(context.Background(), policy.Actor{})
		assert.ErrorIs(t, err, policy.ErrUnauthenticated)
	})

	t.Run("nurse denied", func(t *testing.T) {
		nurse := policy.Actor{ID: 2, Role: "Enfermero", Authenticated: true}
		_, err := u.GetDashboard(context.Background(), nurse)

		var denied *policy.DeniedError
		assert.True(t, errors.As(err, &denied))
	})
}

func TestStatisticsDashboardAggregatesSnapshot(t *testing.T) {
	patientRepo := new(mockPatientRepository)
	vitalSignRepo := new(mockVitalSignRepository)
	userRepo := new(mockUserRepository)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	semestre := "3"
	patients := []entity.Patient{
		{ID: 1, Area: entity.AreaEstudiante, Semestre: &semestre, FechaNacimiento: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now},
	}
	vitalSigns := []entity.VitalSign{
		{Timestamp: now}, {Timestamp: now.AddDate(0, 0, -40)},
	}
	users := []entity.User{
		{Activo: boolPtr(true)}, {Activo: boolPtr(false)},
	}

	patientRepo.On("FindAll", mock.Anything, repository.PatientFilter{}).Return(patients, nil)
	vitalSignRepo.On("FindAll", mock.Anything).Return(vitalSigns, nil)
	userRepo.On("FindAll", mock.Anything).Return(users, nil)

	u := NewStatisticsUsecase(testDB(), logrus.New(), patientRepo, vitalSignRepo, userRepo, func() time.Time { return now })

	admin := policy.Actor{ID: 1, Role: "Administrador", Authenticated: true}
	summary, err := u.GetDashboard(context.Background(), admin)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalPatients)
	assert.Equal(t, 2, summary.TotalVitalSigns)
	assert.Equal(t, 1, summary.ActiveUsers)
	assert.Equal(t, 20.0, summary.AverageAge)
	assert.Len(t, summary.PatientsByDay, 30)
	assert.Equal(t, 1, summary.PatientsByDay[29].Count)

	patientRepo.AssertExpectations(t)
	vitalSignRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestStatisticsDashboardPropagatesRepositoryErrors(t *testing.T) {
	patientRepo := new(mockPatientRepository)
	vitalSignRepo := new(mockVitalSignRepository)
	userRepo := new(mockUserRepository)

	patientRepo.On("FindAll", mock.Anything, repository.PatientFilter{}).Return(nil, errors.New("connection reset"))

	u := NewStatisticsUsecase(testDB(), logrus.New(), patientRepo, vitalSignRepo, userRepo, nil)

	admin := policy.Actor{ID: 1, Role: "Administrador", Authenticated: true}
	_, err := u.GetDashboard(context.Background(), admin)

	assert.Error(t, err)
	vitalSignRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}
