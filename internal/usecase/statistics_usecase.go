package usecase

import (
	"context"
	"time"

	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/repository"
	"enfermeria-api/internal/domain/stats"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatisticsUsecase interface {
	GetDashboard(ctx context.Context, actor policy.Actor) (*stats.Summary, error)
}

type statisticsUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	patientRepo   repository.PatientRepository
	vitalSignRepo repository.VitalSignRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewStatisticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	vitalSignRepo repository.VitalSignRepository,
	userRepo repository.UserRepository,
	now func() time.Time,
) StatisticsUsecase {
	if now == nil {
		now = time.Now
	}
	return &statisticsUsecase{
		db:            db,
		log:           log,
		patientRepo:   patientRepo,
		vitalSignRepo: vitalSignRepo,
		userRepo:      userRepo,
		now:           now,
	}
}

// GetDashboard aggregates the dashboard summary from a fresh snapshot of
// patients, vital signs and staff accounts.
func (u *statisticsUsecase) GetDashboard(ctx context.Context, actor policy.Actor) (*stats.Summary, error) {
	if err := policy.Authorize(actor, policy.ActionStatisticsRead, nil); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	patients, err := u.patientRepo.FindAll(db, repository.PatientFilter{})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	vitalSigns, err := u.vitalSignRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find vital signs: %+v", err)
		return nil, err
	}

	users, err := u.userRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	summary := stats.Aggregate(patients, vitalSigns, users, u.now())
	return &summary, nil
}
