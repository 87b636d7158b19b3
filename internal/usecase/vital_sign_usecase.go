package usecase

import (
	"context"
	"errors"
	"time"

	"enfermeria-api/internal/converter"
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/repository"
	"enfermeria-api/internal/domain/vitals"
	"enfermeria-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVitalSignNotFound = errors.New("vital sign not found")
	ErrInvalidTimestamp  = errors.New("invalid timestamp format, use RFC 3339")
)

type VitalSignUsecase interface {
	GetVitalSignsByPatient(ctx context.Context, actor policy.Actor, patientID int) (*dto.VitalSignListResponse, error)
	CreateVitalSign(ctx context.Context, actor policy.Actor, patientID int, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error)
	UpdateVitalSign(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.UpdateVitalSignRequest) (*dto.VitalSignResponse, error)
	DeleteVitalSign(ctx context.Context, actor policy.Actor, id uuid.UUID) error
	IngestSensorSample(ctx context.Context, heartRate int, oxygenSaturation, temperature float64) (*dto.VitalSignResponse, error)
}

type vitalSignUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	vitalSignRepo repository.VitalSignRepository
	patientRepo   repository.PatientRepository
	auditService  service.AuditService
}

func NewVitalSignUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vitalSignRepo repository.VitalSignRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) VitalSignUsecase {
	return &vitalSignUsecase{
		db:            db,
		log:           log,
		vitalSignRepo: vitalSignRepo,
		patientRepo:   patientRepo,
		auditService:  auditService,
	}
}

func (u *vitalSignUsecase) GetVitalSignsByPatient(ctx context.Context, actor policy.Actor, patientID int) (*dto.VitalSignListResponse, error) {
	if err := policy.Authorize(actor, policy.ActionVitalSignRead, nil); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	vitalSigns, err := u.vitalSignRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find vital signs: %+v", err)
		return nil, err
	}

	responses := converter.VitalSignsToResponses(vitalSigns)

	return &dto.VitalSignListResponse{
		VitalSigns: responses,
		Total:      len(responses),
	}, nil
}

func (u *vitalSignUsecase) CreateVitalSign(ctx context.Context, actor policy.Actor, patientID int, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error) {
	if err := policy.Authorize(actor, policy.ActionVitalSignCreate, nil); err != nil {
		return nil, err
	}

	if err := vitals.ValidateNew(vitals.Reading{
		Temperature:       req.Temperature,
		OxygenSaturation:  req.OxygenSaturation,
		HeartRate:         req.HeartRate,
		SystolicPressure:  req.SystolicPressure,
		DiastolicPressure: req.DiastolicPressure,
	}); err != nil {
		return nil, err
	}

	timestamp := time.Now()
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		timestamp = parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	vitalSign := &entity.VitalSign{
		PatientID:         &patientID,
		Temperature:       req.Temperature.Value,
		OxygenSaturation:  req.OxygenSaturation.Ptr(),
		HeartRate:         req.HeartRate.Value,
		SystolicPressure:  req.SystolicPressure.Ptr(),
		DiastolicPressure: req.DiastolicPressure.Ptr(),
		Notes:             req.Notes,
		Timestamp:         timestamp,
	}

	if err := u.vitalSignRepo.Create(tx, vitalSign); err != nil {
		u.log.Warnf("Failed to create vital sign: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(actor), entity.AuditActionVitalSignCreate, "vital_sign", vitalSign.ID.String(), converter.VitalSignToResponse(vitalSign)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	vitalSign.Patient = patient
	return converter.VitalSignToResponse(vitalSign), nil
}

func (u *vitalSignUsecase) UpdateVitalSign(ctx context.Context, actor policy.Actor, id uuid.UUID, req *dto.UpdateVitalSignRequest) (*dto.VitalSignResponse, error) {
	if err := policy.Authorize(actor, policy.ActionVitalSignUpdate, nil); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vitalSign, err := u.vitalSignRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vital sign by ID: %+v", err)
		return nil, err
	}
	if vitalSign == nil {
		return nil, ErrVitalSignNotFound
	}

	if err := vitals.ValidateUpdate(vitals.Reading{
		Temperature:       req.Temperature,
		OxygenSaturation:  req.OxygenSaturation,
		HeartRate:         req.HeartRate,
		SystolicPressure:  req.SystolicPressure,
		DiastolicPressure: req.DiastolicPressure,
	}, vitalSign); err != nil {
		return nil, err
	}

	oldValue := converter.VitalSignToResponse(vitalSign)

	if req.Temperature.Set {
		vitalSign.Temperature = req.Temperature.Value
	}
	if req.OxygenSaturation.Set {
		vitalSign.OxygenSaturation = req.OxygenSaturation.Ptr()
	}
	if req.HeartRate.Set {
		vitalSign.HeartRate = req.HeartRate.Value
	}
	if req.SystolicPressure.Set {
		vitalSign.SystolicPressure = req.SystolicPressure.Ptr()
	}
	if req.DiastolicPressure.Set {
		vitalSign.DiastolicPressure = req.DiastolicPressure.Ptr()
	}
	if req.Notes.Set {
		vitalSign.Notes = req.Notes.Ptr()
	}
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		vitalSign.Timestamp = parsed
	}

	if err := u.vitalSignRepo.Update(tx, vitalSign); err != nil {
		u.log.Warnf("Failed to update vital sign: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(actor), entity.AuditActionVitalSignUpdate, "vital_sign", vitalSign.ID.String(), oldValue, converter.VitalSignToResponse(vitalSign)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VitalSignToResponse(vitalSign), nil
}

func (u *vitalSignUsecase) DeleteVitalSign(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	if err := policy.Authorize(actor, policy.ActionVitalSignDelete, nil); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vitalSign, err := u.vitalSignRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vital sign by ID: %+v", err)
		return err
	}
	if vitalSign == nil {
		return ErrVitalSignNotFound
	}

	if err := u.vitalSignRepo.Delete(tx, vitalSign); err != nil {
		u.log.Warnf("Failed to delete vital sign: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(actor), entity.AuditActionVitalSignDelete, "vital_sign", vitalSign.ID.String(), converter.VitalSignToResponse(vitalSign)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// IngestSensorSample stores a raw reading from the bedside monitor. The
// sample carries no patient and no blood pressures; nursing staff link it to
// a patient afterwards if it is worth keeping.
func (u *vitalSignUsecase) IngestSensorSample(ctx context.Context, heartRate int, oxygenSaturation, temperature float64) (*dto.VitalSignResponse, error) {
	if err := vitals.ValidateSample(heartRate, oxygenSaturation, temperature); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vitalSign := &entity.VitalSign{
		Temperature:      temperature,
		OxygenSaturation: &oxygenSaturation,
		HeartRate:        heartRate,
		Timestamp:        time.Now(),
	}

	if err := u.vitalSignRepo.Create(tx, vitalSign); err != nil {
		u.log.Warnf("Failed to store sensor sample: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, nil, entity.AuditActionSensorIngest, entity.JSON{
		"entity":    "vital_sign",
		"entity_id": vitalSign.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VitalSignToResponse(vitalSign), nil
}
