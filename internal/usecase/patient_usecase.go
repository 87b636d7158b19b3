package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"enfermeria-api/internal/converter"
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/repository"
	"enfermeria-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrCedulaAlreadyExists = errors.New("cedula already exists")
	ErrSemestreRequired    = errors.New("semestre is required for students")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	GetAllPatients(ctx context.Context, actor policy.Actor, filter repository.PatientFilter) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, actor policy.Actor, id int) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, actor policy.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, actor policy.Actor, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, actor policy.Actor, id int) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, actor policy.Actor, filter repository.PatientFilter) (*dto.PatientListResponse, error) {
	if err := policy.Authorize(actor, policy.ActionPatientList, nil); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToListItems(patients)

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, actor policy.Actor, id int) (*dto.PatientResponse, error) {
	if err := policy.Authorize(actor, policy.ActionPatientRead, nil); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, actor policy.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if err := policy.Authorize(actor, policy.ActionPatientCreate, nil); err != nil {
		return nil, err
	}

	fechaNacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Semestre is carried exactly when the patient is a student
	var semestre *string
	if req.Area == entity.AreaEstudiante {
		if req.Semestre == nil || *req.Semestre == "" {
			return nil, ErrSemestreRequired
		}
		semestre = req.Semestre
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	creadoPorUserID := actorID(actor)
	patient := &entity.Patient{
		Nombre:             req.Nombre,
		Apellido:           req.Apellido,
		FechaNacimiento:    fechaNacimiento,
		Genero:             req.Genero,
		Area:               req.Area,
		Carrera:            req.Carrera,
		Semestre:           semestre,
		Cedula:             normalizeCedula(req.Cedula),
		Alergias:           req.Alergias,
		Medicamentos:       req.Medicamentos,
		ContactoEmergencia: req.ContactoEmergencia,
		TelefonoEmergencia: req.TelefonoEmergencia,
		CreadoPorUserID:    creadoPorUserID,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "cedula") {
			return nil, ErrCedulaAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, creadoPorUserID, entity.AuditActionPatientCreate, "patient", fmt.Sprint(patient.ID), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patient.ID)
	if err != nil || created == nil {
		return converter.PatientToResponse(patient), nil
	}
	return converter.PatientToResponse(created), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, actor policy.Actor, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := policy.Authorize(actor, policy.ActionPatientUpdate, nil); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Nombre != nil && *req.Nombre != "" {
		patient.Nombre = *req.Nombre
	}
	if req.Apellido != nil && *req.Apellido != "" {
		patient.Apellido = *req.Apellido
	}
	if req.FechaNacimiento != nil && *req.FechaNacimiento != "" {
		fechaNacimiento, err := time.Parse("2006-01-02", *req.FechaNacimiento)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.FechaNacimiento = fechaNacimiento
	}
	if req.Genero != nil && *req.Genero != "" {
		patient.Genero = *req.Genero
	}
	if req.Area != nil && *req.Area != "" {
		patient.Area = *req.Area
	}
	if req.Carrera != nil && *req.Carrera != "" {
		patient.Carrera = *req.Carrera
	}
	if req.Semestre.Set {
		patient.Semestre = req.Semestre.Ptr()
	}
	if req.Alergias.Set {
		patient.Alergias = req.Alergias.Ptr()
	}
	if req.Medicamentos.Set {
		patient.Medicamentos = req.Medicamentos.Ptr()
	}
	if req.ContactoEmergencia.Set {
		patient.ContactoEmergencia = req.ContactoEmergencia.Ptr()
	}
	if req.TelefonoEmergencia.Set {
		patient.TelefonoEmergencia = req.TelefonoEmergencia.Ptr()
	}

	// Keep the student/semestre invariant on the resulting record
	if patient.Area == entity.AreaEstudiante {
		if patient.Semestre == nil || *patient.Semestre == "" {
			return nil, ErrSemestreRequired
		}
	} else {
		patient.Semestre = nil
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "cedula") {
			return nil, ErrCedulaAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(actor), entity.AuditActionPatientUpdate, "patient", fmt.Sprint(patient.ID), oldValue, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, actor policy.Actor, id int) error {
	if err := policy.Authorize(actor, policy.ActionPatientDelete, nil); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	// Vital signs cascade at the schema level
	if err := u.patientRepo.Delete(tx, patient); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(actor), entity.AuditActionPatientDelete, "patient", fmt.Sprint(patient.ID), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// normalizeCedula strips everything but digits before uniqueness checks and
// storage.
func normalizeCedula(cedula string) string {
	var b strings.Builder
	for _, r := range cedula {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
