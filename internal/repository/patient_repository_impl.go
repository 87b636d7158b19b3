package repository

import (
	"errors"

	"enfermeria-api/internal/domain/entity"
	domainRepo "enfermeria-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.
		Preload("CreadoPor").
		Preload("SignosVitales", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, filter domainRepo.PatientFilter) ([]entity.Patient, error) {
	query := db.
		Preload("CreadoPor").
		Preload("SignosVitales", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"cedula LIKE ? OR nombre ILIKE ? OR apellido ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}

	var patients []entity.Patient
	err := query.Order("created_at DESC").Find(&patients).Error
	return patients, err
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, patient *entity.Patient) error {
	return db.Delete(patient).Error
}
