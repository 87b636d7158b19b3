package repository

import (
	"errors"

	"enfermeria-api/internal/domain/entity"
	domainRepo "enfermeria-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vitalSignRepository struct{}

func NewVitalSignRepository() domainRepo.VitalSignRepository {
	return &vitalSignRepository{}
}

func (r *vitalSignRepository) Create(db *gorm.DB, vitalSign *entity.VitalSign) error {
	return db.Create(vitalSign).Error
}

func (r *vitalSignRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.VitalSign, error) {
	var vitalSign entity.VitalSign
	err := db.Preload("Patient").Where("id = ?", id).First(&vitalSign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vitalSign, nil
}

func (r *vitalSignRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.VitalSign, error) {
	var vitalSigns []entity.VitalSign
	err := db.Where("patient_id = ?", patientID).Order("timestamp DESC").Find(&vitalSigns).Error
	return vitalSigns, err
}

func (r *vitalSignRepository) FindAll(db *gorm.DB) ([]entity.VitalSign, error) {
	var vitalSigns []entity.VitalSign
	err := db.Find(&vitalSigns).Error
	return vitalSigns, err
}

func (r *vitalSignRepository) Update(db *gorm.DB, vitalSign *entity.VitalSign) error {
	return db.Save(vitalSign).Error
}

func (r *vitalSignRepository) Delete(db *gorm.DB, vitalSign *entity.VitalSign) error {
	return db.Delete(vitalSign).Error
}
