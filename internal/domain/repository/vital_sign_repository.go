package repository

import (
	"enfermeria-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VitalSignRepository interface {
	Create(db *gorm.DB, vitalSign *entity.VitalSign) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.VitalSign, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.VitalSign, error)
	FindAll(db *gorm.DB) ([]entity.VitalSign, error)
	Update(db *gorm.DB, vitalSign *entity.VitalSign) error
	Delete(db *gorm.DB, vitalSign *entity.VitalSign) error
}
