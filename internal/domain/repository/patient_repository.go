package repository

import (
	"enfermeria-api/internal/domain/entity"

	"gorm.io/gorm"
)

// PatientFilter narrows patient listings. Search matches the cedula and the
// name fields, area filters by affiliation.
type PatientFilter struct {
	Search string
	Area   string
}

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindAll(db *gorm.DB, filter PatientFilter) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, patient *entity.Patient) error
}
