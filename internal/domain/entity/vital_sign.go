package entity

import (
	"time"

	"github.com/google/uuid"
)

// VitalSign is a single reading. Rows created through the clinical path
// always carry a patient and both pressures; rows ingested from the sensor
// device carry neither, so those columns stay nullable.
type VitalSign struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID         *int      `gorm:"column:patient_id;index" json:"patient_id,omitempty"`
	Temperature       float64   `gorm:"type:numeric(4,1);not null" json:"temperature"`
	OxygenSaturation  *float64  `gorm:"column:oxygen_saturation;type:numeric(4,1)" json:"oxygen_saturation,omitempty"`
	HeartRate         int       `gorm:"column:heart_rate;not null" json:"heart_rate"`
	SystolicPressure  *int      `gorm:"column:systolic_pressure" json:"systolic_pressure,omitempty"`
	DiastolicPressure *int      `gorm:"column:diastolic_pressure" json:"diastolic_pressure,omitempty"`
	Notes             *string   `gorm:"type:text" json:"notes,omitempty"`
	Timestamp         time.Time `gorm:"not null;index;default:now()" json:"timestamp"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (VitalSign) TableName() string {
	return "vital_signs"
}
