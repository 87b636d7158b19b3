package dto

import (
	"time"

	"enfermeria-api/pkg/opt"

	"github.com/google/uuid"
)

// CreateVitalSignRequest uses tri-state fields so the measurement validator
// can report every missing required field in one combined error.
type CreateVitalSignRequest struct {
	Temperature       opt.Field[float64] `json:"temperature"`
	OxygenSaturation  opt.Field[float64] `json:"oxygen_saturation"`
	HeartRate         opt.Field[int]     `json:"heart_rate"`
	SystolicPressure  opt.Field[int]     `json:"systolic_pressure"`
	DiastolicPressure opt.Field[int]     `json:"diastolic_pressure"`
	Notes             *string            `json:"notes,omitempty"`
	Timestamp         *string            `json:"timestamp,omitempty"`
}

type UpdateVitalSignRequest struct {
	Temperature       opt.Field[float64] `json:"temperature"`
	OxygenSaturation  opt.Field[float64] `json:"oxygen_saturation"`
	HeartRate         opt.Field[int]     `json:"heart_rate"`
	SystolicPressure  opt.Field[int]     `json:"systolic_pressure"`
	DiastolicPressure opt.Field[int]     `json:"diastolic_pressure"`
	Notes             opt.Field[string]  `json:"notes"`
	Timestamp         *string            `json:"timestamp,omitempty"`
}

// VitalSignPatientResponse is the reduced patient projection embedded in a
// vital-sign response.
type VitalSignPatientResponse struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula,omitempty"`
}

type VitalSignResponse struct {
	ID                uuid.UUID                 `json:"id"`
	PatientID         *int                      `json:"patient_id,omitempty"`
	Temperature       float64                   `json:"temperature"`
	OxygenSaturation  *float64                  `json:"oxygen_saturation,omitempty"`
	HeartRate         int                       `json:"heart_rate"`
	SystolicPressure  *int                      `json:"systolic_pressure,omitempty"`
	DiastolicPressure *int                      `json:"diastolic_pressure,omitempty"`
	Notes             *string                   `json:"notes,omitempty"`
	Timestamp         time.Time                 `json:"timestamp"`
	Patient           *VitalSignPatientResponse `json:"patient,omitempty"`
}

type VitalSignListResponse struct {
	VitalSigns []*VitalSignResponse `json:"vital_signs"`
	Total      int                  `json:"total"`
}
