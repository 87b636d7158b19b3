package dto

import (
	"time"

	"enfermeria-api/pkg/opt"
)

type CreatePatientRequest struct {
	Nombre             string  `json:"nombre" validate:"required,max=100"`
	Apellido           string  `json:"apellido" validate:"required,max=100"`
	FechaNacimiento    string  `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Genero             string  `json:"genero" validate:"required"`
	Area               string  `json:"area" validate:"required"`
	Carrera            string  `json:"carrera" validate:"required"`
	Semestre           *string `json:"semestre,omitempty"`
	Cedula             string  `json:"cedula" validate:"required"`
	Alergias           *string `json:"alergias,omitempty"`
	Medicamentos       *string `json:"medicamentos,omitempty"`
	ContactoEmergencia *string `json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia *string `json:"telefono_emergencia,omitempty"`
}

// UpdatePatientRequest carries partial edits. The free-text clinical fields
// and semestre are tri-state so clients can clear them explicitly.
type UpdatePatientRequest struct {
	Nombre             *string           `json:"nombre,omitempty"`
	Apellido           *string           `json:"apellido,omitempty"`
	FechaNacimiento    *string           `json:"fecha_nacimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genero             *string           `json:"genero,omitempty"`
	Area               *string           `json:"area,omitempty"`
	Carrera            *string           `json:"carrera,omitempty"`
	Semestre           opt.Field[string] `json:"semestre"`
	Alergias           opt.Field[string] `json:"alergias"`
	Medicamentos       opt.Field[string] `json:"medicamentos"`
	ContactoEmergencia opt.Field[string] `json:"contacto_emergencia"`
	TelefonoEmergencia opt.Field[string] `json:"telefono_emergencia"`
}

// CreatorResponse is the reduced projection of the user who registered a
// patient.
type CreatorResponse struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email,omitempty"`
}

type PatientResponse struct {
	ID                 int                  `json:"id"`
	Nombre             string               `json:"nombre"`
	Apellido           string               `json:"apellido"`
	FechaNacimiento    string               `json:"fecha_nacimiento"`
	Genero             string               `json:"genero"`
	Area               string               `json:"area"`
	Carrera            string               `json:"carrera"`
	Semestre           *string              `json:"semestre,omitempty"`
	Cedula             string               `json:"cedula"`
	Alergias           *string              `json:"alergias,omitempty"`
	Medicamentos       *string              `json:"medicamentos,omitempty"`
	ContactoEmergencia *string              `json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia *string              `json:"telefono_emergencia,omitempty"`
	CreadoPor          *CreatorResponse     `json:"creado_por,omitempty"`
	UltimoSignoVital   *VitalSignResponse   `json:"ultimo_signo_vital,omitempty"`
	SignosVitales      []*VitalSignResponse `json:"signos_vitales,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []*PatientResponse `json:"patients"`
	Total    int                `json:"total"`
}
