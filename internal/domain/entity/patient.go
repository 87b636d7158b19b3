package entity

import (
	"time"
)

// Patient represents a person attended by the infirmary: a student or a
// member of staff. Semestre is only meaningful for students.
type Patient struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre              string    `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido            string    `gorm:"type:varchar(100);not null" json:"apellido"`
	FechaNacimiento     time.Time `gorm:"column:fecha_nacimiento;type:date;not null" json:"fecha_nacimiento"`
	Genero              string    `gorm:"type:varchar(20);not null" json:"genero"`
	Area                string    `gorm:"type:varchar(50);not null;index" json:"area"`
	Carrera             string    `gorm:"type:varchar(100);not null" json:"carrera"`
	Semestre            *string   `gorm:"type:varchar(50)" json:"semestre,omitempty"`
	Cedula              string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"cedula"`
	Alergias            *string   `gorm:"type:text" json:"alergias,omitempty"`
	Medicamentos        *string   `gorm:"type:text" json:"medicamentos,omitempty"`
	ContactoEmergencia  *string   `gorm:"column:contacto_emergencia;type:varchar(200)" json:"contacto_emergencia,omitempty"`
	TelefonoEmergencia  *string   `gorm:"column:telefono_emergencia;type:varchar(30)" json:"telefono_emergencia,omitempty"`
	CreadoPorUserID     *int      `gorm:"column:creado_por_user_id;index" json:"creado_por_user_id,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CreadoPor     *User       `gorm:"foreignKey:CreadoPorUserID" json:"creado_por,omitempty"`
	SignosVitales []VitalSign `gorm:"foreignKey:PatientID" json:"signos_vitales,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Affiliation areas
const (
	AreaEstudiante = "estudiante"
)
