package entity

// Role represents a staff role. Reference data created at seed time.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"type:text" json:"descripcion,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role name constants (matched case-insensitively everywhere)
const (
	RoleAdministrador = "Administrador"
	RoleEnfermero     = "Enfermero"
)
