package entity

import (
	"time"
)

// User represents a staff account (nurses and administrators).
type User struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre       string     `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido     string     `gorm:"type:varchar(100);not null" json:"apellido"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	RoleID       int        `gorm:"not null;index" json:"role_id"`
	Activo       *bool      `gorm:"not null;default:true;index" json:"activo"`
	Ultimavez    *time.Time `gorm:"column:ultimavez" json:"ultimavez,omitempty"`
	ImagenURL    *string    `gorm:"column:imagen_url;type:text" json:"imagen_url,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}
