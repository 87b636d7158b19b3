package repository

import (
	"enfermeria-api/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository persists staff accounts. Methods take the gorm handle so
// usecases can pass a transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, user *entity.User) error
}
