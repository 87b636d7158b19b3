// Command seed populates a fresh database with the reference roles, two
// staff accounts and a handful of sample students with plausible vital
// signs. Intended for development environments only.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"enfermeria-api/config"
	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	logrus.Info("Database seeded successfully")
}

func seed(db *gorm.DB) error {
	roles := []entity.Role{
		{Nombre: entity.RoleAdministrador, Descripcion: "Acceso completo al sistema"},
		{Nombre: entity.RoleEnfermero, Descripcion: "Registro y consulta de pacientes y signos vitales"},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nombre"}},
		DoNothing: true,
	}).Create(&roles).Error; err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	var adminRole, nurseRole entity.Role
	if err := db.Where("nombre = ?", entity.RoleAdministrador).First(&adminRole).Error; err != nil {
		return err
	}
	if err := db.Where("nombre = ?", entity.RoleEnfermero).First(&nurseRole).Error; err != nil {
		return err
	}

	users := []struct {
		nombre, apellido, email, password string
		roleID                            int
	}{
		{"Admin", "Sistema", "admin@escuela.edu", "admin123", adminRole.ID},
		{"Maria", "Gonzalez", "enfermero@escuela.edu", "enfermero123", nurseRole.ID},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		activo := true
		user := entity.User{
			Nombre:       u.nombre,
			Apellido:     u.apellido,
			Email:        u.email,
			PasswordHash: string(hash),
			RoleID:       u.roleID,
			Activo:       &activo,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}

	var creator entity.User
	if err := db.Where("email = ?", "enfermero@escuela.edu").First(&creator).Error; err != nil {
		return err
	}

	return seedPatients(db, creator.ID)
}

func seedPatients(db *gorm.DB, creatorID int) error {
	type sample struct {
		nombre, apellido, cedula, genero, carrera, semestre string
		nacimiento                                          string
	}
	samples := []sample{
		{"Luis", "Martinez", "0102030405", "masculino", "Enfermeria", "3", "2004-03-12"},
		{"Ana", "Rodriguez", "0203040506", "femenino", "Medicina", "5", "2003-07-25"},
		{"Carlos", "Perez", "0304050607", "masculino", "Odontologia", "1", "2005-11-02"},
		{"Sofia", "Lopez", "0405060708", "femenino", "Enfermeria", "7", "2002-01-18"},
		{"Diego", "Ramirez", "0506070809", "masculino", "Medicina", "3", "2004-09-30"},
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, s := range samples {
		nacimiento, err := time.Parse("2006-01-02", s.nacimiento)
		if err != nil {
			return err
		}
		semestre := s.semestre
		patient := entity.Patient{
			Nombre:          s.nombre,
			Apellido:        s.apellido,
			FechaNacimiento: nacimiento,
			Genero:          s.genero,
			Area:            entity.AreaEstudiante,
			Carrera:         s.carrera,
			Semestre:        &semestre,
			Cedula:          s.cedula,
			CreadoPorUserID: &creatorID,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cedula"}},
			DoNothing: true,
		}).Create(&patient)
		if result.Error != nil {
			return fmt.Errorf("failed to seed patient %s: %w", s.cedula, result.Error)
		}
		if result.RowsAffected == 0 {
			continue
		}

		// Two or three plausible readings spread over the last month
		for i := 0; i < 2+rng.Intn(2); i++ {
			spo2 := 95.0 + rng.Float64()*4
			systolic := 100 + rng.Intn(30)
			diastolic := 60 + rng.Intn(20)
			vitalSign := entity.VitalSign{
				PatientID:         &patient.ID,
				Temperature:       36.0 + rng.Float64()*1.5,
				OxygenSaturation:  &spo2,
				HeartRate:         60 + rng.Intn(40),
				SystolicPressure:  &systolic,
				DiastolicPressure: &diastolic,
				Timestamp:         time.Now().AddDate(0, 0, -rng.Intn(30)),
			}
			if err := db.Create(&vitalSign).Error; err != nil {
				return fmt.Errorf("failed to seed vital sign: %w", err)
			}
		}
	}

	return nil
}
