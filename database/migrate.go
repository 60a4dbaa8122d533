package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"telemind_backend/internal/config"
	"telemind_backend/internal/logger"
	"telemind_backend/internal/models"
	"telemind_backend/internal/repositories"
)

// Connect открывает соединение GORM с DSN из конфигурации.
// TranslateError нужен, чтобы нарушения уникальности приходили
// как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// SeedDoctors наполняет пустой справочник врачей стартовым набором.
// Непустой справочник не трогаем: данные могли быть отредактированы.
func SeedDoctors(db *gorm.DB) error {
	doctorRepo := repositories.NewDoctorRepository(db)

	count, err := doctorRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		logger.Info("Doctors table already populated. Skipping seeding.", "count", count)
		return nil
	}

	doctors := []models.Doctor{
		{
			Name:        "Ayesha Rahman",
			Designation: "Cardiologist",
			Email:       "ayesha.rahman@telemind.example",
			Phone:       "+880-1711-000001",
			Chamber:     "Room 204, Green Tower",
			Hospital:    "City General Hospital",
		},
		{
			Name:        "Imran Chowdhury",
			Designation: "Dermatologist",
			Email:       "imran.chowdhury@telemind.example",
			Phone:       "+880-1711-000002",
			Chamber:     "Room 310, Lake View Clinic",
			Hospital:    "Northern Medical College",
		},
		{
			Name:        "Sofia Akter",
			Designation: "Pediatrician",
			Email:       "sofia.akter@telemind.example",
			Phone:       "+880-1711-000003",
			Chamber:     "Room 112, Care Point",
			Hospital:    "Children's Health Center",
		},
		{
			Name:        "Tanvir Hasan",
			Designation: "Neurologist",
			Email:       "tanvir.hasan@telemind.example",
			Phone:       "+880-1711-000004",
			Chamber:     "Room 501, Medinova",
			Hospital:    "Central Neuroscience Institute",
		},
	}

	for i := range doctors {
		if err := doctorRepo.Create(&doctors[i]); err != nil {
			return fmt.Errorf("failed to seed doctor %q: %w", doctors[i].Name, err)
		}
	}

	logger.Info("Seeded initial doctors", "count", len(doctors))
	return nil
}
