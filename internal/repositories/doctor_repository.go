package repositories

import (
	"errors"

	"gorm.io/gorm"

	"telemind_backend/internal/models"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	FindAll() ([]models.Doctor, error)
	FindByID(id string) (*models.Doctor, error)
	Count() (int64, error)
}

type DoctorRepositoryImpl struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &DoctorRepositoryImpl{db: db}
}

func (r *DoctorRepositoryImpl) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

func (r *DoctorRepositoryImpl) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("name ASC").Find(&doctors).Error
	return doctors, err
}

func (r *DoctorRepositoryImpl) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Count(&count).Error
	return count, err
}
