package services

import (
	"github.com/google/uuid"

	"telemind_backend/internal/models"
	"telemind_backend/internal/repositories"
	"telemind_backend/pkg/apperrors"
)

type DoctorService interface {
	List() ([]models.Doctor, error)
	GetByID(id string) (*models.Doctor, error)
}

type DoctorServiceImpl struct {
	doctorRepo repositories.DoctorRepository
}

func NewDoctorService(doctorRepo repositories.DoctorRepository) DoctorService {
	return &DoctorServiceImpl{doctorRepo: doctorRepo}
}

func (s *DoctorServiceImpl) List() ([]models.Doctor, error) {
	doctors, err := s.doctorRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return doctors, nil
}

func (s *DoctorServiceImpl) GetByID(id string) (*models.Doctor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrMalformedID("doctor", "Invalid Doctor ID")
	}

	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrNotFound("doctor", "Doctor not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return doctor, nil
}
