package contracts

import "carepulse-service/internal/app/models"

type DoctorUsecase interface {
	FindAll() []models.Doctor
	FindByName(name string) (models.Doctor, bool)
}
