package doctors

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"strings"
)

var defaultCatalog = []models.Doctor{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-ramirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

type doctorUsecase struct {
	doctors []models.Doctor
	byName  map[string]models.Doctor
}

// NewDoctorUsecase serves the built-in catalog when doctors is empty.
func NewDoctorUsecase(doctors []models.Doctor) contracts.DoctorUsecase {
	if len(doctors) == 0 {
		doctors = defaultCatalog
	}

	byName := make(map[string]models.Doctor, len(doctors))
	for _, doctor := range doctors {
		byName[normalizeName(doctor.Name)] = doctor
	}
	return &doctorUsecase{
		doctors: doctors,
		byName:  byName,
	}
}

func (uc *doctorUsecase) FindAll() []models.Doctor {
	doctors := make([]models.Doctor, len(uc.doctors))
	copy(doctors, uc.doctors)
	return doctors
}

func (uc *doctorUsecase) FindByName(name string) (models.Doctor, bool) {
	doctor, ok := uc.byName[normalizeName(name)]
	return doctor, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
