package doctors

import (
	"carepulse-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorUsecase_FindByName(t *testing.T) {
	uc := NewDoctorUsecase(nil)

	doctor, ok := uc.FindByName("  john   GREEN ")
	assert.True(t, ok)
	assert.Equal(t, "/assets/images/dr-green.png", doctor.Image)

	_, ok = uc.FindByName("Gregory House")
	assert.False(t, ok)
}

func TestDoctorUsecase_FindAllReturnsCopy(t *testing.T) {
	uc := NewDoctorUsecase([]models.Doctor{{Name: "Ada Lovelace", Image: "/a.png"}})

	doctors := uc.FindAll()
	doctors[0].Name = "changed"

	assert.Equal(t, "Ada Lovelace", uc.FindAll()[0].Name)
}
