package get_instructor

import (
	classModels "github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
)

// InstructorProfileResponse профиль инструктора вместе с его классами
type InstructorProfileResponse struct {
	models.InstructorResponse

	Classes []classModels.ClassResponse `json:"classes"`
}
