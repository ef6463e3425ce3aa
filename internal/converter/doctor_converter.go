package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	availability := []string(doctor.Availability)
	if availability == nil {
		availability = []string{}
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Availability: availability,
		CreatedAt:    doctor.CreatedAt,
	}
}

func DoctorsToResponse(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.Availability = append(doctor.Availability[:0:0], req.Availability...)
}
