package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Contact:   patient.Contact,
		CreatedAt: patient.CreatedAt,
	}
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// ApplyPatientRequest copies every writable field; updates replace the record.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) {
	patient.Name = req.Name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Contact = req.Contact
}
