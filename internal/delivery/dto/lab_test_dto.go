package dto

import "time"

type LabTestRequest struct {
	Name      string `json:"name" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
	PatientID string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID  string `json:"doctor_id" validate:"omitempty,uuid"`
	ReportURL string `json:"report_url" validate:"omitempty,url"`
}

type LabTestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	ReportURL string    `json:"report_url"`
	CreatedAt time.Time `json:"created_at"`
}
