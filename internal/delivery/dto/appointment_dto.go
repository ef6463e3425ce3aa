package dto

import "time"

type AppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled cancelled completed"`
	Notes     string `json:"notes"`
}

type AppointmentResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	*AppointmentNames
}

// AppointmentNames is attached to admin listings only. A nil name means the
// referenced record no longer exists.
type AppointmentNames struct {
	PatientName *string `json:"patient_name"`
	DoctorName  *string `json:"doctor_name"`
}
