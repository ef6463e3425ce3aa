package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appt.ID,
		PatientID: appt.PatientID,
		DoctorID:  appt.DoctorID,
		Date:      appt.Date,
		Time:      appt.Time,
		Status:    string(appt.Status),
		Notes:     appt.Notes,
		CreatedAt: appt.CreatedAt,
	}
}

func AppointmentsToResponse(appts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appts))
	for i := range appts {
		responses[i] = *AppointmentToResponse(&appts[i])
	}
	return responses
}

// ApplyAppointmentRequest copies the request onto the entity. An empty status
// falls back to scheduled.
func ApplyAppointmentRequest(appt *entity.Appointment, req *dto.AppointmentRequest) {
	appt.PatientID = req.PatientID
	appt.DoctorID = req.DoctorID
	appt.Date = req.Date
	appt.Time = req.Time
	appt.Status = entity.AppointmentStatus(req.Status)
	if appt.Status == "" {
		appt.Status = entity.AppointmentScheduled
	}
	appt.Notes = req.Notes
}
