package entity

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// Appointment references a patient and a doctor by id only. Deleting either
// leaves the appointment in place.
type Appointment struct {
	Base      `bson:",inline"`
	PatientID string            `gorm:"type:uuid;not null;index" bson:"patient_id"`
	DoctorID  string            `gorm:"type:uuid;not null;index" bson:"doctor_id"`
	Date      string            `gorm:"type:varchar(10);not null" bson:"date"`
	Time      string            `gorm:"type:varchar(5)" bson:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(32);not null;index" bson:"status"`
	Notes     string            `gorm:"type:text" bson:"notes"`
}

func (Appointment) TableName() string {
	return "appointments"
}
