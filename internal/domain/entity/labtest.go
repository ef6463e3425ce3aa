package entity

type LabTestStatus string

const (
	LabTestPending    LabTestStatus = "pending"
	LabTestProcessing LabTestStatus = "processing"
	LabTestCompleted  LabTestStatus = "completed"
	LabTestCancelled  LabTestStatus = "cancelled"
)

// LabTest may be ordered without a patient or doctor; empty ids mean unset.
type LabTest struct {
	Base      `bson:",inline"`
	Name      string        `gorm:"type:varchar(255);not null" bson:"name"`
	Status    LabTestStatus `gorm:"type:varchar(32);not null" bson:"status"`
	PatientID string        `gorm:"type:varchar(36);index" bson:"patient_id"`
	DoctorID  string        `gorm:"type:varchar(36);index" bson:"doctor_id"`
	ReportURL string        `gorm:"type:text" bson:"report_url"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}
