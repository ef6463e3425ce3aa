package entity

import "github.com/lib/pq"

// Doctor is the scheduling record for a physician. It is independent of any
// User; see User.DoctorID for the link.
type Doctor struct {
	Base         `bson:",inline"`
	Name         string         `gorm:"type:varchar(255);not null" bson:"name"`
	Specialty    string         `gorm:"type:varchar(255)" bson:"specialty"`
	Availability pq.StringArray `gorm:"type:text[]" bson:"availability"`
}

func (Doctor) TableName() string {
	return "doctors"
}
