package entity

type Patient struct {
	Base    `bson:",inline"`
	Name    string `gorm:"type:varchar(255);not null" bson:"name"`
	Age     int    `gorm:"not null" bson:"age"`
	Gender  string `gorm:"type:varchar(32)" bson:"gender"`
	Contact string `gorm:"type:varchar(255)" bson:"contact"`
}

func (Patient) TableName() string {
	return "patients"
}
