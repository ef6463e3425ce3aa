package entity

type Staff struct {
	Base  `bson:",inline"`
	Name  string `gorm:"type:varchar(255);not null" bson:"name"`
	Role  Role   `gorm:"type:varchar(32);not null" bson:"role"`
	Shift string `gorm:"type:varchar(64)" bson:"shift"`
}

func (Staff) TableName() string {
	return "staff"
}
