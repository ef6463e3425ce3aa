package entity

// User is an authentication identity. DoctorID links a doctor account to the
// Doctor record it acts as; it is nil for every other role and for doctor
// accounts that have not been linked yet.
type User struct {
	Base         `bson:",inline"`
	Name         string  `gorm:"type:varchar(255);not null" bson:"name"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email"`
	PasswordHash string  `gorm:"type:text;not null" bson:"password_hash"`
	Role         Role    `gorm:"type:varchar(32);not null;index" bson:"role"`
	DoctorID     *string `gorm:"type:uuid;index" bson:"doctor_id,omitempty"`
}

func (User) TableName() string {
	return "users"
}
