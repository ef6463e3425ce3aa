package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates an account. DoctorID links a doctor account to an
// existing Doctor record; when omitted the link is guessed from the name.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=admin doctor nurse receptionist pharmacist lab patient"`
	DoctorID *string `json:"doctor_id" validate:"omitempty,uuid"`
}

// LinkDoctorRequest sets a user's doctor link. A null doctor_id clears it.
type LinkDoctorRequest struct {
	DoctorID *string `json:"doctor_id" validate:"omitempty,uuid"`
}

// Response DTOs

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	DoctorID  *string   `json:"doctor_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type UserEnvelope struct {
	User *UserResponse `json:"user"`
}
