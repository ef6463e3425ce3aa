package dto

import "time"

type StaffRequest struct {
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role" validate:"omitempty,oneof=admin doctor nurse receptionist pharmacist lab patient"`
	Shift string `json:"shift"`
}

type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Shift     string    `json:"shift"`
	CreatedAt time.Time `json:"created_at"`
}
