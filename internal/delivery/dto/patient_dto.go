package dto

import "time"

type PatientRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"gte=0,lte=150"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
}

type PatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}
