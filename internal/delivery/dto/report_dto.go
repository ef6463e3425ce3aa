package dto

import "github.com/shopspring/decimal"

type ReportSummaryResponse struct {
	Patients             int             `json:"patients"`
	Doctors              int             `json:"doctors"`
	Appointments         int             `json:"appointments"`
	AppointmentsByStatus map[string]int  `json:"appointments_by_status"`
	Revenue              decimal.Decimal `json:"revenue"`
	Outstanding          decimal.Decimal `json:"outstanding"`
}
