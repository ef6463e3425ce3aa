package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

func MedicineToResponse(med *entity.Medicine) *dto.MedicineResponse {
	if med == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:        med.ID,
		Name:      med.Name,
		Stock:     med.Stock,
		Price:     med.Price,
		CreatedAt: med.CreatedAt,
	}
}

func MedicinesToResponse(meds []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(meds))
	for i := range meds {
		responses[i] = *MedicineToResponse(&meds[i])
	}
	return responses
}

func ApplyMedicineRequest(med *entity.Medicine, req *dto.MedicineRequest) {
	med.Name = req.Name
	med.Stock = req.Stock
	med.Price = req.Price
}

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:        staff.ID,
		Name:      staff.Name,
		Role:      staff.Role.String(),
		Shift:     staff.Shift,
		CreatedAt: staff.CreatedAt,
	}
}

func StaffListToResponse(staff []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		responses[i] = *StaffToResponse(&staff[i])
	}
	return responses
}

func ApplyStaffRequest(staff *entity.Staff, req *dto.StaffRequest) {
	staff.Name = req.Name
	staff.Role = entity.Role(req.Role)
	staff.Shift = req.Shift
}

func InvoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}

	return &dto.InvoiceResponse{
		ID:        inv.ID,
		PatientID: inv.PatientID,
		Total:     inv.Total,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
	}
}

func InvoicesToResponse(invs []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invs))
	for i := range invs {
		responses[i] = *InvoiceToResponse(&invs[i])
	}
	return responses
}

func ApplyInvoiceRequest(inv *entity.Invoice, req *dto.InvoiceRequest) {
	inv.PatientID = req.PatientID
	inv.Total = req.Total
	inv.Status = entity.InvoiceStatus(req.Status)
	if inv.Status == "" {
		inv.Status = entity.InvoiceUnpaid
	}
}
