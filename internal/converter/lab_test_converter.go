package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

func LabTestToResponse(test *entity.LabTest) *dto.LabTestResponse {
	if test == nil {
		return nil
	}

	return &dto.LabTestResponse{
		ID:        test.ID,
		Name:      test.Name,
		Status:    string(test.Status),
		PatientID: test.PatientID,
		DoctorID:  test.DoctorID,
		ReportURL: test.ReportURL,
		CreatedAt: test.CreatedAt,
	}
}

func LabTestsToResponse(tests []entity.LabTest) []dto.LabTestResponse {
	responses := make([]dto.LabTestResponse, len(tests))
	for i := range tests {
		responses[i] = *LabTestToResponse(&tests[i])
	}
	return responses
}

func ApplyLabTestRequest(test *entity.LabTest, req *dto.LabTestRequest) {
	test.Name = req.Name
	test.Status = entity.LabTestStatus(req.Status)
	if test.Status == "" {
		test.Status = entity.LabTestPending
	}
	test.PatientID = req.PatientID
	test.DoctorID = req.DoctorID
	test.ReportURL = req.ReportURL
}
