package usecase

import (
	"context"
	"testing"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummary(t *testing.T) {
	c := seedClinic(t)
	ctx := context.Background()
	for _, inv := range []*entity.Invoice{
		{PatientID: c.ann.ID, Total: decimal.RequireFromString("100.50"), Status: entity.InvoicePaid},
		{PatientID: c.ann.ID, Total: decimal.RequireFromString("20"), Status: entity.InvoicePaid},
		{PatientID: c.ben.ID, Total: decimal.RequireFromString("9.99"), Status: entity.InvoiceUnpaid},
	} {
		require.NoError(t, c.repos.Invoices.Create(ctx, inv))
	}

	summary, err := NewReportUsecase(quietLogger(), c.repos).Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Patients)
	assert.Equal(t, 2, summary.Doctors)
	assert.Equal(t, 2, summary.Appointments)
	assert.Equal(t, 2, summary.AppointmentsByStatus["scheduled"])
	assert.Equal(t, 0, summary.AppointmentsByStatus["cancelled"])
	assert.True(t, decimal.RequireFromString("120.5").Equal(summary.Revenue), summary.Revenue.String())
	assert.True(t, decimal.RequireFromString("9.99").Equal(summary.Outstanding), summary.Outstanding.String())
}

func TestLinkDoctor(t *testing.T) {
	c := seedClinic(t)
	ctx := context.Background()
	uc := NewUserUsecase(quietLogger(), c.repos.Users, c.repos.Doctors, c.identity(), quietAudit())

	nurse := &entity.User{Name: "N", Email: "nurse@x.io", Role: entity.RoleNurse}
	require.NoError(t, c.repos.Users.Create(ctx, nurse))

	resp, err := uc.LinkDoctor(ctx, c.aliceID, &dto.LinkDoctorRequest{DoctorID: &c.bob.ID})
	require.NoError(t, err)
	assert.Equal(t, c.bob.ID, *resp.DoctorID)

	resp, err = uc.LinkDoctor(ctx, c.aliceID, &dto.LinkDoctorRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.DoctorID)

	_, err = uc.LinkDoctor(ctx, nurse.ID, &dto.LinkDoctorRequest{DoctorID: &c.bob.ID})
	assert.ErrorIs(t, err, ErrDoctorLinkRole)

	missing := "00000000-0000-0000-0000-000000000000"
	_, err = uc.LinkDoctor(ctx, c.aliceID, &dto.LinkDoctorRequest{DoctorID: &missing})
	assert.ErrorIs(t, err, ErrUnknownDoctor)

	_, err = uc.LinkDoctor(ctx, missing, &dto.LinkDoctorRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
