package usecase

import (
	"context"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ReportUsecase interface {
	Summary(ctx context.Context) (*dto.ReportSummaryResponse, error)
}

type reportUsecase struct {
	log   *logrus.Logger
	repos *repository.Repositories
}

func NewReportUsecase(log *logrus.Logger, repos *repository.Repositories) ReportUsecase {
	return &reportUsecase{
		log:   log,
		repos: repos,
	}
}

// Summary counts records and sums invoice totals. Revenue covers paid
// invoices, outstanding covers unpaid ones.
func (u *reportUsecase) Summary(ctx context.Context) (*dto.ReportSummaryResponse, error) {
	var (
		patients []entity.Patient
		doctors  []entity.Doctor
		appts    []entity.Appointment
		invoices []entity.Invoice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		patients, err = u.repos.Patients.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		doctors, err = u.repos.Doctors.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		appts, err = u.repos.Appointments.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		invoices, err = u.repos.Invoices.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build report summary: %+v", err)
		return nil, err
	}

	summary := &dto.ReportSummaryResponse{
		Patients:     len(patients),
		Doctors:      len(doctors),
		Appointments: len(appts),
		AppointmentsByStatus: map[string]int{
			string(entity.AppointmentScheduled): 0,
			string(entity.AppointmentCancelled): 0,
			string(entity.AppointmentCompleted): 0,
		},
		Revenue:     decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, appt := range appts {
		summary.AppointmentsByStatus[string(appt.Status)]++
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoicePaid:
			summary.Revenue = summary.Revenue.Add(inv.Total)
		case entity.InvoiceUnpaid:
			summary.Outstanding = summary.Outstanding.Add(inv.Total)
		}
	}

	return summary, nil
}
