package usecase

import (
	"context"
	"errors"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
)

type InvoiceUsecase interface {
	ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	CreateInvoice(ctx context.Context, req *dto.InvoiceRequest) (*dto.InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, id string, req *dto.InvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
	PayInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
}

type invoiceUsecase struct {
	log         *logrus.Logger
	invoiceRepo repository.InvoiceRepository
	audit       service.AuditService
}

func NewInvoiceUsecase(log *logrus.Logger, invoiceRepo repository.InvoiceRepository, audit service.AuditService) InvoiceUsecase {
	return &invoiceUsecase{
		log:         log,
		invoiceRepo: invoiceRepo,
		audit:       audit,
	}
}

func (u *invoiceUsecase) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invs, err := u.invoiceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, err
	}
	return converter.InvoicesToResponse(invs), nil
}

func (u *invoiceUsecase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.InvoiceToResponse(inv), nil
}

func (u *invoiceUsecase) CreateInvoice(ctx context.Context, req *dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := &entity.Invoice{}
	converter.ApplyInvoiceRequest(inv, req)

	if err := u.invoiceRepo.Create(ctx, inv); err != nil {
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}
	return converter.InvoiceToResponse(inv), nil
}

func (u *invoiceUsecase) UpdateInvoice(ctx context.Context, id string, req *dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	converter.ApplyInvoiceRequest(inv, req)
	if err := u.invoiceRepo.Update(ctx, inv); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, err
	}
	return converter.InvoiceToResponse(inv), nil
}

func (u *invoiceUsecase) DeleteInvoice(ctx context.Context, id string) error {
	deleted, err := u.invoiceRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete invoice: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// PayInvoice moves an unpaid invoice to paid. Paying twice is a conflict.
func (u *invoiceUsecase) PayInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == entity.InvoicePaid {
		return nil, ErrInvoiceAlreadyPaid
	}

	inv.Status = entity.InvoicePaid
	if err := u.invoiceRepo.Update(ctx, inv); err != nil {
		u.log.Warnf("Failed to pay invoice: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.audit.Record(ctx, service.AuditEntry{
		ActorID:  actorID,
		Action:   service.AuditActionInvoicePaid,
		Entity:   "invoice",
		EntityID: inv.ID,
		OldValue: entity.InvoiceUnpaid,
		NewValue: inv.Status,
	})

	return converter.InvoiceToResponse(inv), nil
}

func (u *invoiceUsecase) find(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}
