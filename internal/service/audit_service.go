package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Audit actions
const (
	AuditActionDoctorLink  = "user.doctor_link"
	AuditActionInvoicePaid = "invoice.paid"
)

// AuditEntry describes one administrative change.
type AuditEntry struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	OldValue interface{}
	NewValue interface{}
}

type AuditService interface {
	Record(ctx context.Context, entry AuditEntry)
}

type auditService struct {
	log *logrus.Logger
}

// NewAuditService writes audit entries to the application log, tagged with
// audit=true so they can be filtered out of the regular stream.
func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{
		log: log,
	}
}

func (s *auditService) Record(ctx context.Context, entry AuditEntry) {
	s.log.WithContext(ctx).WithFields(logrus.Fields{
		"audit":     true,
		"actor_id":  entry.ActorID,
		"action":    entry.Action,
		"entity":    entry.Entity,
		"entity_id": entry.EntityID,
		"old_value": entry.OldValue,
		"new_value": entry.NewValue,
	}).Info("Audit")
}
