package services

import (
	"go.uber.org/zap"

	"kexpay/internal/logger"
)

// auditService records mutations as structured log events.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer writing to the "audit" logger.
func NewAuditService() AuditServicer {
	return &auditService{log: logger.Named("audit")}
}

// NewAuditServiceWithLogger creates an AuditServicer writing to log.
func NewAuditServiceWithLogger(log *zap.SugaredLogger) AuditServicer {
	return &auditService{log: log}
}

// Log records an audit event. It never fails the calling operation.
func (s *auditService) Log(action, resourceType, resourceID string, changes map[string]any) {
	fields := []any{
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	}
	if len(changes) > 0 {
		fields = append(fields, "changes", changes)
	}
	s.log.Infow("audit", fields...)
}
