package service

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditService interface {
	AuditRecorder
	LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogEvent(ctx context.Context, userID *uuid.UUID, action string) error
	ListRecent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogEvent logs an action that has no entity payload, such as login.
func (s *auditService) LogEvent(ctx context.Context, userID *uuid.UUID, action string) error {
	return s.write(ctx, userID, action, nil)
}

func (s *auditService) ListRecent(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > maxAuditPage {
		limit = maxAuditPage
	}
	logs, err := s.auditRepo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return logs, nil
}

const maxAuditPage = 200

func (s *auditService) write(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
