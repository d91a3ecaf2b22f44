package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditService service.AuditService
}

func NewAuditLogUsecase(log *logrus.Logger, auditService service.AuditService) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditService: auditService,
	}
}

// GetRecentAuditLogs lists entries newest first. A non-positive limit means
// the service maximum.
func (u *auditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditService.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	logResponses := converter.AuditLogsToResponses(logs)

	return &dto.AuditLogListResponse{
		Logs:  logResponses,
		Total: len(logs),
	}, nil
}
