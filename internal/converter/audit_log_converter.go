package converter

import (
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
)

// AuditLogsToListResponse shapes a doctor's audit rows for /me/audit-logs.
// Rows keep the repository order (newest first) and Logs is never nil.
func AuditLogsToListResponse(logs []entity.AuditLog) *dto.AuditLogListResponse {
	entries := make([]dto.AuditLogResponse, 0, len(logs))
	for _, row := range logs {
		entries = append(entries, dto.AuditLogResponse{
			ID:        row.ID,
			Action:    row.Action,
			Metadata:  row.Metadata,
			CreatedAt: row.CreatedAt,
		})
	}
	return &dto.AuditLogListResponse{
		Logs:  entries,
		Total: len(entries),
	}
}
