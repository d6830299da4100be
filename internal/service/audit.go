package service

import (
	"context"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

// auditor writes the activity log. A failed write is logged and swallowed so
// that the outcome the caller sees never depends on the audit table.
type auditor struct {
	repo store.ActivityRepository
}

func (a auditor) record(ctx context.Context, entry models.ActivityLog) {
	if err := a.repo.LogActivity(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("activity_type", string(entry.ActivityType)).
			Msg("audit log write failed")
	}
}

func (a auditor) success(ctx context.Context, userID int64, activity models.ActivityType, description string, meta models.ClientMeta) {
	a.record(ctx, models.ActivityLog{
		UserID:       &userID,
		ActivityType: activity,
		Description:  description,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
}

// suspicious records a failed or rejected attempt. userID is nil when the
// email did not resolve to an account.
func (a auditor) suspicious(ctx context.Context, userID *int64, activity models.ActivityType, description string, risk int, meta models.ClientMeta) {
	a.record(ctx, models.ActivityLog{
		UserID:       userID,
		ActivityType: activity,
		Description:  description,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		IsSuspicious: true,
		RiskScore:    risk,
	})
}
