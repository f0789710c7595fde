package module

import (
	"context"

	"kudoswall/internal/services/api/stats/domain"
	statssvc "kudoswall/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc *statssvc.Svc }

// Summary returns dashboard totals for a window
func (a adaptStatsPort) Summary(ctx context.Context, in domain.SummaryInput) (domain.Summary, error) {
	return a.svc.Summary(ctx, in)
}

// TopRecipients ranks recipients in a window
func (a adaptStatsPort) TopRecipients(ctx context.Context, in domain.TopRecipientsInput) ([]domain.RecipientRow, error) {
	return a.svc.TopRecipients(ctx, in)
}
