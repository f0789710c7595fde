package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in SummaryInput) (Summary, error)
	TopRecipients(ctx context.Context, in TopRecipientsInput) ([]RecipientRow, error)
}
