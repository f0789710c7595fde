// Package domain holds DTOs for stats http and service contracts
package domain

import "time"

// Dates are YYYY-MM-DD, inclusive, UTC

// TimeRange defines a start and end date for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// SummaryInput is the body of POST /stats/summary
type SummaryInput struct {
	Range TimeRange `json:"range"`
	Team  string    `json:"team,omitempty" validate:"omitempty,oneof=engineering product design marketing sales support operations" example:"engineering"`
}

// Bucket is a count under one key
type Bucket struct {
	Key   string `json:"key" example:"teamwork"`
	Kudos int64  `json:"kudos" example:"42"`
}

// DayBucket is a count for one UTC day
type DayBucket struct {
	Day   string `json:"day" example:"2025-08-01"`
	Kudos int64  `json:"kudos" example:"7"`
}

// Summary is the dashboard overview for a window
type Summary struct {
	Total      int64       `json:"total" example:"120"`
	ByTeam     []Bucket    `json:"by_team"`
	ByCategory []Bucket    `json:"by_category"`
	Daily      []DayBucket `json:"daily"`
	Backend    string      `json:"backend" example:"pg"`
}

// TopRecipientsInput is the body of POST /stats/top-recipients
type TopRecipientsInput struct {
	Range TimeRange `json:"range"`
	Team  string    `json:"team,omitempty" validate:"omitempty,oneof=engineering product design marketing sales support operations" example:"engineering"`
	Limit int       `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// RecipientRow is one ranked recipient
type RecipientRow struct {
	RecipientID   string `json:"recipient_id"`
	RecipientName string `json:"recipient_name" example:"Ada Lovelace"`
	Kudos         int64  `json:"kudos" example:"9"`
}

// Window is the resolved query window: Start inclusive, End exclusive, Team optional
type Window struct {
	Start time.Time
	End   time.Time
	Team  string
}
