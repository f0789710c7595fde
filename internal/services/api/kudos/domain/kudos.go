// Package domain holds the kudos model, filter and repository port
package domain

import (
	"strings"
	"time"

	perr "kudoswall/internal/platform/errors"
)

// Kudos is one recognition record; immutable once written
type Kudos struct {
	ID            string    `json:"id" example:"7b0c3f7e-7c53-4c1e-9b7d-3f2a1d0e8c11"`
	RecipientID   string    `json:"recipientId"`
	RecipientName string    `json:"recipientName" example:"Ada Lovelace"`
	TeamName      Team      `json:"teamName" example:"engineering"`
	Category      Category  `json:"category" example:"teamwork"`
	Message       string    `json:"message" example:"Thanks for pairing on the release"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName" example:"Grace Hopper"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Team is the closed set of teams a kudos is filed under
type Team string

// Teams
const (
	TeamEngineering Team = "engineering"
	TeamProduct     Team = "product"
	TeamDesign      Team = "design"
	TeamMarketing   Team = "marketing"
	TeamSales       Team = "sales"
	TeamSupport     Team = "support"
	TeamOperations  Team = "operations"
)

// Teams lists every team in display order
func Teams() []Team {
	return []Team{TeamEngineering, TeamProduct, TeamDesign, TeamMarketing, TeamSales, TeamSupport, TeamOperations}
}

// Valid reports whether t is a known team
func (t Team) Valid() bool {
	switch t {
	case TeamEngineering, TeamProduct, TeamDesign, TeamMarketing, TeamSales, TeamSupport, TeamOperations:
		return true
	}
	return false
}

// ParseTeam is case insensitive; unknown names are invalid arguments
func ParseTeam(s string) (Team, error) {
	t := Team(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", perr.WithField(perr.InvalidArgf("unknown team %q", s), "team")
	}
	return t, nil
}

// Category is the closed set of recognition categories
type Category string

// Categories
const (
	CategoryTeamwork       Category = "teamwork"
	CategoryInnovation     Category = "innovation"
	CategoryHelpingHand    Category = "helping_hand"
	CategoryLeadership     Category = "leadership"
	CategoryCustomerFocus  Category = "customer_focus"
	CategoryAboveAndBeyond Category = "above_and_beyond"
)

// Categories lists every category in display order
func Categories() []Category {
	return []Category{
		CategoryTeamwork, CategoryInnovation, CategoryHelpingHand,
		CategoryLeadership, CategoryCustomerFocus, CategoryAboveAndBeyond,
	}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryTeamwork, CategoryInnovation, CategoryHelpingHand,
		CategoryLeadership, CategoryCustomerFocus, CategoryAboveAndBeyond:
		return true
	}
	return false
}

// ParseCategory accepts snake or kebab case, any letter case
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !c.Valid() {
		return "", perr.WithField(perr.InvalidArgf("unknown category %q", s), "category")
	}
	return c, nil
}

// UserKudosType selects which side of a kudos the user is on
type UserKudosType string

// Sides
const (
	Received UserKudosType = "received"
	Sent     UserKudosType = "sent"
)

// Valid reports whether t is received or sent
func (t UserKudosType) Valid() bool { return t == Received || t == Sent }

// ParseUserKudosType rejects anything but received and sent
func ParseUserKudosType(s string) (UserKudosType, error) {
	t := UserKudosType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", perr.WithField(perr.InvalidArgf("type must be received or sent, got %q", s), "type")
	}
	return t, nil
}
