package domain

import (
	"strings"
	"time"

	perr "kudoswall/internal/platform/errors"
	ptime "kudoswall/internal/platform/time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Filter narrows a kudos listing; zero fields are unconstrained and the rest AND together
// From and To are inclusive YYYY-MM-DD dates in UTC
type Filter struct {
	Recipient string   `json:"recipient,omitempty"`
	Team      Team     `json:"team,omitempty"`
	Category  Category `json:"category,omitempty"`
	Search    string   `json:"search,omitempty"`
	From      string   `json:"from,omitempty"`
	To        string   `json:"to,omitempty"`
}

// FilterPatch is a partial filter; nil keeps the current value, a pointer to "" clears it
type FilterPatch struct {
	Recipient *string
	Team      *Team
	Category  *Category
	Search    *string
	From      *string
	To        *string
}

// Merge returns f with every non nil field of p applied
func (f Filter) Merge(p FilterPatch) Filter {
	if p.Recipient != nil {
		f.Recipient = *p.Recipient
	}
	if p.Team != nil {
		f.Team = *p.Team
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.From != nil {
		f.From = *p.From
	}
	if p.To != nil {
		f.To = *p.To
	}
	return f
}

// IsZero reports whether f constrains nothing
func (f Filter) IsZero() bool { return f == Filter{} }

// Validate checks the enumerations and the date range
func (f Filter) Validate() error {
	if f.Team != "" && !f.Team.Valid() {
		return perr.WithField(perr.InvalidArgf("unknown team %q", f.Team), "team")
	}
	if f.Category != "" && !f.Category.Valid() {
		return perr.WithField(perr.InvalidArgf("unknown category %q", f.Category), "category")
	}
	from, to, err := f.Dates()
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return perr.WithField(perr.InvalidArgf("to %s is before from %s", f.To, f.From), "to")
	}
	return nil
}

// Dates parses From and To; blanks come back as zero times
func (f Filter) Dates() (from, to time.Time, err error) {
	if s := strings.TrimSpace(f.From); s != "" {
		if from, err = ptime.ParseDate(s); err != nil {
			return from, to, perr.WithField(perr.InvalidArgf("from must be YYYY-MM-DD, got %q", s), "from")
		}
	}
	if s := strings.TrimSpace(f.To); s != "" {
		if to, err = ptime.ParseDate(s); err != nil {
			return from, to, perr.WithField(perr.InvalidArgf("to must be YYYY-MM-DD, got %q", s), "to")
		}
	}
	return from, to, nil
}

// FoldSearch normalises text for case insensitive matching
// NFKC first so compatibility forms fold the same, then full case folding and
// whitespace collapsed to single spaces
func FoldSearch(s string) string {
	folded := cases.Fold().String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}

// SearchText is the stored haystack for a kudos: message, recipient and author folded together
func SearchText(k Kudos) string {
	return FoldSearch(k.Message + " " + k.RecipientName + " " + k.CreatedByName)
}
