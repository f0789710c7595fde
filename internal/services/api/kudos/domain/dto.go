package domain

// ListInput is the body of POST /kudos/list
type ListInput struct {
	Recipient string `json:"recipient,omitempty" validate:"omitempty,max=200" example:"Ada"`
	Team      string `json:"team,omitempty" validate:"omitempty,oneof=engineering product design marketing sales support operations" example:"engineering"`
	Category  string `json:"category,omitempty" validate:"omitempty,oneof=teamwork innovation helping_hand leadership customer_focus above_and_beyond" example:"teamwork"`
	Search    string `json:"search,omitempty" validate:"omitempty,max=200" example:"thanks"`
	From      string `json:"from,omitempty" validate:"date" example:"2025-08-01"`
	To        string `json:"to,omitempty" validate:"date" example:"2025-08-31"`
	Page      int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// Filter extracts the filter part of the body
func (in ListInput) Filter() Filter {
	return Filter{
		Recipient: in.Recipient,
		Team:      Team(in.Team),
		Category:  Category(in.Category),
		Search:    in.Search,
		From:      in.From,
		To:        in.To,
	}
}

// ByUserInput is the body of POST /kudos/by-user
type ByUserInput struct {
	UserID string `json:"user_id" validate:"required,uuid" example:"7b0c3f7e-7c53-4c1e-9b7d-3f2a1d0e8c11"`
	Type   string `json:"type" validate:"required,oneof=received sent" example:"received"`
	Page   int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// Paging defaults applied when a body leaves page or limit out; MaxLimit matches the max tags above
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageOrDefault returns page and limit with zero values replaced by the defaults
func PageOrDefault(page, limit int) (int, int) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return page, limit
}
