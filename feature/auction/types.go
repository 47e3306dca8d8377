package auction

import "time"

// AuctionFields carries the parent's scalar fields for create and update
// calls. The reconciliation engine treats them as opaque.
type AuctionFields struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartPrice  float64    `json:"start_price"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// updates builds the column map for the unconditional parent update.
func (f AuctionFields) updates() map[string]any {
	u := map[string]any{
		"name":        f.Name,
		"description": f.Description,
		"start_price": f.StartPrice,
	}
	if f.StartsAt != nil {
		u["starts_at"] = *f.StartsAt
	}
	if f.EndsAt != nil {
		u["ends_at"] = *f.EndsAt
	}
	return u
}

// ParticipantInput is one submitted participant row. ID stays untyped; the
// engine's identity resolver decides existing vs new, and malformed values
// simply mean new.
type ParticipantInput struct {
	ID     any   `json:"id,omitempty"`
	UserID int64 `json:"user_id"`
	Status int   `json:"status"`
}

// ItemInput is one submitted item row.
type ItemInput struct {
	ID          any     `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartPrice  float64 `json:"start_price"`
	SortOrder   int     `json:"sort_order"`
}

// toAny widens a typed slice for the engine, preserving order.
func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
