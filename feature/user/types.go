package user

// UserFields carries the parent's scalar fields for create and update calls.
type UserFields struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (f UserFields) updates() map[string]any {
	return map[string]any{
		"username": f.Username,
		"email":    f.Email,
	}
}

// MembershipInput is one submitted company membership row. ID stays untyped
// for the engine's identity resolver.
type MembershipInput struct {
	ID        any    `json:"id,omitempty"`
	CompanyID int64  `json:"company_id"`
	Role      string `json:"role"`
	IsPrimary bool   `json:"is_primary"`
}

func toAny(in []MembershipInput) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
