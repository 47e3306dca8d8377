package models

import "time"

// User is the parent entity owning company memberships.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username" json:"username"`
	Email     string    `gorm:"column:email" json:"email"`
	Deleted   int       `gorm:"column:deleted;default:0" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// CompanyMembership links a user to a company. At most one membership per
// user may carry is_primary at any time; the reconciliation engine enforces
// that atomically when a new primary is submitted.
type CompanyMembership struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id" json:"user_id"`
	CompanyID int64     `gorm:"column:company_id" json:"company_id"`
	Role      string    `gorm:"column:role" json:"role"`
	IsPrimary bool      `gorm:"column:is_primary" json:"is_primary"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (CompanyMembership) TableName() string {
	return "company_memberships"
}
