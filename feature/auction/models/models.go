package models

import "time"

// Auction is the parent entity owning participants and items. The id is
// assigned at creation and immutable; `deleted` is the soft-delete flag that
// gates whether reconciliation may touch the row.
type Auction struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	StartPrice  float64    `gorm:"column:start_price" json:"start_price"`
	StartsAt    *time.Time `gorm:"column:starts_at" json:"starts_at,omitempty"`
	EndsAt      *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
	Deleted     int        `gorm:"column:deleted;default:0" json:"-"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (Auction) TableName() string {
	return "auctions"
}

// Participant is a child row on the auction's participant list.
// Created, updated, and deleted only through parent reconciliation.
type Participant struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	AuctionID int64     `gorm:"column:auction_id" json:"auction_id"`
	UserID    int64     `gorm:"column:user_id" json:"user_id"`
	Status    int       `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (Participant) TableName() string {
	return "auction_participants"
}

// Item is a child row on the auction's item list.
type Item struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	AuctionID   int64     `gorm:"column:auction_id" json:"auction_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	StartPrice  float64   `gorm:"column:start_price" json:"start_price"`
	SortOrder   int       `gorm:"column:sort_order" json:"sort_order"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "auction_items"
}
