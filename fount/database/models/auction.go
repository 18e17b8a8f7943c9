package models

import (
	"time"

	"github.com/uptrace/bun"
)

type AuctionOutcome string

const (
	AuctionOutcomeSettled   AuctionOutcome = "settled"
	AuctionOutcomeCancelled AuctionOutcome = "cancelled"
)

// ArchivedAuction is the terminal snapshot of an auction written when its
// ledger record is deleted. Live auction state never touches the database.
type ArchivedAuction struct {
	bun.BaseModel `bun:"table:archived_auctions,alias:aa"`

	ID           int64          `bun:"id,pk,autoincrement"`
	ItemID       int64          `bun:"item_id,notnull"`
	ListingOwner string         `bun:"listing_owner,notnull"`
	Winner       string         `bun:"winner"`
	FinalPrice   int64          `bun:"final_price,notnull"`
	Outcome      AuctionOutcome `bun:"outcome,notnull"`
	StartTime    time.Time      `bun:"start_time,notnull"`
	EndTime      time.Time      `bun:"end_time,notnull"`
	ArchivedAt   time.Time      `bun:"archived_at,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// ArchivedBid is one accepted bid, recorded as it lands.
type ArchivedBid struct {
	bun.BaseModel `bun:"table:archived_bids,alias:ab"`

	ID       int64     `bun:"id,pk,autoincrement"`
	ItemID   int64     `bun:"item_id,notnull"`
	Bidder   string    `bun:"bidder,notnull"`
	Amount   int64     `bun:"amount,notnull"`
	PlacedAt time.Time `bun:"placed_at,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull"`
}
