package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Asset is one non-fungible item in the ownership registry. Approved names
// the single address the owner has authorized to escrow the item.
type Asset struct {
	bun.BaseModel `bun:"table:assets,alias:ast"`

	TokenID  int64  `bun:"token_id,pk"`
	Owner    string `bun:"owner,notnull"`
	Approved string `bun:"approved"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
