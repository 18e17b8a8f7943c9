package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Wallet holds the free balance of one address. The engine's own custody is
// a wallet like any other, addressed by the configured house address.
type Wallet struct {
	bun.BaseModel `bun:"table:wallets,alias:w"`

	Address string `bun:"address,pk"`
	Balance int64  `bun:"balance,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Proceeds is the per-seller earmark over funds held by the house wallet.
// Rows only ever grow here; a withdrawal path drains them elsewhere.
type Proceeds struct {
	bun.BaseModel `bun:"table:proceeds,alias:pr"`

	Owner  string `bun:"owner,pk"`
	Amount int64  `bun:"amount,notnull,default:0"`

	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
