package treasury

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fount-Gallery/fount-contracts/fount/database/repositories"
)

// PostgresTreasury backs custody of bid funds with the wallets table. Held
// funds live in the house wallet, so Collect and Disburse are plain wallet
// transfers against it.
type PostgresTreasury struct {
	wallets repositories.WalletRepository
	house   string
}

func NewPostgresTreasury(wallets repositories.WalletRepository, house string) *PostgresTreasury {
	if wallets == nil {
		panic("treasury: nil wallet repository")
	}
	if house == "" {
		panic("treasury: empty house address")
	}
	return &PostgresTreasury{wallets: wallets, house: house}
}

func (t *PostgresTreasury) Collect(ctx context.Context, from string, amount int64) error {
	err := t.wallets.Transfer(ctx, from, t.house, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletInsufficientFunds) {
			return fmt.Errorf("%w: %s", ErrInsufficientFunds, from)
		}
		return err
	}
	return nil
}

func (t *PostgresTreasury) Disburse(ctx context.Context, to string, amount int64) error {
	err := t.wallets.Transfer(ctx, t.house, to, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletInsufficientFunds) {
			return fmt.Errorf("%w: disbursing %d to %s", ErrInsufficientHeldFunds, amount, to)
		}
		return err
	}
	return nil
}

func (t *PostgresTreasury) Accrue(ctx context.Context, owner string, amount int64) error {
	return t.wallets.AccrueProceeds(ctx, owner, amount)
}

func (t *PostgresTreasury) Balance(ctx context.Context, address string) (int64, error) {
	return t.wallets.GetBalance(ctx, address)
}

func (t *PostgresTreasury) Proceeds(ctx context.Context, owner string) (int64, error) {
	return t.wallets.GetProceeds(ctx, owner)
}
