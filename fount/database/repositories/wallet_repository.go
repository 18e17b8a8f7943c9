package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
)

// ErrWalletInsufficientFunds is returned when a transfer exceeds the payer's
// balance.
var ErrWalletInsufficientFunds = errors.New("insufficient wallet balance")

type WalletRepository interface {
	Credit(ctx context.Context, address string, amount int64) error
	GetBalance(ctx context.Context, address string) (int64, error)
	Transfer(ctx context.Context, from, to string, amount int64) error
	AccrueProceeds(ctx context.Context, owner string, amount int64) error
	GetProceeds(ctx context.Context, owner string) (int64, error)
}

type walletRepository struct {
	db *bun.DB
}

func NewWalletRepository(db *bun.DB) WalletRepository {
	return &walletRepository{db: db}
}

// Credit adds funds to a wallet, creating the row if needed.
func (r *walletRepository) Credit(ctx context.Context, address string, amount int64) error {
	_, err := r.db.NewInsert().
		Model(&models.Wallet{
			Address:   address,
			Balance:   amount,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).
		On("CONFLICT (address) DO UPDATE").
		Set("balance = w.balance + EXCLUDED.balance").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetBalance(ctx context.Context, address string) (int64, error) {
	wallet := new(models.Wallet)
	err := r.db.NewSelect().
		Model(wallet).
		Where("address = ?", address).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return wallet.Balance, nil
}

// Transfer moves amount between two wallets inside a serializable
// transaction, locking the payer row first.
func (r *walletRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	payer := new(models.Wallet)
	err = tx.NewSelect().
		Model(payer).
		Where("address = ?", from).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s has 0, needs %d", ErrWalletInsufficientFunds, from, amount)
		}
		return fmt.Errorf("failed to lock payer wallet: %w", err)
	}

	if payer.Balance < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrWalletInsufficientFunds, from, payer.Balance, amount)
	}

	_, err = tx.NewUpdate().
		Model((*models.Wallet)(nil)).
		Set("balance = balance - ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("address = ?", from).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to debit payer: %w", err)
	}

	_, err = tx.NewInsert().
		Model(&models.Wallet{
			Address:   to,
			Balance:   amount,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).
		On("CONFLICT (address) DO UPDATE").
		Set("balance = w.balance + EXCLUDED.balance").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to credit payee: %w", err)
	}

	return tx.Commit()
}

func (r *walletRepository) AccrueProceeds(ctx context.Context, owner string, amount int64) error {
	_, err := r.db.NewInsert().
		Model(&models.Proceeds{
			Owner:     owner,
			Amount:    amount,
			UpdatedAt: time.Now(),
		}).
		On("CONFLICT (owner) DO UPDATE").
		Set("amount = pr.amount + EXCLUDED.amount").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to accrue proceeds: %w", err)
	}
	return nil
}

func (r *walletRepository) GetProceeds(ctx context.Context, owner string) (int64, error) {
	proceeds := new(models.Proceeds)
	err := r.db.NewSelect().
		Model(proceeds).
		Where("owner = ?", owner).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get proceeds: %w", err)
	}
	return proceeds.Amount, nil
}
