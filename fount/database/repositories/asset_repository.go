package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByTokenID(ctx context.Context, tokenID int64) (*models.Asset, error)
	SetApproved(ctx context.Context, tokenID int64, owner, operator string) (bool, error)
	Transfer(ctx context.Context, tokenID int64, from, to string, requireApproval string) (bool, error)
}

type assetRepository struct {
	db *bun.DB
}

func NewAssetRepository(db *bun.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().Model(asset).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetByTokenID returns the asset row, or nil when the token was never minted.
func (r *assetRepository) GetByTokenID(ctx context.Context, tokenID int64) (*models.Asset, error) {
	asset := new(models.Asset)
	err := r.db.NewSelect().
		Model(asset).
		Where("token_id = ?", tokenID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// SetApproved records operator as the approved escrow target. It reports
// whether a row matched, i.e. whether owner actually owns the token.
func (r *assetRepository) SetApproved(ctx context.Context, tokenID int64, owner, operator string) (bool, error) {
	result, err := r.db.NewUpdate().
		Model((*models.Asset)(nil)).
		Set("approved = ?", operator).
		Set("updated_at = ?", time.Now()).
		Where("token_id = ? AND owner = ?", tokenID, owner).
		Exec(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to approve asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Transfer moves the token from one owner to another inside a serializable
// transaction. When requireApproval is non-empty the row must carry that
// approval, and the approval is cleared on success. It reports whether the
// guarded update matched a row.
func (r *assetRepository) Transfer(ctx context.Context, tokenID int64, from, to string, requireApproval string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	asset := new(models.Asset)
	err = tx.NewSelect().
		Model(asset).
		Where("token_id = ?", tokenID).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock asset: %w", err)
	}

	q := tx.NewUpdate().
		Model((*models.Asset)(nil)).
		Set("owner = ?", to).
		Set("approved = ''").
		Set("updated_at = ?", time.Now()).
		Where("token_id = ? AND owner = ?", tokenID, from)

	if requireApproval != "" {
		q = q.Where("approved = ?", requireApproval)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to transfer asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transfer: %w", err)
	}
	return true, nil
}
