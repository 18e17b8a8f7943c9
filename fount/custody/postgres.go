package custody

import (
	"context"
	"fmt"

	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
	"github.com/Fount-Gallery/fount-contracts/fount/database/repositories"
)

// PostgresRegistry keeps asset ownership in the assets table. The custodian
// address plays the same role as in MemoryRegistry: escrowed items are owned
// by it until released.
type PostgresRegistry struct {
	repo      repositories.AssetRepository
	custodian string
}

func NewPostgresRegistry(repo repositories.AssetRepository, custodian string) *PostgresRegistry {
	if repo == nil {
		panic("custody: nil asset repository")
	}
	if custodian == "" {
		panic("custody: empty custodian address")
	}
	return &PostgresRegistry{repo: repo, custodian: custodian}
}

// Mint creates a new asset owned by owner. Fails if the token already exists.
func (r *PostgresRegistry) Mint(ctx context.Context, tokenID int64, owner string) error {
	if owner == "" {
		return fmt.Errorf("%w: item %d", ErrZeroAddress, tokenID)
	}

	existing, err := r.repo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: item %d", ErrAlreadyMinted, tokenID)
	}

	return r.repo.Create(ctx, &models.Asset{
		TokenID: tokenID,
		Owner:   owner,
	})
}

// Approve marks the custodian as allowed to pull the token from owner.
func (r *PostgresRegistry) Approve(ctx context.Context, owner string, tokenID int64) error {
	ok, err := r.repo.SetApproved(ctx, tokenID, owner, r.custodian)
	if err != nil {
		return err
	}
	if !ok {
		existing, err := r.repo.GetByTokenID(ctx, tokenID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: item %d", ErrAssetNotFound, tokenID)
		}
		return fmt.Errorf("%w: item %d is owned by %s", ErrNotAssetOwner, tokenID, existing.Owner)
	}
	return nil
}

func (r *PostgresRegistry) OwnerOf(ctx context.Context, tokenID int64) (string, error) {
	asset, err := r.repo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", fmt.Errorf("%w: item %d", ErrAssetNotFound, tokenID)
	}
	return asset.Owner, nil
}

// TransferInto pulls the token from its owner into custodian escrow. The
// owner must have approved the custodian first.
func (r *PostgresRegistry) TransferInto(ctx context.Context, from string, tokenID int64) error {
	ok, err := r.repo.Transfer(ctx, tokenID, from, r.custodian, r.custodian)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// The guarded update matched nothing; work out why for the caller.
	asset, err := r.repo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("%w: item %d", ErrAssetNotFound, tokenID)
	}
	if asset.Owner != from {
		return fmt.Errorf("%w: item %d is owned by %s", ErrNotAssetOwner, tokenID, asset.Owner)
	}
	return fmt.Errorf("%w: item %d", ErrTransferNotApproved, tokenID)
}

// TransferOut releases the token from escrow to the given address.
func (r *PostgresRegistry) TransferOut(ctx context.Context, to string, tokenID int64) error {
	if to == "" {
		return fmt.Errorf("%w: item %d", ErrZeroAddress, tokenID)
	}

	ok, err := r.repo.Transfer(ctx, tokenID, r.custodian, to, "")
	if err != nil {
		return err
	}
	if !ok {
		asset, err := r.repo.GetByTokenID(ctx, tokenID)
		if err != nil {
			return err
		}
		if asset == nil {
			return fmt.Errorf("%w: item %d", ErrAssetNotFound, tokenID)
		}
		return fmt.Errorf("%w: item %d is not in escrow", ErrNotAssetOwner, tokenID)
	}
	return nil
}
