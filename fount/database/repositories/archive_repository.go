package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
)

type ArchiveRepository interface {
	Create(ctx context.Context, auction *models.ArchivedAuction) error
	GetLatestByItemID(ctx context.Context, itemID int64) (*models.ArchivedAuction, error)
	ListRecent(ctx context.Context, limit int) ([]*models.ArchivedAuction, error)
	RecordBid(ctx context.Context, bid *models.ArchivedBid) error
	GetItemBids(ctx context.Context, itemID int64) ([]*models.ArchivedBid, error)
	GetBidderBids(ctx context.Context, bidder string) ([]*models.ArchivedBid, error)
}

type archiveRepository struct {
	db *bun.DB
}

func NewArchiveRepository(db *bun.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Create(ctx context.Context, auction *models.ArchivedAuction) error {
	auction.CreatedAt = time.Now()

	_, err := r.db.NewInsert().Model(auction).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive auction: %w", err)
	}
	return nil
}

func (r *archiveRepository) GetLatestByItemID(ctx context.Context, itemID int64) (*models.ArchivedAuction, error) {
	auction := new(models.ArchivedAuction)
	err := r.db.NewSelect().
		Model(auction).
		Where("item_id = ?", itemID).
		Order("archived_at DESC").
		Limit(1).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get archived auction: %w", err)
	}
	return auction, nil
}

func (r *archiveRepository) ListRecent(ctx context.Context, limit int) ([]*models.ArchivedAuction, error) {
	var auctions []*models.ArchivedAuction
	err := r.db.NewSelect().
		Model(&auctions).
		Order("archived_at DESC").
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list archived auctions: %w", err)
	}
	return auctions, nil
}

func (r *archiveRepository) RecordBid(ctx context.Context, bid *models.ArchivedBid) error {
	bid.CreatedAt = time.Now()

	_, err := r.db.NewInsert().Model(bid).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record bid: %w", err)
	}
	return nil
}

func (r *archiveRepository) GetItemBids(ctx context.Context, itemID int64) ([]*models.ArchivedBid, error) {
	var bids []*models.ArchivedBid
	err := r.db.NewSelect().
		Model(&bids).
		Where("item_id = ?", itemID).
		Order("placed_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get item bids: %w", err)
	}
	return bids, nil
}

func (r *archiveRepository) GetBidderBids(ctx context.Context, bidder string) ([]*models.ArchivedBid, error) {
	var bids []*models.ArchivedBid
	err := r.db.NewSelect().
		Model(&bids).
		Where("bidder = ?", bidder).
		Order("placed_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get bidder bids: %w", err)
	}
	return bids, nil
}
