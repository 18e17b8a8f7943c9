// Package archive persists terminal auction outcomes and accepted bids.
// The live engine holds all auction state in memory; this package is the
// write-behind history of what happened once records leave the ledger.
package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fount-Gallery/fount-contracts/fount/auction"
	"github.com/Fount-Gallery/fount-contracts/fount/database/models"
	"github.com/Fount-Gallery/fount-contracts/fount/database/repositories"
)

// Store implements the engine's archiver hooks over the archive repository,
// with an LRU cache in front of outcome reads.
type Store struct {
	repo  repositories.ArchiveRepository
	cache *outcomeCache
}

func NewStore(repo repositories.ArchiveRepository) *Store {
	if repo == nil {
		panic("archive: nil archive repository")
	}
	return &Store{
		repo:  repo,
		cache: newOutcomeCache(defaultCacheSize),
	}
}

func (s *Store) AuctionSettled(ctx context.Context, itemID int64, rec auction.Record, at time.Time) error {
	archived := &models.ArchivedAuction{
		ItemID:       itemID,
		ListingOwner: rec.ListingOwner,
		Winner:       rec.HighestBidder,
		FinalPrice:   rec.HighestBid,
		Outcome:      models.AuctionOutcomeSettled,
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		ArchivedAt:   at,
	}

	if err := s.repo.Create(ctx, archived); err != nil {
		return err
	}

	s.cache.put(itemID, archived)
	slog.Info("Archived settled auction",
		slog.Int64("item_id", itemID),
		slog.String("winner", rec.HighestBidder),
		slog.Int64("final_price", rec.HighestBid))
	return nil
}

func (s *Store) AuctionCancelled(ctx context.Context, itemID int64, rec auction.Record, at time.Time) error {
	archived := &models.ArchivedAuction{
		ItemID:       itemID,
		ListingOwner: rec.ListingOwner,
		Outcome:      models.AuctionOutcomeCancelled,
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		ArchivedAt:   at,
	}

	if err := s.repo.Create(ctx, archived); err != nil {
		return err
	}

	s.cache.put(itemID, archived)
	slog.Info("Archived cancelled auction", slog.Int64("item_id", itemID))
	return nil
}

func (s *Store) BidPlaced(ctx context.Context, itemID int64, bidder string, amount int64, at time.Time) error {
	return s.repo.RecordBid(ctx, &models.ArchivedBid{
		ItemID:   itemID,
		Bidder:   bidder,
		Amount:   amount,
		PlacedAt: at,
	})
}

// Outcome returns the most recent archived run for an item, or nil when the
// item has never finished an auction. Cached reads are served without
// touching the database until the entry goes stale.
func (s *Store) Outcome(ctx context.Context, itemID int64) (*models.ArchivedAuction, error) {
	if cached, ok := s.cache.get(itemID); ok {
		return cached, nil
	}

	archived, err := s.repo.GetLatestByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if archived != nil {
		s.cache.put(itemID, archived)
	}
	return archived, nil
}

// RecentOutcomes lists the newest archived auctions, most recent first.
func (s *Store) RecentOutcomes(ctx context.Context, limit int) ([]*models.ArchivedAuction, error) {
	return s.repo.ListRecent(ctx, limit)
}

// BidHistory returns every accepted bid for an item in the order placed.
func (s *Store) BidHistory(ctx context.Context, itemID int64) ([]*models.ArchivedBid, error) {
	return s.repo.GetItemBids(ctx, itemID)
}

// BidderHistory returns a bidder's accepted bids, newest first.
func (s *Store) BidderHistory(ctx context.Context, bidder string) ([]*models.ArchivedBid, error) {
	return s.repo.GetBidderBids(ctx, bidder)
}
