// Package fount wires the auction engine to its Postgres-backed collaborators.
package fount

import (
	"context"
	"log/slog"

	"github.com/Fount-Gallery/fount-contracts/fount/archive"
	"github.com/Fount-Gallery/fount-contracts/fount/auction"
	"github.com/Fount-Gallery/fount-contracts/fount/custody"
	"github.com/Fount-Gallery/fount-contracts/fount/database"
	"github.com/Fount-Gallery/fount-contracts/fount/database/repositories"
	"github.com/Fount-Gallery/fount-contracts/fount/treasury"
)

func New(cfg Config, version string, commit string) *House {
	return &House{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// House holds the assembled auction service: the engine, its backing
// registry, treasury and archive, and the settlement sweeper.
type House struct {
	Cfg     Config
	Version string
	Commit  string

	DB               *database.DB
	AssetRepository  repositories.AssetRepository
	WalletRepository repositories.WalletRepository
	Registry         *custody.PostgresRegistry
	Treasury         *treasury.PostgresTreasury
	Archive          *archive.Store
	Engine           *auction.Engine
	Sweeper          *auction.Sweeper
}

// Setup builds every collaborator on top of an already connected database.
func (h *House) Setup(ctx context.Context) error {
	settings, err := h.Cfg.AuctionSettings()
	if err != nil {
		return err
	}
	sweepInterval, err := h.Cfg.SweepInterval()
	if err != nil {
		return err
	}

	custodian := h.Cfg.House.Custodian
	if custodian == "" {
		custodian = "fount:house"
	}

	h.AssetRepository = repositories.NewAssetRepository(h.DB.BunDB())
	h.WalletRepository = repositories.NewWalletRepository(h.DB.BunDB())
	archiveRepo := repositories.NewArchiveRepository(h.DB.BunDB())

	h.Registry = custody.NewPostgresRegistry(h.AssetRepository, custodian)
	h.Treasury = treasury.NewPostgresTreasury(h.WalletRepository, custodian)
	h.Archive = archive.NewStore(archiveRepo)

	h.Engine = auction.NewEngine(settings, h.Registry, h.Treasury)
	h.Engine.SetArchiver(h.Archive)

	h.Sweeper = auction.NewSweeper(h.Engine, sweepInterval)

	slog.Info("Auction house assembled",
		slog.String("custodian", custodian),
		slog.Duration("auction_duration", settings.Duration),
		slog.Duration("time_buffer", settings.TimeBuffer),
		slog.Int64("increment_pct", settings.IncrementPercentage),
		slog.Duration("sweep_interval", sweepInterval))
	return nil
}

// Shutdown stops the sweeper and releases the database.
func (h *House) Shutdown() {
	if h.Sweeper != nil {
		h.Sweeper.Shutdown()
	}
	if h.DB != nil {
		h.DB.Close()
	}
}
