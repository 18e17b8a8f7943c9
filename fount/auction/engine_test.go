package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fount-Gallery/fount-contracts/fount/custody"
	"github.com/Fount-Gallery/fount-contracts/fount/treasury"
)

const custodian = "fount:house"

type fixture struct {
	engine   *Engine
	registry *custody.MemoryRegistry
	treasury *treasury.MemoryTreasury
	now      time.Time
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()

	f := &fixture{
		registry: custody.NewMemoryRegistry(custodian),
		treasury: treasury.NewMemoryTreasury(),
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.engine = NewEngine(cfg, f.registry, f.treasury)
	f.engine.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// list mints an item for seller, approves escrow and opens an auction
// starting at the current fake time.
func (f *fixture) list(t *testing.T, id int64, seller string) {
	t.Helper()
	ctx := context.Background()

	if err := f.registry.Mint(ctx, id, seller); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := f.registry.Approve(ctx, seller, id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := f.engine.CreateAuction(ctx, id, seller, f.now); err != nil {
		t.Fatalf("create auction: %v", err)
	}
}

func TestCreateAuction(t *testing.T) {
	ctx := context.Background()

	t.Run("escrows the item", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.list(t, 1, "alice")

		owner, err := f.registry.OwnerOf(ctx, 1)
		if err != nil {
			t.Fatalf("owner of: %v", err)
		}
		if owner != custodian {
			t.Errorf("expected item in custody, owned by %s", owner)
		}
		if got := f.engine.AuctionListingOwner(1); got != "alice" {
			t.Errorf("expected listing owner alice, got %q", got)
		}
		if got := f.engine.TotalActiveAuctions(); got != 1 {
			t.Errorf("expected 1 active auction, got %d", got)
		}
	})

	t.Run("rejects a duplicate listing", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.list(t, 1, "alice")

		err := f.engine.CreateAuction(ctx, 1, "alice", f.now)
		if !errors.Is(err, ErrAuctionAlreadyExists) {
			t.Errorf("expected ErrAuctionAlreadyExists, got %v", err)
		}
	})

	t.Run("fails without escrow approval", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		if err := f.registry.Mint(ctx, 1, "alice"); err != nil {
			t.Fatalf("mint: %v", err)
		}

		err := f.engine.CreateAuction(ctx, 1, "alice", f.now)
		if !errors.Is(err, custody.ErrTransferNotApproved) {
			t.Errorf("expected ErrTransferNotApproved, got %v", err)
		}
		if got := f.engine.TotalActiveAuctions(); got != 0 {
			t.Errorf("expected no active auctions after failed create, got %d", got)
		}
	})

	t.Run("fails for an unknown item", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		err := f.engine.CreateAuction(ctx, 99, "alice", f.now)
		if !errors.Is(err, custody.ErrAssetNotFound) {
			t.Errorf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("fails for a non-owner", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		if err := f.registry.Mint(ctx, 1, "alice"); err != nil {
			t.Fatalf("mint: %v", err)
		}
		if err := f.registry.Approve(ctx, "alice", 1); err != nil {
			t.Fatalf("approve: %v", err)
		}

		err := f.engine.CreateAuction(ctx, 1, "mallory", f.now)
		if !errors.Is(err, custody.ErrNotAssetOwner) {
			t.Errorf("expected ErrNotAssetOwner, got %v", err)
		}
	})
}

func TestPlaceBidValidation(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	t.Run("unknown auction", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)

		err := f.engine.PlaceBid(ctx, 42, "bob", 100)
		if !errors.Is(err, ErrAuctionNotStarted) {
			t.Errorf("expected ErrAuctionNotStarted, got %v", err)
		}
	})

	t.Run("before the scheduled start", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		if err := f.registry.Mint(ctx, 1, "alice"); err != nil {
			t.Fatalf("mint: %v", err)
		}
		if err := f.registry.Approve(ctx, "alice", 1); err != nil {
			t.Fatalf("approve: %v", err)
		}
		if err := f.engine.CreateAuction(ctx, 1, "alice", f.now.Add(time.Hour)); err != nil {
			t.Fatalf("create auction: %v", err)
		}

		err := f.engine.PlaceBid(ctx, 1, "bob", 100)
		if !errors.Is(err, ErrAuctionNotStarted) {
			t.Errorf("expected ErrAuctionNotStarted, got %v", err)
		}

		// At the exact start time the bid lands.
		f.advance(time.Hour)
		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Errorf("expected bid at start time to land, got %v", err)
		}
	})

	t.Run("after the end", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.treasury.Deposit("carol", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Fatalf("first bid: %v", err)
		}

		f.advance(cfg.Duration + time.Second)
		err := f.engine.PlaceBid(ctx, 1, "carol", 200)
		if !errors.Is(err, ErrAuctionEnded) {
			t.Errorf("expected ErrAuctionEnded, got %v", err)
		}
	})

	t.Run("below the reserve", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		err := f.engine.PlaceBid(ctx, 1, "bob", 99)
		if !errors.Is(err, ErrReserveNotMet) {
			t.Fatalf("expected ErrReserveNotMet, got %v", err)
		}

		var rerr *ReserveNotMetError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ReserveNotMetError, got %T", err)
		}
		if rerr.Required != 100 || rerr.Got != 99 {
			t.Errorf("expected required=100 got=99, have required=%d got=%d", rerr.Required, rerr.Got)
		}
		if got := f.treasury.Balance("bob"); got != 1000 {
			t.Errorf("expected rejected bid to leave balance at 1000, got %d", got)
		}
	})

	t.Run("exactly the reserve", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Errorf("expected bid at reserve to land, got %v", err)
		}
	})

	t.Run("below the minimum increment", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.treasury.Deposit("carol", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Fatalf("first bid: %v", err)
		}

		err := f.engine.PlaceBid(ctx, 1, "carol", 109)
		if !errors.Is(err, ErrMinimumBidNotMet) {
			t.Fatalf("expected ErrMinimumBidNotMet, got %v", err)
		}

		var merr *MinimumBidNotMetError
		if !errors.As(err, &merr) {
			t.Fatalf("expected *MinimumBidNotMetError, got %T", err)
		}
		if merr.Required != 110 || merr.Got != 109 {
			t.Errorf("expected required=110 got=109, have required=%d got=%d", merr.Required, merr.Got)
		}

		// The boundary value is accepted.
		if err := f.engine.PlaceBid(ctx, 1, "carol", 110); err != nil {
			t.Errorf("expected bid at minimum to land, got %v", err)
		}
	})

	t.Run("bidder cannot pay", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 50)
		f.list(t, 1, "alice")

		err := f.engine.PlaceBid(ctx, 1, "bob", 100)
		if !errors.Is(err, treasury.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}
		if f.engine.AuctionHasStarted(1) {
			t.Error("expected auction to remain unstarted after failed collection")
		}
	})
}

func TestPlaceBidRefundsDisplacedBidder(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	f := newFixture(t, cfg)
	f.treasury.Deposit("bob", 1000)
	f.treasury.Deposit("carol", 1000)
	f.list(t, 1, "alice")

	if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if err := f.engine.PlaceBid(ctx, 1, "carol", 200); err != nil {
		t.Fatalf("second bid: %v", err)
	}

	if got := f.treasury.Balance("bob"); got != 1000 {
		t.Errorf("expected bob refunded in full, balance %d", got)
	}
	if got := f.treasury.Balance("carol"); got != 800 {
		t.Errorf("expected carol debited 200, balance %d", got)
	}
	if got := f.treasury.Held(); got != 200 {
		t.Errorf("expected only the leading bid held, got %d", got)
	}
	if got := f.engine.AuctionHighestBidder(1); got != "carol" {
		t.Errorf("expected carol leading, got %q", got)
	}
	if got := f.engine.AuctionHighestBid(1); got != 200 {
		t.Errorf("expected highest bid 200, got %d", got)
	}
}

func TestPlaceBidRefundFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	f := newFixture(t, cfg)
	f.treasury.Deposit("bob", 1000)
	f.treasury.Deposit("carol", 1000)
	f.list(t, 1, "alice")

	if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
		t.Fatalf("first bid: %v", err)
	}

	// Bob refuses the refund, so carol's bid must be rejected whole.
	f.treasury.Block("bob")

	err := f.engine.PlaceBid(ctx, 1, "carol", 200)
	if !errors.Is(err, treasury.ErrTransferRejected) {
		t.Fatalf("expected ErrTransferRejected, got %v", err)
	}

	if got := f.engine.AuctionHighestBidder(1); got != "bob" {
		t.Errorf("expected bob still leading, got %q", got)
	}
	if got := f.engine.AuctionHighestBid(1); got != 100 {
		t.Errorf("expected highest bid still 100, got %d", got)
	}
	if got := f.treasury.Balance("carol"); got != 1000 {
		t.Errorf("expected carol's funds returned, balance %d", got)
	}
	if got := f.treasury.Held(); got != 100 {
		t.Errorf("expected only bob's bid held, got %d", got)
	}
}

func TestAntiSnipeExtension(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	t.Run("late bid pushes the end out", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.treasury.Deposit("carol", 1000)
		f.list(t, 1, "alice")
		end := f.engine.AuctionEndTime(1)

		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Fatalf("first bid: %v", err)
		}

		// Ten minutes before the end, inside the buffer.
		f.advance(cfg.Duration - 10*time.Minute)
		if err := f.engine.PlaceBid(ctx, 1, "carol", 200); err != nil {
			t.Fatalf("snipe bid: %v", err)
		}

		want := f.now.Add(cfg.TimeBuffer)
		if got := f.engine.AuctionEndTime(1); !got.Equal(want) {
			t.Errorf("expected end time %v, got %v", want, got)
		}
		if got := f.engine.AuctionEndTime(1); !got.After(end) {
			t.Errorf("expected end time to move forward from %v, got %v", end, got)
		}
	})

	t.Run("early bid leaves the end alone", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")
		end := f.engine.AuctionEndTime(1)

		f.advance(time.Hour)
		if err := f.engine.PlaceBid(ctx, 1, "bob", 100); err != nil {
			t.Fatalf("bid: %v", err)
		}

		if got := f.engine.AuctionEndTime(1); !got.Equal(end) {
			t.Errorf("expected end time unchanged at %v, got %v", end, got)
		}
	})
}

func TestCancelAuction(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the item before any bid", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.list(t, 1, "alice")

		if err := f.engine.CancelAuction(ctx, 1); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		owner, err := f.registry.OwnerOf(ctx, 1)
		if err != nil {
			t.Fatalf("owner of: %v", err)
		}
		if owner != "alice" {
			t.Errorf("expected item back with alice, owned by %s", owner)
		}
		if got := f.engine.TotalActiveAuctions(); got != 0 {
			t.Errorf("expected 0 active auctions, got %d", got)
		}
	})

	t.Run("refuses once a bid landed", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 10); err != nil {
			t.Fatalf("bid: %v", err)
		}

		err := f.engine.CancelAuction(ctx, 1)
		if !errors.Is(err, ErrAuctionAlreadyStarted) {
			t.Errorf("expected ErrAuctionAlreadyStarted, got %v", err)
		}
		if got := f.engine.TotalActiveAuctions(); got != 1 {
			t.Errorf("expected auction to survive failed cancel, active %d", got)
		}
	})

	t.Run("fails for an unknown auction", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		if err := f.engine.CancelAuction(ctx, 42); err == nil {
			t.Error("expected cancel of unknown auction to fail")
		}
	})
}

func TestSettleAuction(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	t.Run("hands the item to the winner", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 300); err != nil {
			t.Fatalf("bid: %v", err)
		}

		f.advance(cfg.Duration + time.Second)
		if err := f.engine.SettleAuction(ctx, 1); err != nil {
			t.Fatalf("settle: %v", err)
		}

		owner, err := f.registry.OwnerOf(ctx, 1)
		if err != nil {
			t.Fatalf("owner of: %v", err)
		}
		if owner != "bob" {
			t.Errorf("expected bob to own the item, owned by %s", owner)
		}
		if got := f.treasury.Proceeds("alice"); got != 300 {
			t.Errorf("expected 300 accrued to alice, got %d", got)
		}
		if got := f.treasury.Held(); got != 300 {
			t.Errorf("expected winning bid still held, got %d", got)
		}
		if got := f.engine.TotalActiveAuctions(); got != 0 {
			t.Errorf("expected 0 active auctions, got %d", got)
		}
	})

	t.Run("settles at most once", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 300); err != nil {
			t.Fatalf("bid: %v", err)
		}

		f.advance(cfg.Duration + time.Second)
		if err := f.engine.SettleAuction(ctx, 1); err != nil {
			t.Fatalf("settle: %v", err)
		}

		err := f.engine.SettleAuction(ctx, 1)
		if !errors.Is(err, ErrAuctionNotStarted) {
			t.Errorf("expected second settle to report ErrAuctionNotStarted, got %v", err)
		}
		if got := f.treasury.Proceeds("alice"); got != 300 {
			t.Errorf("expected proceeds accrued exactly once, got %d", got)
		}
	})

	t.Run("refuses before the end", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.treasury.Deposit("bob", 1000)
		f.list(t, 1, "alice")

		if err := f.engine.PlaceBid(ctx, 1, "bob", 300); err != nil {
			t.Fatalf("bid: %v", err)
		}

		err := f.engine.SettleAuction(ctx, 1)
		if !errors.Is(err, ErrAuctionNotOver) {
			t.Errorf("expected ErrAuctionNotOver, got %v", err)
		}
	})

	t.Run("refuses an auction that never started", func(t *testing.T) {
		f := newFixture(t, cfg)
		f.list(t, 1, "alice")

		f.advance(cfg.Duration + time.Second)
		err := f.engine.SettleAuction(ctx, 1)
		if !errors.Is(err, ErrAuctionNotStarted) {
			t.Errorf("expected ErrAuctionNotStarted, got %v", err)
		}
	})
}

// failingRegistry rejects outbound transfers, modelling a receiver that
// cannot take delivery at settlement time.
type failingRegistry struct {
	*custody.MemoryRegistry
	failOut error
}

func (r *failingRegistry) TransferOut(ctx context.Context, to string, id int64) error {
	if r.failOut != nil {
		return r.failOut
	}
	return r.MemoryRegistry.TransferOut(ctx, to, id)
}

func TestSettleAuctionTransferFailureRestoresRecord(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	reg := &failingRegistry{MemoryRegistry: custody.NewMemoryRegistry(custodian)}
	tre := treasury.NewMemoryTreasury()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := NewEngine(cfg, reg, tre)
	engine.now = func() time.Time { return now }

	tre.Deposit("bob", 1000)
	if err := reg.Mint(ctx, 1, "alice"); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := reg.Approve(ctx, "alice", 1); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := engine.CreateAuction(ctx, 1, "alice", now); err != nil {
		t.Fatalf("create auction: %v", err)
	}
	if err := engine.PlaceBid(ctx, 1, "bob", 300); err != nil {
		t.Fatalf("bid: %v", err)
	}

	now = now.Add(cfg.Duration + time.Second)
	wantErr := errors.New("delivery refused")
	reg.failOut = wantErr

	if err := engine.SettleAuction(ctx, 1); !errors.Is(err, wantErr) {
		t.Fatalf("expected transfer failure to surface, got %v", err)
	}

	// The record survives, so settlement can be retried.
	if got := engine.TotalActiveAuctions(); got != 1 {
		t.Fatalf("expected record restored after failed settle, active %d", got)
	}
	if got := tre.Proceeds("alice"); got != 0 {
		t.Errorf("expected no proceeds accrued on failed settle, got %d", got)
	}

	reg.failOut = nil
	if err := engine.SettleAuction(ctx, 1); err != nil {
		t.Fatalf("retry settle: %v", err)
	}
	if got := tre.Proceeds("alice"); got != 300 {
		t.Errorf("expected 300 accrued after retry, got %d", got)
	}
}

func TestExpiredAuctions(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        1,
		Duration:            time.Hour,
		TimeBuffer:          5 * time.Minute,
		IncrementPercentage: 10,
	}

	f := newFixture(t, cfg)
	f.treasury.Deposit("bob", 1000)
	f.list(t, 1, "alice")
	f.list(t, 2, "alice")
	f.list(t, 3, "alice")

	if err := f.engine.PlaceBid(ctx, 1, "bob", 10); err != nil {
		t.Fatalf("bid: %v", err)
	}
	if err := f.engine.PlaceBid(ctx, 2, "bob", 10); err != nil {
		t.Fatalf("bid: %v", err)
	}
	// Item 3 never gets a bid and so never expires.

	f.advance(cfg.Duration + time.Second)

	expired := f.engine.ExpiredAuctions()
	if len(expired) != 2 {
		t.Fatalf("expected 2 expired auctions, got %v", expired)
	}
	seen := map[int64]bool{}
	for _, id := range expired {
		seen[id] = true
	}
	if !seen[1] || !seen[2] || seen[3] {
		t.Errorf("expected items 1 and 2 expired, got %v", expired)
	}
}

// TestAuctionLifecycle walks one auction end to end: listing, an opening bid,
// a displacement, a snipe inside the buffer and the final settlement.
func TestAuctionLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ReservePrice:        100,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}

	f := newFixture(t, cfg)
	f.treasury.Deposit("bob", 1000)
	f.treasury.Deposit("carol", 1000)
	f.list(t, 7, "alice")

	if f.engine.AuctionHasStarted(7) {
		t.Error("expected auction unstarted before any bid")
	}

	f.advance(time.Hour)
	if err := f.engine.PlaceBid(ctx, 7, "bob", 100); err != nil {
		t.Fatalf("opening bid: %v", err)
	}
	if !f.engine.AuctionHasStarted(7) {
		t.Error("expected auction started after the first bid")
	}

	f.advance(time.Hour)
	if err := f.engine.PlaceBid(ctx, 7, "carol", 150); err != nil {
		t.Fatalf("second bid: %v", err)
	}

	// Bob comes back two minutes before the close.
	end := f.engine.AuctionEndTime(7)
	f.now = end.Add(-2 * time.Minute)
	if err := f.engine.PlaceBid(ctx, 7, "bob", 200); err != nil {
		t.Fatalf("snipe bid: %v", err)
	}
	newEnd := f.engine.AuctionEndTime(7)
	if !newEnd.Equal(f.now.Add(cfg.TimeBuffer)) {
		t.Errorf("expected snipe to extend end to %v, got %v", f.now.Add(cfg.TimeBuffer), newEnd)
	}

	f.now = newEnd.Add(time.Second)
	if !f.engine.AuctionHasEnded(7) {
		t.Error("expected auction ended past the extended close")
	}
	if err := f.engine.SettleAuction(ctx, 7); err != nil {
		t.Fatalf("settle: %v", err)
	}

	owner, err := f.registry.OwnerOf(ctx, 7)
	if err != nil {
		t.Fatalf("owner of: %v", err)
	}
	if owner != "bob" {
		t.Errorf("expected bob to win, item owned by %s", owner)
	}
	if got := f.treasury.Balance("bob"); got != 800 {
		t.Errorf("expected bob's balance 800 after winning at 200, got %d", got)
	}
	if got := f.treasury.Balance("carol"); got != 1000 {
		t.Errorf("expected carol refunded in full, balance %d", got)
	}
	if got := f.treasury.Proceeds("alice"); got != 200 {
		t.Errorf("expected 200 accrued to alice, got %d", got)
	}
}
