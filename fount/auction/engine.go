package auction

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// AssetRegistry is the custody capability the engine requires from the
// underlying ownership registry. Failures from the registry (unknown asset,
// missing approval) propagate to engine callers unchanged.
type AssetRegistry interface {
	// OwnerOf reports the current owner of an item. It fails if the item
	// does not exist.
	OwnerOf(ctx context.Context, id int64) (string, error)
	// TransferInto escrows an item from its owner into engine custody.
	// It requires the owner's prior approval of the custodian.
	TransferInto(ctx context.Context, from string, id int64) error
	// TransferOut releases an escrowed item to the given address.
	TransferOut(ctx context.Context, to string, id int64) error
}

// Treasury moves and holds the currency side of an auction. Collected bids
// stay in engine custody until disbursed as refunds or accrued as proceeds.
type Treasury interface {
	// Collect moves amount from the bidder's balance into engine custody.
	Collect(ctx context.Context, from string, amount int64) error
	// Disburse pays amount out of engine custody to the given address.
	Disburse(ctx context.Context, to string, amount int64) error
	// Accrue earmarks held funds as proceeds claimable by owner through a
	// separate withdrawal path. It never pays anything out.
	Accrue(ctx context.Context, owner string, amount int64) error
}

// Archiver records terminal auctions and accepted bids. Archive failures are
// logged by the engine and never abort the operation that produced them.
type Archiver interface {
	AuctionSettled(ctx context.Context, id int64, rec Record, at time.Time) error
	AuctionCancelled(ctx context.Context, id int64, rec Record, at time.Time) error
	BidPlaced(ctx context.Context, id int64, bidder string, amount int64, at time.Time) error
}

// Engine runs English auctions over escrowed items. Every public operation
// takes the engine mutex for its whole duration, so operations are totally
// ordered and each one either completes or leaves ledger, escrow and held
// funds untouched.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	registry AssetRegistry
	treasury Treasury
	ledger   *Ledger
	archiver Archiver
	now      func() time.Time
}

func NewEngine(cfg Config, registry AssetRegistry, treasury Treasury) *Engine {
	if registry == nil {
		panic("asset registry cannot be nil")
	}
	if treasury == nil {
		panic("treasury cannot be nil")
	}

	return &Engine{
		cfg:      cfg,
		registry: registry,
		treasury: treasury,
		ledger:   NewLedger(),
		now:      time.Now,
	}
}

// SetArchiver attaches an archive sink for terminal auctions. Passing nil
// disables archiving.
func (e *Engine) SetArchiver(a Archiver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.archiver = a
}

// Config returns the engine's immutable parameters.
func (e *Engine) Config() Config { return e.cfg }

// CreateAuction escrows the item and opens an auction for it, scheduled at
// startTime. The seller must own the item and have approved the engine's
// custodian; registry failures surface unchanged. startTime is not required
// to be in the future, so sellers may schedule immediately.
func (e *Engine) CreateAuction(ctx context.Context, id int64, seller string, startTime time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.ledger.Get(id); ok {
		return ErrAuctionAlreadyExists
	}

	// Escrow before touching the ledger: if the item does not exist or the
	// transfer is not approved, nothing has changed yet.
	if err := e.registry.TransferInto(ctx, seller, id); err != nil {
		return err
	}

	e.ledger.Put(id, Record{
		StartTime:    startTime,
		EndTime:      startTime.Add(e.cfg.Duration),
		ListingOwner: seller,
	})

	slog.Info("Auction created",
		slog.Int64("item_id", id),
		slog.String("seller", seller),
		slog.Time("start_time", startTime),
		slog.Int("active_auctions", e.ledger.Active()))

	return nil
}

// CancelAuction returns the item to its listing owner and deletes the
// record. Cancellation is only legal before the first bid.
func (e *Engine) CancelAuction(ctx context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.ledger.Get(id)
	if rec.Started() {
		return ErrAuctionAlreadyStarted
	}

	// For a missing record the zero listing owner makes the registry fail
	// on its own terms, leaving everything untouched.
	if err := e.registry.TransferOut(ctx, rec.ListingOwner, id); err != nil {
		return err
	}

	if ok {
		e.ledger.Delete(id)
	}

	slog.Info("Auction cancelled",
		slog.Int64("item_id", id),
		slog.String("seller", rec.ListingOwner),
		slog.Int("active_auctions", e.ledger.Active()))

	if e.archiver != nil {
		if err := e.archiver.AuctionCancelled(ctx, id, rec, e.now()); err != nil {
			slog.Error("Failed to archive cancelled auction",
				slog.Int64("item_id", id),
				slog.Any("error", err))
		}
	}

	return nil
}

// PlaceBid collects amount from the bidder and makes them the highest
// bidder, refunding whoever they displaced. Bids landing within TimeBuffer
// of the end push the end time to now+TimeBuffer; earlier bids leave it
// alone. If the displaced bidder's refund cannot be delivered the whole bid
// is rolled back and rejected.
func (e *Engine) PlaceBid(ctx context.Context, id int64, bidder string, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	rec, _ := e.ledger.Get(id)

	if !rec.biddable(now) {
		return ErrAuctionNotStarted
	}
	if rec.Started() && now.After(rec.EndTime) {
		return ErrAuctionEnded
	}
	if !rec.Started() {
		if amount < e.cfg.ReservePrice {
			return &ReserveNotMetError{Required: e.cfg.ReservePrice, Got: amount}
		}
	} else if min := e.cfg.MinimumBid(rec.HighestBid); amount < min {
		return &MinimumBidNotMetError{Required: min, Got: amount}
	}

	// The bid value arrives first; a bidder who cannot pay changes nothing.
	if err := e.treasury.Collect(ctx, bidder, amount); err != nil {
		return err
	}

	prev := rec
	rec.HighestBidder = bidder
	rec.HighestBid = amount
	if !rec.EndTime.After(now.Add(e.cfg.TimeBuffer)) {
		rec.EndTime = now.Add(e.cfg.TimeBuffer)
	}
	e.ledger.Put(id, rec)

	// Refund strictly after the record is committed. A refund that cannot be
	// delivered rejects the bid outright, which means a bidder who refuses
	// refunds can block being outbid; that trade-off is accepted over
	// leaving funds stranded.
	if prev.Started() {
		if err := e.treasury.Disburse(ctx, prev.HighestBidder, prev.HighestBid); err != nil {
			e.ledger.Put(id, prev)
			if rbErr := e.treasury.Disburse(ctx, bidder, amount); rbErr != nil {
				slog.Error("Failed to return collected bid after refund failure",
					slog.Int64("item_id", id),
					slog.String("bidder", bidder),
					slog.Int64("amount", amount),
					slog.Any("error", rbErr))
			}
			return err
		}
	}

	slog.Info("Bid placed",
		slog.Int64("item_id", id),
		slog.String("bidder", bidder),
		slog.Int64("amount", amount),
		slog.String("displaced", prev.HighestBidder),
		slog.Time("end_time", rec.EndTime))

	if e.archiver != nil {
		if err := e.archiver.BidPlaced(ctx, id, bidder, amount, now); err != nil {
			slog.Error("Failed to archive bid",
				slog.Int64("item_id", id),
				slog.Any("error", err))
		}
	}

	return nil
}

// SettleAuction transfers the item to the final highest bidder and deletes
// the record. Anyone may settle once the end time has passed; the deleted
// record makes a second settlement fail with ErrAuctionNotStarted, so each
// auction settles at most once. The winning bid stays in engine custody,
// accrued to the listing owner for a separate withdrawal path.
func (e *Engine) SettleAuction(ctx context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	rec, _ := e.ledger.Get(id)

	if !rec.Started() {
		return ErrAuctionNotStarted
	}
	if !now.After(rec.EndTime) {
		return ErrAuctionNotOver
	}

	// Ledger first, transfer second; the restore below keeps the operation
	// all-or-nothing when the registry rejects the transfer.
	e.ledger.Delete(id)

	if err := e.registry.TransferOut(ctx, rec.HighestBidder, id); err != nil {
		e.ledger.Put(id, rec)
		return err
	}

	if err := e.treasury.Accrue(ctx, rec.ListingOwner, rec.HighestBid); err != nil {
		// Proceeds bookkeeping is advisory: the funds remain held either
		// way, and the settlement itself already happened.
		slog.Error("Failed to accrue auction proceeds",
			slog.Int64("item_id", id),
			slog.String("owner", rec.ListingOwner),
			slog.Int64("amount", rec.HighestBid),
			slog.Any("error", err))
	}

	slog.Info("Auction settled",
		slog.Int64("item_id", id),
		slog.String("winner", rec.HighestBidder),
		slog.Int64("final_price", rec.HighestBid),
		slog.Int("active_auctions", e.ledger.Active()))

	if e.archiver != nil {
		if err := e.archiver.AuctionSettled(ctx, id, rec, now); err != nil {
			slog.Error("Failed to archive settled auction",
				slog.Int64("item_id", id),
				slog.Any("error", err))
		}
	}

	return nil
}

// AuctionHasStarted reports whether the item's auction has received a bid.
func (e *Engine) AuctionHasStarted(id int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.Started()
}

// AuctionStartTime returns the scheduled opening time, or the zero time for
// an unknown item.
func (e *Engine) AuctionStartTime(id int64) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.StartTime
}

// AuctionHasEnded reports whether the item's bidding window has closed.
func (e *Engine) AuctionHasEnded(id int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.Ended(e.now())
}

// AuctionEndTime returns the current end time, or the zero time for an
// unknown item.
func (e *Engine) AuctionEndTime(id int64) time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.EndTime
}

// AuctionHighestBidder returns the current highest bidder, or "" if none.
func (e *Engine) AuctionHighestBidder(id int64) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.HighestBidder
}

// AuctionHighestBid returns the current highest bid, or 0 if none.
func (e *Engine) AuctionHighestBid(id int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.HighestBid
}

// AuctionListingOwner returns the seller, or "" for an unknown item.
func (e *Engine) AuctionListingOwner(id int64) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, _ := e.ledger.Get(id)
	return rec.ListingOwner
}

// TotalActiveAuctions returns the number of live auction records.
func (e *Engine) TotalActiveAuctions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Active()
}

// ExpiredAuctions returns the ids of auctions whose bidding window has
// closed and which are ready to settle.
func (e *Engine) ExpiredAuctions() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	var out []int64
	for _, id := range e.ledger.ids() {
		if rec, _ := e.ledger.Get(id); rec.Ended(now) {
			out = append(out, id)
		}
	}
	return out
}
