package auction

import "time"

// Record is the per-item auction state. A record exists in the ledger exactly
// while the item is escrowed by the engine; deletion is terminal.
type Record struct {
	StartTime     time.Time // scheduled opening time, immutable after creation
	EndTime       time.Time // StartTime + Duration at creation; only ever moves forward
	HighestBidder string    // empty until the first bid
	HighestBid    int64     // 0 until the first bid
	ListingOwner  string    // seller who created the auction
}

// Started reports whether at least one bid has been placed. An auction
// "starts" with its first bid, not at StartTime.
func (r Record) Started() bool { return r.HighestBidder != "" }

// Ended reports whether the bidding window has closed. An auction that never
// received a bid cannot end.
func (r Record) Ended(now time.Time) bool {
	return r.Started() && now.After(r.EndTime)
}

// biddable reports whether a bid may land at now: either a bid already
// exists, or the record is real and its scheduled start has elapsed. A zero
// record (id never auctioned) is never biddable.
func (r Record) biddable(now time.Time) bool {
	if r.Started() {
		return true
	}
	return !r.StartTime.IsZero() && !now.Before(r.StartTime)
}
