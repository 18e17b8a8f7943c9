package auction

import (
	"errors"
	"fmt"
)

var (
	// ErrAuctionAlreadyExists is returned by CreateAuction when the item
	// already has a live auction record.
	ErrAuctionAlreadyExists = errors.New("auction already exists")

	// ErrAuctionAlreadyStarted is returned by CancelAuction once a bid has
	// been placed; a started auction can only finish by settlement.
	ErrAuctionAlreadyStarted = errors.New("auction already started")

	// ErrAuctionNotStarted is returned when an operation needs a bid-eligible
	// or bid-carrying auction and finds none. It covers both an id that was
	// never auctioned and a record whose scheduled start has not elapsed.
	ErrAuctionNotStarted = errors.New("auction not started")

	// ErrAuctionEnded is returned by PlaceBid after the bidding window closed.
	ErrAuctionEnded = errors.New("auction ended")

	// ErrAuctionNotOver is returned by SettleAuction while bidding is still open.
	ErrAuctionNotOver = errors.New("auction not over")

	// ErrReserveNotMet and ErrMinimumBidNotMet are the errors.Is targets for
	// the typed economic failures below.
	ErrReserveNotMet    = errors.New("auction reserve not met")
	ErrMinimumBidNotMet = errors.New("auction minimum bid not met")
)

// ReserveNotMetError reports a first bid below the configured reserve price.
type ReserveNotMetError struct {
	Required int64
	Got      int64
}

func (e *ReserveNotMetError) Error() string {
	return fmt.Sprintf("auction reserve not met: required %d, got %d", e.Required, e.Got)
}

func (e *ReserveNotMetError) Is(target error) bool { return target == ErrReserveNotMet }

// MinimumBidNotMetError reports a bid below the minimum-increment threshold
// derived from the current highest bid.
type MinimumBidNotMetError struct {
	Required int64
	Got      int64
}

func (e *MinimumBidNotMetError) Error() string {
	return fmt.Sprintf("auction minimum bid not met: required %d, got %d", e.Required, e.Got)
}

func (e *MinimumBidNotMetError) Is(target error) bool { return target == ErrMinimumBidNotMet }
