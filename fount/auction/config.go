package auction

import "time"

// Config holds the per-deployment auction parameters. All four fields are
// fixed when the engine is constructed and never change afterwards.
type Config struct {
	ReservePrice        int64         // minimum first bid, in currency units
	Duration            time.Duration // length of the bidding window once started
	TimeBuffer          time.Duration // anti-snipe extension window before the end time
	IncrementPercentage int64         // minimum percentage a new bid must exceed the current one by
}

// DefaultConfig returns the reference deployment parameters: a 1 unit
// reserve, 24 hour auctions, a 15 minute snipe buffer and 10% minimum
// increments.
func DefaultConfig() Config {
	return Config{
		ReservePrice:        1,
		Duration:            24 * time.Hour,
		TimeBuffer:          15 * time.Minute,
		IncrementPercentage: 10,
	}
}

// MinimumBid returns the smallest acceptable bid over the given highest bid.
// Integer division rounds the increment down.
func (c Config) MinimumBid(highest int64) int64 {
	return highest + highest*c.IncrementPercentage/100
}
