// Package treasury tracks the currency side of auctions: bidder balances,
// funds held in engine custody, and proceeds earmarked for sellers.
package treasury

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInsufficientFunds is returned when a bidder's balance cannot cover
	// the collected amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHeldFunds is returned when a disbursement exceeds what
	// the engine holds.
	ErrInsufficientHeldFunds = errors.New("insufficient held funds")

	// ErrTransferRejected is returned when a receiver refuses payment.
	ErrTransferRejected = errors.New("transfer rejected by receiver")

	// ErrUnknownAccount is returned for addresses with no wallet.
	ErrUnknownAccount = errors.New("unknown account")
)

// MemoryTreasury is an in-process treasury for local runs and tests. It can
// mark receivers as blocked to model accounts that refuse incoming
// transfers, which is how a displaced bidder's refund fails.
type MemoryTreasury struct {
	mu       sync.Mutex
	balances map[string]int64
	held     int64
	proceeds map[string]int64
	blocked  map[string]bool
}

func NewMemoryTreasury() *MemoryTreasury {
	return &MemoryTreasury{
		balances: make(map[string]int64),
		proceeds: make(map[string]int64),
		blocked:  make(map[string]bool),
	}
}

// Deposit funds an account.
func (t *MemoryTreasury) Deposit(addr string, amount int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[addr] += amount
}

// Block makes the address refuse disbursements until unblocked.
func (t *MemoryTreasury) Block(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.blocked[addr] = true
}

func (t *MemoryTreasury) Unblock(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.blocked, addr)
}

// Balance returns the free balance of addr.
func (t *MemoryTreasury) Balance(addr string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[addr]
}

// Held returns the total amount in engine custody.
func (t *MemoryTreasury) Held() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

// Proceeds returns the amount earmarked for owner out of held funds.
func (t *MemoryTreasury) Proceeds(owner string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.proceeds[owner]
}

func (t *MemoryTreasury) Collect(ctx context.Context, from string, amount int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.balances[from] < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, from, t.balances[from], amount)
	}
	t.balances[from] -= amount
	t.held += amount
	return nil
}

func (t *MemoryTreasury) Disburse(ctx context.Context, to string, amount int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.blocked[to] {
		return fmt.Errorf("%w: %s", ErrTransferRejected, to)
	}
	if t.held < amount {
		return fmt.Errorf("%w: holding %d, need %d", ErrInsufficientHeldFunds, t.held, amount)
	}
	t.held -= amount
	t.balances[to] += amount
	return nil
}

func (t *MemoryTreasury) Accrue(ctx context.Context, owner string, amount int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.held < amount {
		return fmt.Errorf("%w: holding %d, accruing %d", ErrInsufficientHeldFunds, t.held, amount)
	}
	// Earmark only: the funds stay held until a withdrawal path claims them.
	t.proceeds[owner] += amount
	return nil
}
