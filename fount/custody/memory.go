package custody

import (
	"context"
	"fmt"
	"sync"
)

type memoryAsset struct {
	owner    string
	approved string
}

// MemoryRegistry is an in-process asset registry. It backs local runs and
// tests; the Postgres registry carries the same semantics.
type MemoryRegistry struct {
	mu        sync.Mutex
	custodian string
	assets    map[int64]*memoryAsset
}

func NewMemoryRegistry(custodian string) *MemoryRegistry {
	return &MemoryRegistry{
		custodian: custodian,
		assets:    make(map[int64]*memoryAsset),
	}
}

// Mint creates an asset owned by owner.
func (r *MemoryRegistry) Mint(ctx context.Context, id int64, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[id]; ok {
		return fmt.Errorf("%w: item %d", ErrAlreadyMinted, id)
	}
	r.assets[id] = &memoryAsset{owner: owner}
	return nil
}

// Approve lets the asset's owner authorize the custodian to escrow it.
func (r *MemoryRegistry) Approve(ctx context.Context, owner string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("%w: item %d", ErrAssetNotFound, id)
	}
	if a.owner != owner {
		return fmt.Errorf("%w: item %d", ErrNotAssetOwner, id)
	}
	a.approved = r.custodian
	return nil
}

func (r *MemoryRegistry) OwnerOf(ctx context.Context, id int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assets[id]
	if !ok {
		return "", fmt.Errorf("%w: item %d", ErrAssetNotFound, id)
	}
	return a.owner, nil
}

func (r *MemoryRegistry) TransferInto(ctx context.Context, from string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("%w: item %d", ErrAssetNotFound, id)
	}
	if a.owner != from {
		return fmt.Errorf("%w: item %d owned by %s", ErrNotAssetOwner, id, a.owner)
	}
	if a.approved != r.custodian {
		return fmt.Errorf("%w: item %d", ErrTransferNotApproved, id)
	}
	a.owner = r.custodian
	a.approved = ""
	return nil
}

func (r *MemoryRegistry) TransferOut(ctx context.Context, to string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if to == "" {
		return fmt.Errorf("%w: item %d", ErrZeroAddress, id)
	}
	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("%w: item %d", ErrAssetNotFound, id)
	}
	if a.owner != r.custodian {
		return fmt.Errorf("%w: item %d not in custody", ErrNotAssetOwner, id)
	}
	a.owner = to
	return nil
}
