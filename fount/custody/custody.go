// Package custody implements the asset-registry capability the auction
// engine escrows items through: an ownership table with ERC-721-style
// approvals, backed either by Postgres or by memory.
package custody

import "errors"

var (
	// ErrAssetNotFound is returned for item ids that were never minted.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNotAssetOwner is returned when a transfer names a from-address that
	// does not own the asset.
	ErrNotAssetOwner = errors.New("not asset owner")

	// ErrTransferNotApproved is returned when the owner has not approved the
	// custodian for the asset.
	ErrTransferNotApproved = errors.New("transfer not approved")

	// ErrZeroAddress is returned for transfers to the empty address.
	ErrZeroAddress = errors.New("transfer to zero address")

	// ErrAlreadyMinted is returned when minting an id that already exists.
	ErrAlreadyMinted = errors.New("asset already minted")
)
