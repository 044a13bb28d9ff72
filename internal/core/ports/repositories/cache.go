package repositories

import (
	"context"
	"fmt"
)

// CacheKey identifies one cached computation over one version of the event set.
type CacheKey struct {
	Version int64
	Kind    string // "person", "account" or "totals"
	ID      string
	Op      string
}

func (k CacheKey) String() string {
	return fmt.Sprintf("balance:v%d:%s:%s:%s", k.Version, k.Kind, k.ID, k.Op)
}

// BalanceCache stores derived balances keyed on the event-set version.
// Every write to the event set bumps the version, which orphans all earlier entries.
type BalanceCache interface {
	// Version returns the current event-set version.
	Version(ctx context.Context) (int64, error)

	// Bump advances the version after a mutation.
	Bump(ctx context.Context) error

	// Get decodes a cached value into dest and reports whether it was present.
	Get(ctx context.Context, key CacheKey, dest any) (bool, error)

	Set(ctx context.Context, key CacheKey, value any) error
}
