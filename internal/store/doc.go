// Package store keeps the history of completed scheduling runs in memory,
// keyed by run ID.
//
// The store is bounded two ways: a hard limit on retained runs (oldest runs
// are dropped first) and a TTL enforced by a background eviction loop
// (Run(ctx)). Nothing is persisted; a restart starts with an empty history.
package store
