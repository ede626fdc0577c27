// Package storage is the durable persistence layer of the seller console.
//
// It models a small key-value document store: each namespaced key holds one
// JSON document (canonical lead list, leads view-state, canonical opportunity
// list, opportunities view-state). Persistence is strictly best-effort —
// reads fall back to caller-supplied defaults on absence, corruption or
// backend failure, and writes swallow every error. Nothing in this package
// may crash or block the stores.
//
// Backends: SQLite (the on-disk default, one kv table in seller.db) and an
// in-memory map used by tests and --ephemeral runs.
package storage

import (
	"encoding/json"

	"sellerconsole/internal/logging"
)

// Storage keys. The version suffix allows schema evolution without
// migrations: an incompatible document under an old key is simply ignored.
const (
	Namespace    = "seller"
	KeyLeads     = Namespace + ":leads:v1"
	KeyLeadsView = Namespace + ":leads:view:v1"
	KeyOpps      = Namespace + ":opps:v1"
	KeyOppsView  = Namespace + ":opps:view:v1"
)

// KV is a minimal key-value backend. Get's second return reports presence,
// so an empty stored document is distinguishable from an absent key.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// ReadJSON returns the document stored under key decoded into T, or def when
// the key is absent, the document does not parse, or the backend fails.
func ReadJSON[T any](kv KV, key string, def T) T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		logging.Get(logging.CategoryStorage).Debugw("read failed", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Get(logging.CategoryStorage).Debugw("corrupt document", "key", key, "error", err)
		return def
	}
	return v
}

// WriteJSON serializes v and stores it under key. A nil v removes the key.
// All failures are swallowed; persistence must never surface to the user or
// block a state transition.
func WriteJSON(kv KV, key string, v any) {
	if v == nil {
		if err := kv.Delete(key); err != nil {
			logging.Get(logging.CategoryStorage).Debugw("delete failed", "key", key, "error", err)
		}
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Get(logging.CategoryStorage).Debugw("marshal failed", "key", key, "error", err)
		return
	}
	if err := kv.Set(key, raw); err != nil {
		logging.Get(logging.CategoryStorage).Debugw("write failed", "key", key, "error", err)
	}
}

// Remove deletes a key, swallowing errors like WriteJSON.
func Remove(kv KV, key string) {
	if err := kv.Delete(key); err != nil {
		logging.Get(logging.CategoryStorage).Debugw("delete failed", "key", key, "error", err)
	}
}
