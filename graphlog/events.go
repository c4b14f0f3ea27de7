// Package graphlog names the structured-logging events graphcore and its
// subpackages emit, and provides thin helpers so every call site logs the
// same fields the same way, letting operators grep logs by a stable
// event string regardless of the human-readable message text.
package graphlog

import "github.com/rs/zerolog"

// Event names used as the "event" field on every log line this package
// emits, so operators can grep logs by stable string regardless of the
// human-readable message text.
const (
	EventGrow    = "blockpool.grow"
	EventResize  = "matrixpool.resize"
	EventCompact = "graphcore.compact"
)

// Resize logs a lazy matrix resize.
func Resize(log zerolog.Logger, kind string, index, from, to int) {
	log.Debug().
		Str("event", EventResize).
		Str("kind", kind).
		Int("index", index).
		Int("from_dim", from).
		Int("to_dim", to).
		Msg("resized matrix to current node count")
}

// Compact logs the outcome of a DeleteNodes swap-compaction pass.
func Compact(log zerolog.Logger, deleted, finalCount int) {
	log.Debug().
		Str("event", EventCompact).
		Int("deleted", deleted).
		Int("final_node_count", finalCount).
		Msg("compacted node ID space")
}
