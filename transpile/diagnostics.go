package transpile

import "log/slog"

// Diagnostic codes recorded for per-request recoveries described in
// spec.md §7 ("Failure semantics"). These never affect output shape; they
// exist purely so a caller can inspect what was downgraded.
const (
	DiagMalformedJSON   = "malformed-json"
	DiagUnknownBodyMode = "unknown-body-mode"
	DiagUnknownAuthType = "unknown-auth-type"
)

// Diagnostic records one recovered anomaly encountered while walking a
// collection.
type Diagnostic struct {
	// ItemPath is the breadcrumb of item names, joined by " / ", leading to
	// the request that triggered this diagnostic (e.g. "Users / Get User").
	ItemPath string
	Code     string
	Message  string
}

// Diagnostics is an ordered, in-memory sink of recovered anomalies. It is an
// optional, inert bystander to the walk: SPEC_FULL.md's ambient-logging
// expansion records the same events through a structured logger first, then
// mirrors them here so a library caller isn't forced to parse log output to
// get visibility into best-effort downgrades.
type Diagnostics struct {
	entries []Diagnostic
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(itemPath, code, message string) {
	d.entries = append(d.entries, Diagnostic{ItemPath: itemPath, Code: code, Message: message})
}

// Entries returns the recorded diagnostics in encounter order.
func (d *Diagnostics) Entries() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.entries
}

// Len reports how many diagnostics have been recorded.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// logRecovery emits a diagnostic through logger (if non-nil) and appends it
// to sink (if non-nil).
func logRecovery(logger *slog.Logger, sink *Diagnostics, itemPath, code, message string) {
	if logger != nil {
		logger.Debug("recovered anomaly",
			slog.String("item_path", itemPath),
			slog.String("code", code),
			slog.String("message", message),
		)
	}
	if sink != nil {
		sink.Add(itemPath, code, message)
	}
}
