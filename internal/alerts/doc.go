// Package alerts evaluates threshold rules against score records.
//
// Rules come from the config file as "field op value" expressions over the
// DimensionalScores fields (plus "health == <label>"). The engine tracks
// firing state per (rule, source) pair, applies a cooldown against re-fires,
// resolves alerts whose condition clears, and hands each event to an
// injectable Notifier. The engine never performs I/O beyond slog.
package alerts
