// Package telemetry tracks per-run analysis counters and renders them in
// Prometheus text exposition format. There is no HTTP endpoint — the CLI
// dumps the counters to a file so any scraper-side tooling can pick them up.
package telemetry
