// Package types defines the shared Go types produced by the analysis
// packages. These are the canonical in-memory representations of discussion
// health data; downstream consumers may serialize them however they like,
// and the JSON tags are the stable field names for interoperability.
package types
