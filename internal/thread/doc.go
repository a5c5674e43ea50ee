// Package thread aggregates per-message dimensional scores into a
// ThreadAnalysis: mean and maximum drama, mean neutrality, per-author
// rollups, a conjunctive pile-on flag (mean drama > 5 AND more than 5 unique
// authors AND max drama > 7), and the list of authors flagged difficult
// within the thread. The aggregate is recomputed wholesale from the message
// list on every call; there is no incremental state.
package thread
