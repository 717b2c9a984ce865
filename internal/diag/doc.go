// Package diag is the side channel every tokenizer reports through.
//
// The tokenizers never block or fail because of a diagnostic: skipped
// DOCTYPE constructs, dropped vendor style properties, and truncated
// path data all land here while scanning continues. Hard errors are
// returned to the caller as values; they may additionally be mirrored
// into a Bag for batch reporting.
package diag
