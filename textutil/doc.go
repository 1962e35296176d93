// Package textutil provides the text shaping helpers used before sending
// input to the translation API: collapsing noisy whitespace runs and
// splitting long inputs into blocks that fit the per-request size limit.
package textutil
