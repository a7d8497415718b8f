// Package moderation implements the content moderation engine.
//
// The engine assigns a verdict to a piece of user-submitted content before it
// is published: whether to flag it, why (a list of categories), how severe the
// violation is, and with what confidence. It is a pure function of its inputs
// and a fixed, process-wide pattern catalog:
//
//   - The pattern catalog maps each moderation category to a list of compiled
//     rules. It is built once at startup and never mutated afterwards.
//   - The matcher scans the combined text (content text joined with its URL)
//     against the catalog and against a dedicated personal-information rule
//     set.
//   - The confidence scorer converts match counts, text length, and prior
//     offense context into per-category confidence values in [0,1].
//   - The severity classifier maps categories to severity tiers and folds them
//     into one overall severity.
//   - The context adjuster combines per-category confidences into one
//     aggregate confidence, applying multiplicity, repeat-offender, platform,
//     and audience adjustments.
//
// Analyze performs the pure computation; Process wraps it with a request ID,
// timestamp, and elapsed-time measurement. Because the catalog is read-only
// after construction, an Engine is safe for concurrent use from any number of
// goroutines without locking.
package moderation
