// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the evaluation dispatcher.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; the same options always pick
//     the same evaluation path for the same operands.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - A forced tier is a request, not a guarantee: when the operands do not
//     satisfy the layout the tier needs, evaluation falls through to the next
//     applicable tier (flat → column → element). Results are identical on
//     every path.
//   - Disabling the alias check is only correct when the caller knows the
//     destination shares no memory with any source leaf.

package matrix

// Tier names an evaluation strategy of the dispatcher.
type Tier uint8

const (
	// TierAuto picks the fastest tier the operands allow.
	TierAuto Tier = iota
	// TierFlat evaluates the whole destination as one linear run.
	TierFlat
	// TierColumn evaluates one packed destination column at a time.
	TierColumn
	// TierElement evaluates with a nested (i, j) loop.
	TierElement

	tierCount
)

// String names the tier for diagnostics.
func (t Tier) String() string {
	switch t {
	case TierAuto:
		return "auto"
	case TierFlat:
		return "flat"
	case TierColumn:
		return "column"
	case TierElement:
		return "element"
	default:
		return "invalid"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTier lets the dispatcher choose.
	DefaultTier = TierAuto
	// DefaultAliasCheck enables destination/source overlap detection.
	DefaultAliasCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTierInvalid = "matrix: WithTier: unknown tier"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tier       Tier // DefaultTier
	aliasCheck bool // DefaultAliasCheck
}

// Tier returns the requested tier.
func (o Options) Tier() Tier { return o.tier }

// AliasCheck reports whether overlap detection is enabled.
func (o Options) AliasCheck() bool { return o.aliasCheck }

// WithTier forces the dispatcher to start at tier t.
// Implementation:
//   - Stage 1: validate t is a known tier.
//   - Stage 2: return a setter that writes t into Options.
//
// Errors:
//   - Panics with a stable message when t is unknown.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use in tests to prove every tier produces the same values; production
//     code should leave the default.
func WithTier(t Tier) Option {
	if t >= tierCount {
		panic(panicTierInvalid)
	}

	return func(o *Options) { o.tier = t }
}

// WithAliasCheck toggles destination/source overlap detection.
// With the check disabled a partially overlapping assignment may read
// elements it has already overwritten.
func WithAliasCheck(enabled bool) Option {
	return func(o *Options) { o.aliasCheck = enabled }
}

// NewEvalOptions resolves opts on top of the defaults.
func NewEvalOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults
// in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tier:       DefaultTier,
		aliasCheck: DefaultAliasCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
