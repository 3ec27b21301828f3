// Package engine resolves randomized character sheets from a group corpus and
// its modifier settings.
//
// One resolution runs the modifier pipeline (optional groups, multiple
// groups, conditioned deferral), writes forced values, fills every ordinary
// group from its rarity-filtered pool and finally resolves the conditioned
// groups against the values chosen so far.
package engine

import (
	"context"
)

// Resolver produces character sheets
type Resolver interface {
	// Resolve builds one character. It is safe to call repeatedly against the
	// same corpora; no state carries over between calls.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
