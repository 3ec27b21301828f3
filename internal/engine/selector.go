package engine

import (
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// fill selects up to slots distinct values. Forced values come first; the
// remaining slots are drawn uniformly from the rarity-filtered pool without
// replacement. A pool that runs dry leaves the remaining slots empty.
func (e *engine) fill(slots int, pool, forced []string) ([]string, error) {
	values := appendDistinct(make([]string, 0, min(slots, len(pool)+len(forced))), forced...)
	if len(values) >= slots {
		return values, nil
	}

	candidates, err := e.settings.Rarity.Filter(pool, e.roller)
	if err != nil {
		return nil, err
	}

	remaining := make([]int, len(candidates))
	for i := range remaining {
		remaining[i] = i
	}

	for len(values) < slots && len(remaining) > 0 {
		draw, err := e.roller.Roll(len(remaining))
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw candidate")
		}

		pick := draw - 1
		text := candidates[remaining[pick]]

		last := len(remaining) - 1
		remaining[pick] = remaining[last]
		remaining = remaining[:last]

		if text == "" || contains(values, text) {
			continue
		}
		values = append(values, text)
	}

	return values, nil
}
