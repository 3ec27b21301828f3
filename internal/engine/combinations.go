package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
	"github.com/KirkDiggler/npc-generator/internal/rarity"
	"github.com/KirkDiggler/npc-generator/internal/settings"
)

// dimension is one resolved dependency of a conditioned group
type dimension struct {
	group  string
	values []string
}

// conditionedPool builds the candidate list of a conditioned group from the
// most specific combination of its dependencies that has entries in the
// group's sub-corpus. Without any match the primary corpus entry is used.
func (e *engine) conditionedPool(ctx context.Context, cond settings.Conditioned, resolved map[string][]string) []string {
	dims := make([]dimension, 0, len(cond.DependsOn))
	for _, dep := range cond.DependsOn {
		values, ok := resolved[dep]
		if !ok || len(values) == 0 {
			slog.DebugContext(ctx, "skipping absent dependency",
				"group", cond.Group,
				"dependency", dep)
			continue
		}
		dims = append(dims, dimension{group: dep, values: values})
	}

	sub, err := e.groups.Sub(cond.Group)
	if err != nil || len(dims) == 0 {
		return e.groupPool(ctx, cond.Group)
	}

	for _, tier := range combinationKeys(dims, cond.Group) {
		var pool []string
		for _, key := range tier {
			params, err := corpus.Lookup(sub, key)
			if err != nil {
				continue
			}
			pool = mergeOverride(pool, params)
		}

		if len(pool) > 0 {
			slog.DebugContext(ctx, "conditioned pool matched",
				"group", cond.Group,
				"keys", tier,
				"candidates", len(pool))
			return pool
		}
	}

	return e.groupPool(ctx, cond.Group)
}

// combinationKeys returns the lookup keys for every non-empty subset of
// dimensions, grouped by subset size from the largest down. Subsets follow
// dimension order and the cartesian product varies the last dimension
// fastest. Each key is the concatenated values followed by the group name.
func combinationKeys(dims []dimension, group string) [][]string {
	n := len(dims)
	tiers := make([][]string, 0, n)

	for size := n; size >= 1; size-- {
		var tier []string
		for _, subset := range subsets(n, size) {
			for _, combo := range product(dims, subset) {
				tier = append(tier, strings.Join(combo, "")+group)
			}
		}
		tiers = append(tiers, tier)
	}

	return tiers
}

// subsets lists the index combinations of the given size in lexicographic
// order
func subsets(n, size int) [][]int {
	var out [][]int
	current := make([]int, 0, size)

	var walk func(start int)
	walk = func(start int) {
		if len(current) == size {
			out = append(out, append([]int(nil), current...))
			return
		}
		for i := start; i <= n-(size-len(current)); i++ {
			current = append(current, i)
			walk(i + 1)
			current = current[:len(current)-1]
		}
	}
	walk(0)

	return out
}

// product returns the cartesian product of the values of the chosen
// dimensions
func product(dims []dimension, subset []int) [][]string {
	combos := [][]string{{}}
	for _, d := range subset {
		next := make([][]string, 0, len(combos)*len(dims[d].values))
		for _, prefix := range combos {
			for _, v := range dims[d].values {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, v))
			}
		}
		combos = next
	}
	return combos
}

// mergeOverride combines two candidate lists keyed by tag-stripped text.
// A repeated key replaces the stored entry in place; new keys are appended.
func mergeOverride(base, incoming []string) []string {
	merged := make([]string, 0, len(base)+len(incoming))
	index := make(map[string]int, len(base)+len(incoming))

	for _, list := range [][]string{base, incoming} {
		for _, param := range list {
			key := rarity.Strip(param)
			if i, ok := index[key]; ok {
				merged[i] = param
				continue
			}
			index[key] = len(merged)
			merged = append(merged, param)
		}
	}

	return merged
}
