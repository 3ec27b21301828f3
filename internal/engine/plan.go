package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/rarity"
	"github.com/KirkDiggler/npc-generator/internal/settings"
)

// slotState is the per-group state carried between pipeline stages
type slotState struct {
	group    string
	slots    int
	forced   []string
	deferred bool
}

// plan is one snapshot of the modifier pipeline. Stages never mutate the
// receiver; each returns a new plan.
type plan struct {
	records []slotState
	index   map[string]int
	queue   []settings.Conditioned
}

// newPlan gives every corpus group one slot and attaches forced values.
// Forced groups the corpus does not know are appended in forced order.
func newPlan(groups []string, forced []GroupValues) *plan {
	p := &plan{
		records: make([]slotState, 0, len(groups)+len(forced)),
		index:   make(map[string]int, len(groups)+len(forced)),
	}

	for _, g := range groups {
		if _, ok := p.index[g]; ok {
			continue
		}
		p.index[g] = len(p.records)
		p.records = append(p.records, slotState{group: g, slots: 1})
	}

	for _, f := range forced {
		i, ok := p.index[f.Group]
		if !ok {
			i = len(p.records)
			p.index[f.Group] = i
			p.records = append(p.records, slotState{group: f.Group, slots: 1})
		}
		rec := &p.records[i]
		rec.forced = appendDistinct(rec.forced, f.Values...)
	}

	for i := range p.records {
		if n := len(p.records[i].forced); n > p.records[i].slots {
			p.records[i].slots = n
		}
	}

	return p
}

func (p *plan) clone() *plan {
	next := &plan{
		records: make([]slotState, len(p.records)),
		index:   make(map[string]int, len(p.index)),
		queue:   append([]settings.Conditioned(nil), p.queue...),
	}
	copy(next.records, p.records)
	for k, v := range p.index {
		next.index[k] = v
	}
	return next
}

// without returns a copy of the plan with the named groups removed
func (p *plan) without(drop map[string]bool) *plan {
	if len(drop) == 0 {
		return p.clone()
	}

	next := &plan{
		records: make([]slotState, 0, len(p.records)),
		index:   make(map[string]int, len(p.index)),
		queue:   append([]settings.Conditioned(nil), p.queue...),
	}
	for _, rec := range p.records {
		if drop[rec.group] {
			continue
		}
		next.index[rec.group] = len(next.records)
		next.records = append(next.records, rec)
	}
	return next
}

// withOptional rolls once per optional declaration and drops the groups that
// fail. A group keeps its place iff the draw is at most its weight. Forced
// groups are never rolled.
func (p *plan) withOptional(optional []settings.Optional, roller dice.Roller) (*plan, error) {
	drop := make(map[string]bool)
	for _, o := range optional {
		i, ok := p.index[o.Group]
		if !ok || drop[o.Group] || len(p.records[i].forced) > 0 {
			continue
		}

		draw, err := roller.Roll(rarity.MaxWeight)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll optional group %s", o.Group)
		}

		if draw > o.Weight {
			drop[o.Group] = true
		}
	}
	return p.without(drop), nil
}

// withMultiple sets the slot count of every multiple group. Counting starts
// at Min and every further slot up to Max needs a draw at most Weight; the
// first failed draw stops the count. Both bounds are capped at
// settings.MaxSlots.
func (p *plan) withMultiple(multiple []settings.Multiple, roller dice.Roller) (*plan, error) {
	next := p.clone()
	for _, m := range multiple {
		i, ok := next.index[m.Group]
		if !ok {
			continue
		}

		slots, limit := min(m.Min, settings.MaxSlots), min(m.Max, settings.MaxSlots)
		for slots < limit {
			draw, err := roller.Roll(rarity.MaxWeight)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll multiple group %s", m.Group)
			}
			if draw > m.Weight {
				break
			}
			slots++
		}

		if n := len(next.records[i].forced); n > slots {
			slots = n
		}
		next.records[i].slots = slots
	}
	return next, nil
}

// withDeferred moves the declared conditioned groups still in the plan to the
// deferred queue, in declaration order
func (p *plan) withDeferred(conditioned []settings.Conditioned) *plan {
	next := p.clone()
	for _, c := range conditioned {
		i, ok := next.index[c.Group]
		if !ok || next.records[i].deferred {
			continue
		}
		next.records[i].deferred = true
		next.queue = append(next.queue, c)
	}
	return next
}

// appendDistinct appends the tag-stripped values not already present
func appendDistinct(dst []string, values ...string) []string {
	for _, v := range values {
		text := rarity.Strip(v)
		if text == "" || contains(dst, text) {
			continue
		}
		dst = append(dst, text)
	}
	return dst
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
