package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/settings"
)

// Config holds the dependencies for the engine
type Config struct {
	Groups   corpus.Corpus
	Settings *settings.Settings
	Roller   dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Groups == nil {
		vb.RequiredField("Groups")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type engine struct {
	groups   corpus.Corpus
	settings *settings.Settings
	roller   dice.Roller
}

// New creates an engine over read-only corpora
func New(cfg *Config) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		groups:   cfg.Groups,
		settings: cfg.Settings,
		roller:   cfg.Roller,
	}, nil
}

// Resolve builds one character
func (e *engine) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		input = &ResolveInput{}
	}
	for _, f := range input.Forced {
		if f.Group == "" {
			return nil, errors.InvalidArgument("forced group name is required")
		}
	}

	p := newPlan(e.groups.Groups(), input.Forced)

	p, err := p.withOptional(e.settings.Optional, e.roller)
	if err != nil {
		return nil, err
	}
	p, err = p.withMultiple(e.settings.Multiple, e.roller)
	if err != nil {
		return nil, err
	}
	p = p.withDeferred(e.settings.Conditioned)

	resolved := make(map[string][]string, len(p.records))
	for _, rec := range p.records {
		if rec.deferred {
			continue
		}

		values, err := e.fill(rec.slots, e.groupPool(ctx, rec.group), rec.forced)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fill group %s", rec.group)
		}
		resolved[rec.group] = values
	}

	for _, cond := range p.queue {
		rec := p.records[p.index[cond.Group]]

		pool := e.conditionedPool(ctx, cond, resolved)
		values, err := e.fill(rec.slots, pool, rec.forced)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fill conditioned group %s", rec.group)
		}
		resolved[rec.group] = values
	}

	character := &Character{Groups: make([]GroupValues, 0, len(p.records))}
	for _, rec := range p.records {
		character.Groups = append(character.Groups, GroupValues{
			Group:  rec.group,
			Values: resolved[rec.group],
		})
	}

	slog.DebugContext(ctx, "character resolved",
		"groups", len(character.Groups),
		"conditioned", len(p.queue),
		"forced", len(input.Forced))

	return &ResolveOutput{Character: character}, nil
}

// groupPool loads a group's candidates from the primary corpus. A missing
// group is an empty pool.
func (e *engine) groupPool(ctx context.Context, group string) []string {
	params, err := e.groups.Parameters(group)
	if err != nil {
		slog.DebugContext(ctx, "group has no candidates",
			"group", group,
			"error", errors.GetMessage(err))
		return nil
	}
	return params
}
