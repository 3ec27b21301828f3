package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-generator/internal/engine"
	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/pkg/random"
	"github.com/KirkDiggler/npc-generator/internal/repositories/sheets"
	"github.com/KirkDiggler/npc-generator/internal/sheet"
)

type newOptions struct {
	seed   uint64
	count  int
	save   bool
	color  bool
	format string
	force  []string
}

func newNewCmd(root *rootOptions) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:     "new",
		Aliases: []string{"n", "generate"},
		Short:   "Generate new characters",
		Example: `  npcgen new
  npcgen new --count 5 --seed 42
  npcgen new --force Race=Elf --force Title="Sea Captain" --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, root, opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", root.seed, "seed for reproducible characters (0 uses crypto randomness)")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "number of characters to generate")
	cmd.Flags().BoolVarP(&opts.save, "save", "s", false, "save the generated characters")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style the sheet for the terminal")
	cmd.Flags().StringVarP(&opts.format, "format", "o", string(sheet.FormatPlain), "output format: text, color, yaml, json")
	cmd.Flags().StringArrayVarP(&opts.force, "force", "f", nil, "force a value as Group=Value (repeatable)")

	return cmd
}

func runNew(cmd *cobra.Command, root *rootOptions, opts *newOptions) error {
	ctx := cmd.Context()

	if opts.count < 1 {
		return errors.InvalidArgumentf("count must be at least 1, got %d", opts.count)
	}

	format, err := sheet.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.color {
		format = sheet.FormatColor
	}

	forced, err := parseForced(opts.force)
	if err != nil {
		return err
	}

	resolver, err := root.buildResolver(random.NewRoller(opts.seed))
	if err != nil {
		return err
	}

	characters := make([]*engine.Character, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		out, err := resolver.Resolve(ctx, &engine.ResolveInput{Forced: forced})
		if err != nil {
			return err
		}
		characters = append(characters, out.Character)
	}

	if err := sheet.Write(cmd.OutOrStdout(), format, characters...); err != nil {
		return err
	}

	if !opts.save {
		return nil
	}

	saver, closeFn, err := root.openSaver(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	for _, c := range characters {
		out, err := saver.Create(ctx, sheets.CreateInput{Sheet: &sheets.Sheet{
			Seed:   opts.seed,
			Groups: c.Groups,
		}})
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "sheet saved", "sheet_id", out.Sheet.ID, "store", root.saveTarget())
	}

	return nil
}

// parseForced reads Group=Value pairs. Repeated groups collect their values
// in flag order.
func parseForced(pairs []string) ([]engine.GroupValues, error) {
	var forced []engine.GroupValues
	index := make(map[string]int)

	for _, pair := range pairs {
		group, value, ok := strings.Cut(pair, "=")
		group = strings.TrimSpace(group)
		value = strings.TrimSpace(value)
		if !ok || group == "" || value == "" {
			return nil, errors.InvalidArgumentf("invalid forced value %q, expected Group=Value", pair)
		}

		i, seen := index[group]
		if !seen {
			i = len(forced)
			index[group] = i
			forced = append(forced, engine.GroupValues{Group: group})
		}
		forced[i].Values = append(forced[i].Values, value)
	}

	return forced, nil
}
