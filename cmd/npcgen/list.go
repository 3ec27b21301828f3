package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
)

type listOptions struct {
	sub bool
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list [group [subgroup]]",
		Aliases: []string{"l"},
		Short:   "List groups, parameters and subgroups of the database",
		Long: `Without arguments list lists every group. Given a group it lists the
group's parameters, or with --sub its subgroups. Given a group and a subgroup
it lists the subgroup's parameters.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := corpus.LoadDatabase(root.database)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), groups, args, opts.sub)
		},
	}

	cmd.Flags().BoolVar(&opts.sub, "sub", false, "list the subgroups of a group")

	return cmd
}

func runList(w io.Writer, groups corpus.Corpus, args []string, sub bool) error {
	var lines []string

	switch {
	case len(args) == 0:
		lines = groups.Groups()
	case len(args) == 1 && !sub:
		params, err := corpus.Lookup(groups, args[0])
		if err != nil {
			return err
		}
		lines = params
	default:
		subCorpus, err := groups.Sub(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			lines = subCorpus.Groups()
			break
		}
		params, err := corpus.Lookup(subCorpus, args[1])
		if err != nil {
			return err
		}
		lines = params
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
