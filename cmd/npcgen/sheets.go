package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-generator/internal/repositories/sheets"
	"github.com/KirkDiggler/npc-generator/internal/sheet"
)

func newSheetsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Manage sheets saved in redis",
	}

	cmd.AddCommand(newSheetsListCmd(root))
	cmd.AddCommand(newSheetsGetCmd(root))
	cmd.AddCommand(newSheetsDeleteCmd(root))

	return cmd
}

// withRepository runs fn against the redis sheet store
func withRepository(ctx context.Context, root *rootOptions, fn func(sheets.Repository) error) error {
	repo, closeFn, err := root.openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(repo)
}

func newSheetsListCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sheets, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd.Context(), root, func(repo sheets.Repository) error {
				out, err := repo.List(cmd.Context(), sheets.ListInput{Limit: limit})
				if err != nil {
					return err
				}
				for _, s := range out.Sheets {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d groups\n",
						s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), len(s.Groups))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of sheets (0 lists all)")

	return cmd
}

func newSheetsGetCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Print a saved sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sheet.ParseFormat(format)
			if err != nil {
				return err
			}
			return withRepository(cmd.Context(), root, func(repo sheets.Repository) error {
				out, err := repo.Get(cmd.Context(), sheets.GetInput{ID: args[0]})
				if err != nil {
					return err
				}
				return sheet.Write(cmd.OutOrStdout(), f, out.Sheet.Character())
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", string(sheet.FormatPlain), "output format: text, color, yaml, json")

	return cmd
}

func newSheetsDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd.Context(), root, func(repo sheets.Repository) error {
				_, err := repo.Delete(cmd.Context(), sheets.DeleteInput{ID: args[0]})
				return err
			})
		},
	}
}
