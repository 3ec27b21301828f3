// Package main is the entry point for the npc generator CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	database  string
	config    string
	savePath  string
	redisAddr string
	redisDB   int
	logLevel  string
	seed      uint64
}

func newRootCmd(defaults envConfig) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "npcgen",
		Short: "Random NPC generator",
		Long: `npcgen builds randomized non-player characters from a corpus of groups and
a configuration of rarity classes, optional, multiple and conditioned groups.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, opts.logLevel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.database, "database", defaults.Database, "group corpus: directory or legacy .txt file")
	flags.StringVar(&opts.config, "config", defaults.Config, "configuration corpus (.txt) or settings file (.yaml)")
	flags.StringVar(&opts.savePath, "save-path", defaults.SavePath, "file saved sheets are appended to")
	flags.StringVar(&opts.redisAddr, "redis", defaults.RedisAddr, "redis address for the sheet store (empty disables it)")
	flags.IntVar(&opts.redisDB, "redis-db", defaults.RedisDB, "redis logical database")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	opts.seed = defaults.Seed

	cmd.AddCommand(newNewCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSheetsCmd(opts))

	return cmd
}

func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", level)
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	defaults, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}

	if err := newRootCmd(defaults).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
