package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mergel10n/internal/config"
	"mergel10n/internal/filewalker"
	"mergel10n/internal/fsys"
	"mergel10n/internal/merger"
	"mergel10n/internal/stringsfile"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mergel10n",
		Short:        "Localizable utils",
		Long:         "Keeps the Localizable.strings files of every language in sync with a master key list.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logs")

	rootCmd.AddCommand(pseudoToLanguagesCmd())
	rootCmd.AddCommand(validateCmd())

	return rootCmd
}

func pseudoToLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pseudo-to-languages",
		Short: "Merge the keys of the master (pseudo) language into every language file",
		Long: `Reads <base-path>/<master>.lproj/Localizable.strings as the list of keys and
rewrites <base-path>/<language>.lproj/Localizable.strings for every language:
keys keep their translated value and take the master comment, keys missing
from the master are removed, and keys missing from the development language
are added with an empty value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := config.Flags{}
			flags.Languages, _ = cmd.Flags().GetString("languages")
			flags.BasePaths, _ = cmd.Flags().GetString("base-paths")
			flags.DevelopmentLanguage, _ = cmd.Flags().GetString("development-language")
			flags.MasterLanguage, _ = cmd.Flags().GetString("master-language")
			flags.MasterEncoding, _ = cmd.Flags().GetString("master-encoding")
			flags.TargetEncoding, _ = cmd.Flags().GetString("encoding")
			flags.WorkerCount, _ = cmd.Flags().GetInt("workers")
			if cmd.Flags().Changed("require-comments") {
				requireComments, _ := cmd.Flags().GetBool("require-comments")
				flags.RequireComments = &requireComments
			}
			return runPseudoToLanguages(flags)
		},
	}

	cmd.Flags().String("languages", "", "Separated-by-comma list of languages that should be created. Environment Variable SUPPORTED_LANGUAGES is an alternative.")
	cmd.Flags().String("base-paths", "", "Separated-by-comma list of paths (or globs) to base localizable strings folders. In this folder we expect to find the master .lproj directory and files. Environment Variable L10N_BASE_PATHS is an alternative.")
	cmd.Flags().String("development-language", "", "Which language is used for development. Default: en.")
	cmd.Flags().String("master-language", "", "Language folder holding the master keys. Default: zz.")
	cmd.Flags().String("master-encoding", "", "Encoding of the master file. Default: utf-16.")
	cmd.Flags().String("encoding", "", "Encoding of the language files. Default: utf-8.")
	cmd.Flags().Bool("require-comments", true, "Fail on language file entries without a comment")
	cmd.Flags().Int("workers", 0, "Number of language files processed concurrently. Default: 4.")

	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Parse Localizable.strings files without changing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encodingName, _ := cmd.Flags().GetString("encoding")
			requireComments, _ := cmd.Flags().GetBool("require-comments")
			enc, err := fsys.ParseEncoding(encodingName)
			if err != nil {
				return err
			}
			return runValidate(fsys.NewOSFileSystem(), args, enc, requireComments)
		},
	}

	cmd.Flags().String("encoding", string(fsys.UTF8), "Encoding of the files")
	cmd.Flags().Bool("require-comments", true, "Fail on entries without a comment")

	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// runPseudoToLanguages handles the `pseudo-to-languages` command.
func runPseudoToLanguages(flags config.Flags) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	return mergeAll(ctx, fsys.NewOSFileSystem(), cfg)
}

func mergeAll(ctx context.Context, filesystem fsys.FileSystem, cfg *config.Config) error {
	log.Info().
		Strs("languages", cfg.Languages).
		Str("development_language", cfg.DevelopmentLanguage).
		Msg("Running MergeL10n")

	basePaths, err := filewalker.NewWalker(filesystem, cfg.MasterLanguage).Expand(cfg.BasePaths)
	if err != nil {
		return err
	}

	report := merger.New(filesystem, merger.Options{
		Languages:           cfg.Languages,
		DevelopmentLanguage: cfg.DevelopmentLanguage,
		MasterLanguage:      cfg.MasterLanguage,
		MasterEncoding:      cfg.MasterEncoding,
		TargetEncoding:      cfg.TargetEncoding,
		RequireComments:     cfg.RequireComments,
		Workers:             cfg.WorkerCount,
	}).Run(ctx, basePaths)

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(failed), len(report.Results), report.Err())
	}
	return nil
}

// runValidate handles the `validate` command.
func runValidate(filesystem fsys.FileSystem, paths []string, enc fsys.Encoding, requireComments bool) error {
	failures := 0
	for _, p := range paths {
		file, ok := stringsfile.FromPath(p)
		if !ok {
			log.Error().Str("path", p).Msg("Not a <language>.lproj/Localizable.strings path")
			failures++
			continue
		}

		entries, err := file.Read(filesystem, enc, requireComments)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("Invalid file")
			failures++
			continue
		}
		log.Info().Str("path", p).Int("entries", len(entries)).Msg("File valid")
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files invalid", failures, len(paths))
	}
	return nil
}
