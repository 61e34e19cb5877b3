// Package merger synchronizes every language file under a set of base paths
// with the master file of each base path.
package merger

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"mergel10n/internal/fsys"
	"mergel10n/internal/l10n"
	"mergel10n/internal/stringsfile"
	"mergel10n/internal/worker"
)

type Options struct {
	Languages []string
	// DevelopmentLanguage receives empty entries for keys it lacks; other
	// languages drop them.
	DevelopmentLanguage string
	MasterLanguage      string
	MasterEncoding      fsys.Encoding
	TargetEncoding      fsys.Encoding
	// RequireComments applies to language files. The master file always
	// requires comments.
	RequireComments bool
	Workers         int
}

// Result is the outcome for one file.
type Result struct {
	File stringsfile.File
	// Master marks the read of a base path's master file.
	Master  bool
	Entries int
	Err     error
}

// Report lists the outcome of every file a run touched.
type Report struct {
	Results []Result
}

// Failed returns the failed results.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the errors of all failed results, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

type unit struct {
	file          stringsfile.File
	master        []l10n.Entry
	fillWithEmpty bool
}

// Synchronizer runs the merge for a set of base paths.
type Synchronizer struct {
	filesystem fsys.FileSystem
	opts       Options
}

func New(filesystem fsys.FileSystem, opts Options) *Synchronizer {
	return &Synchronizer{filesystem: filesystem, opts: opts}
}

// Run merges each language file of each base path. A base path whose master
// file cannot be read is skipped. Language files are processed concurrently
// and independently; each failure is recorded in the report without
// stopping the others.
func (s *Synchronizer) Run(ctx context.Context, basePaths []string) Report {
	var report Report
	var units []unit
	seen := make(map[string]bool)

	for _, basePath := range basePaths {
		masterFile := stringsfile.File{BasePath: basePath, Language: s.opts.MasterLanguage}
		master, err := masterFile.Read(s.filesystem, s.opts.MasterEncoding, true)
		if err != nil {
			log.Error().Err(err).Str("base_path", basePath).Msg("Cannot read master file, skipping base path")
			report.Results = append(report.Results, Result{File: masterFile, Master: true, Err: err})
			continue
		}
		log.Debug().Str("base_path", basePath).Int("keys", len(master)).Msg("Master file loaded")

		for _, language := range s.opts.Languages {
			if language == s.opts.MasterLanguage {
				log.Warn().Str("language", language).Msg("Skipping master language in target list")
				continue
			}
			file := stringsfile.File{BasePath: basePath, Language: language}
			if seen[file.Path()] {
				continue
			}
			seen[file.Path()] = true
			units = append(units, unit{
				file:          file,
				master:        master,
				fillWithEmpty: language == s.opts.DevelopmentLanguage,
			})
		}
	}

	pool := worker.NewPool[unit, int](s.opts.Workers, s.merge).WithLabel(func(u unit) string { return u.file.Path() })
	for _, task := range pool.Execute(ctx, units) {
		report.Results = append(report.Results, Result{
			File:    task.Input.file,
			Entries: task.Result,
			Err:     task.Err,
		})
	}

	log.Info().
		Int("base_paths", len(basePaths)).
		Int("files", len(units)).
		Int("failed", len(report.Failed())).
		Msg("Merge complete")

	return report
}

func (s *Synchronizer) merge(_ context.Context, u unit) (int, error) {
	merged, err := u.file.Replace(s.filesystem, u.master, stringsfile.ReplaceOptions{
		FillWithEmpty:    u.fillWithEmpty,
		RequiresComments: s.opts.RequireComments,
		Encoding:         s.opts.TargetEncoding,
	})
	if err != nil {
		return 0, err
	}
	log.Info().
		Str("base_path", u.file.BasePath).
		Str("language", u.file.Language).
		Int("entries", len(merged)).
		Bool("fill_with_empty", u.fillWithEmpty).
		Msg("Language file merged")
	return len(merged), nil
}
