package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"mergel10n/internal/fsys"
	"mergel10n/internal/textutil"
)

// FileName is the optional YAML configuration file looked up in the
// working directory.
const FileName = "mergel10n.yaml"

type Config struct {
	Languages           []string
	BasePaths           []string
	DevelopmentLanguage string
	MasterLanguage      string
	MasterEncoding      fsys.Encoding
	TargetEncoding      fsys.Encoding
	RequireComments     bool
	WorkerCount         int
}

// Flags carries command line values. Empty strings, nil pointers and zero
// counts mean the flag was not given.
type Flags struct {
	Languages           string
	BasePaths           string
	DevelopmentLanguage string
	MasterLanguage      string
	MasterEncoding      string
	TargetEncoding      string
	RequireComments     *bool
	WorkerCount         int
}

type fileConfig struct {
	Languages           []string `yaml:"languages"`
	BasePaths           []string `yaml:"basePaths"`
	DevelopmentLanguage string   `yaml:"developmentLanguage"`
	MasterLanguage      string   `yaml:"masterLanguage"`
	MasterEncoding      string   `yaml:"masterEncoding"`
	TargetEncoding      string   `yaml:"targetEncoding"`
	RequireComments     *bool    `yaml:"requireComments"`
	Workers             int      `yaml:"workers"`
}

// Loader resolves configuration from flags, the environment, a .env file
// and mergel10n.yaml, in that order of precedence.
type Loader struct {
	FS fsys.FileSystem
	// Getenv reads process environment variables.
	Getenv func(string) string
	// Dir holds .env and mergel10n.yaml.
	Dir string
}

// Load resolves configuration from the working directory and process
// environment.
func Load(flags Flags) (*Config, error) {
	return Loader{FS: fsys.NewOSFileSystem(), Getenv: os.Getenv, Dir: "."}.Load(flags)
}

func (l Loader) Load(flags Flags) (*Config, error) {
	file, err := l.readFile()
	if err != nil {
		return nil, err
	}

	env := l.environment(flags.Languages == "" || flags.BasePaths == "")

	languages := textutil.SplitList(firstNonEmpty(flags.Languages, env("SUPPORTED_LANGUAGES")))
	if len(languages) == 0 {
		languages = file.Languages
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf(`use --languages "en,pt" or set SUPPORTED_LANGUAGES before running; a .env file or %s also works`, FileName)
	}

	basePaths := textutil.SplitList(firstNonEmpty(flags.BasePaths, env("L10N_BASE_PATHS")))
	if len(basePaths) == 0 {
		basePaths = file.BasePaths
	}
	if len(basePaths) == 0 {
		return nil, fmt.Errorf(`use --base-paths "SomeFolder/Resources,AnotherFolder/Resources" or set L10N_BASE_PATHS before running; a .env file or %s also works`, FileName)
	}

	masterEncoding, err := fsys.ParseEncoding(firstNonEmpty(flags.MasterEncoding, env("MASTER_ENCODING"), file.MasterEncoding, string(fsys.UTF16)))
	if err != nil {
		return nil, fmt.Errorf("master encoding: %w", err)
	}
	targetEncoding, err := fsys.ParseEncoding(firstNonEmpty(flags.TargetEncoding, env("TARGET_ENCODING"), file.TargetEncoding, string(fsys.UTF8)))
	if err != nil {
		return nil, fmt.Errorf("target encoding: %w", err)
	}

	requireComments := true
	switch {
	case flags.RequireComments != nil:
		requireComments = *flags.RequireComments
	case file.RequireComments != nil:
		requireComments = *file.RequireComments
	}

	workers := flags.WorkerCount
	if workers <= 0 {
		workers = getEnvInt(env, "WORKER_COUNT", file.Workers)
	}
	if workers <= 0 {
		workers = 4
	}

	return &Config{
		Languages:           textutil.Unique(languages),
		BasePaths:           textutil.Unique(basePaths),
		DevelopmentLanguage: firstNonEmpty(flags.DevelopmentLanguage, env("DEVELOPMENT_LANGUAGE"), file.DevelopmentLanguage, "en"),
		MasterLanguage:      firstNonEmpty(flags.MasterLanguage, env("MASTER_LANGUAGE"), file.MasterLanguage, "zz"),
		MasterEncoding:      masterEncoding,
		TargetEncoding:      targetEncoding,
		RequireComments:     requireComments,
		WorkerCount:         workers,
	}, nil
}

func (l Loader) readFile() (fileConfig, error) {
	var cfg fileConfig
	path := filepath.Join(l.Dir, FileName)
	if !l.FS.Exists(path) {
		return cfg, nil
	}
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// environment returns a lookup over process variables, falling back to the
// .env file when loadDotEnv is set. Process variables win, as with
// godotenv.Load.
func (l Loader) environment(loadDotEnv bool) func(string) string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	dotenv := map[string]string{}
	if loadDotEnv {
		dotenv = l.readDotEnv()
	}

	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}

func (l Loader) readDotEnv() map[string]string {
	path := filepath.Join(l.Dir, ".env")
	data, err := l.FS.ReadFile(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("No .env file found, using environment variables")
		return map[string]string{}
	}
	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Ignoring malformed .env file")
		return map[string]string{}
	}
	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func getEnvInt(env func(string) string, key string, fallback int) int {
	v := env(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
