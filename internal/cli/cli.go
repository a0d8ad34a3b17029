// Package cli implements the pprint command-line interface.
//
// pprint reads YAML, JSON or TOML documents from files or standard input
// and writes each one pretty-printed to standard output. Layout settings
// come from an optional --config file (YAML or TOML) and are overridden by
// flags. All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/pprint"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Input formats accepted by --format.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

type options struct {
	configPath string
	format     string
	cfg        pprint.Config
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := options{cfg: pprint.DefaultConfig()}

	root := &cobra.Command{
		Use:          "pprint [file...]",
		Short:        "pprint pretty-prints YAML, JSON and TOML documents",
		Long:         `pprint reads structured documents and prints them as compact, indented text that wraps long structures at a configurable width. With no file, or when file is -, it reads standard input.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args, &opts)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "layout settings file (.yaml, .yml or .toml)")
	flags.StringVarP(&opts.format, "format", "f", "", "input format: yaml, json or toml (default: by file extension, else yaml)")
	flags.StringVar(&opts.cfg.Indent, "indent", opts.cfg.Indent, "indent unit")
	flags.IntVarP(&opts.cfg.Width, "width", "w", opts.cfg.Width, "preferred maximum line width")
	flags.IntVar(&opts.cfg.MaxItems, "max-items", opts.cfg.MaxItems, "maximum items shown per collection")
	flags.IntVar(&opts.cfg.MaxDepth, "max-depth", opts.cfg.MaxDepth, "maximum nesting depth (0 = unlimited)")
	flags.BoolVar(&opts.cfg.SkipNull, "skip-null", opts.cfg.SkipNull, "omit record fields whose value is null")
	flags.BoolVar(&opts.cfg.WithTypes, "types", opts.cfg.WithTypes, "annotate record fields with their type")
	flags.BoolVar(&opts.cfg.WithIDs, "ids", opts.cfg.WithIDs, "suffix record names with their identity")
	flags.BoolVar(&opts.cfg.Rails, "rails", opts.cfg.Rails, "mark continued lines of long blocks with |")
	flags.BoolVar(&opts.cfg.MultiPerLine, "multi-per-line", opts.cfg.MultiPerLine, "pack several items per line")
	flags.BoolVar(&opts.cfg.SkipNested, "skip-nested", opts.cfg.SkipNested, "omit fields marked as nested records")

	return root
}

func (c *CLI) run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}
	f, err := pprint.New(cfg)
	if err != nil {
		return err
	}
	f.Logger = c.Logger

	if len(args) == 0 {
		args = []string{"-"}
	}
	out := cmd.OutOrStdout()
	for _, name := range args {
		docs, err := c.readDocuments(cmd, name, opts.format)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			c.Logger.Debug("formatting document", "input", name, "index", i)
			s, err := f.FormatContext(cmd.Context(), doc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if _, err := fmt.Fprintln(out, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveConfig layers the flags the user set over the config file, which
// in turn overrides the defaults.
func resolveConfig(flags *pflag.FlagSet, opts *options) (pprint.Config, error) {
	if opts.configPath == "" {
		return opts.cfg, opts.cfg.Validate()
	}
	cfg, err := loadConfigFile(opts.configPath)
	if err != nil {
		return pprint.Config{}, err
	}
	flags.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "indent":
			cfg.Indent = opts.cfg.Indent
		case "width":
			cfg.Width = opts.cfg.Width
		case "max-items":
			cfg.MaxItems = opts.cfg.MaxItems
		case "max-depth":
			cfg.MaxDepth = opts.cfg.MaxDepth
		case "skip-null":
			cfg.SkipNull = opts.cfg.SkipNull
		case "types":
			cfg.WithTypes = opts.cfg.WithTypes
		case "ids":
			cfg.WithIDs = opts.cfg.WithIDs
		case "rails":
			cfg.Rails = opts.cfg.Rails
		case "multi-per-line":
			cfg.MultiPerLine = opts.cfg.MultiPerLine
		case "skip-nested":
			cfg.SkipNested = opts.cfg.SkipNested
		}
	})
	return cfg, cfg.Validate()
}

func loadConfigFile(path string) (pprint.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return pprint.Config{}, err
	}
	defer file.Close()

	var cfg pprint.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = pprint.LoadConfigTOML(file)
	case ".yaml", ".yml", "":
		cfg, err = pprint.LoadConfig(file)
	default:
		return pprint.Config{}, fmt.Errorf("%w: config file %q", pprint.ErrUnsupportedFormat, path)
	}
	if err != nil {
		return pprint.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *CLI) readDocuments(cmd *cobra.Command, name, format string) ([]pprint.Value, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	format = detectFormat(format, name)
	c.Logger.Debug("reading input", "input", name, "format", format)
	docs, err := decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return docs, nil
}

// detectFormat returns format when set, otherwise guesses from the file
// extension of name.
func detectFormat(format, name string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

func decode(r io.Reader, format string) ([]pprint.Value, error) {
	switch format {
	case FormatYAML, "yml", FormatJSON:
		return pprint.DecodeYAML(r)
	case FormatTOML:
		v, err := pprint.DecodeTOML(r)
		if err != nil {
			return nil, err
		}
		return []pprint.Value{v}, nil
	default:
		return nil, fmt.Errorf("%w: %q", pprint.ErrUnsupportedFormat, format)
	}
}
