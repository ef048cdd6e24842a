// Command vcftool inspects and converts DLS vehicle configuration files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dlstool/vcf/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Version is set at build time.
var Version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type detectCmd struct {
	Files []string `arg:"positional,required" help:"configuration files"`
}

type analyzeCmd struct {
	File   string `arg:"positional,required" help:"configuration file"`
	Format string `arg:"-f,--format" default:"text" help:"output format: text, json or yaml"`
}

type convertCmd struct {
	File   string `arg:"positional,required" help:"configuration file"`
	Output string `arg:"-o,--output" help:"output file (default: input name with the target version suffix)"`
	Yes    bool   `arg:"-y,--yes" help:"write the result without asking when features are lost"`
}

type fmtCmd struct {
	File   string `arg:"positional,required" help:"configuration file"`
	Output string `arg:"-o,--output" help:"output file (default: stdout)"`
}

type dumpCmd struct {
	File string `arg:"positional,required" help:"configuration file"`
}

type scanCmd struct {
	Dir    string `arg:"positional,required" help:"folder to index"`
	Format string `arg:"-f,--format" default:"text" help:"output format: text, json or yaml"`
}

type pluginCmd struct {
	Path string `arg:"positional,required" help:"DLS.ini or the game folder"`
}

type args struct {
	Config   string `arg:"--config" help:"config file" placeholder:"FILE"`
	LogLevel string `arg:"--log-level" help:"trace, debug, info, warn or error" placeholder:"LEVEL"`

	Detect  *detectCmd  `arg:"subcommand:detect" help:"print the schema version of each file"`
	Analyze *analyzeCmd `arg:"subcommand:analyze" help:"summarise a configuration"`
	Convert *convertCmd `arg:"subcommand:convert" help:"convert a configuration to the other schema version"`
	Fmt     *fmtCmd     `arg:"subcommand:fmt" help:"rewrite a configuration in canonical form"`
	Dump    *dumpCmd    `arg:"subcommand:dump" help:"print the parsed model"`
	Scan    *scanCmd    `arg:"subcommand:scan" help:"index the configurations under a folder"`
	Plugin  *pluginCmd  `arg:"subcommand:plugin" help:"infer the installed plugin version from DLS.ini"`
}

func (args) Version() string { return "vcftool " + Version }

func (args) Description() string {
	return "vcftool reads, analyses and converts DLS v1 and v2 vehicle configuration files."
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env carries the streams and settings of one invocation.
type env struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    config.Settings
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "vcftool", IgnoreEnv: true}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "vcftool: %v\n", err)
		return exitError
	}
	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return exitOK
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, a.Version())
		return exitOK
	case err != nil:
		p.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if p.Subcommand() == nil {
		p.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error: a command is required")
		return exitUsage
	}

	cfg, err := loadConfig(a.Config)
	if err != nil {
		fmt.Fprintf(stderr, "vcftool: %v\n", err)
		return exitError
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	logger := setupLogging(stderr, cfg.LogLevel)

	e := &env{
		ctx:    logger.WithContext(context.Background()),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
	}

	switch {
	case a.Detect != nil:
		err = e.detect(a.Detect)
	case a.Analyze != nil:
		err = e.analyze(a.Analyze)
	case a.Convert != nil:
		err = e.convert(a.Convert)
	case a.Fmt != nil:
		err = e.fmt(a.Fmt)
	case a.Dump != nil:
		err = e.dump(a.Dump)
	case a.Scan != nil:
		err = e.scan(a.Scan)
	case a.Plugin != nil:
		err = e.plugin(a.Plugin)
	}

	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		p.WriteHelpForSubcommand(stderr, p.SubcommandNames()...)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	case errors.Is(err, errAborted):
		fmt.Fprintln(stderr, "vcftool: aborted, nothing written")
		return exitError
	default:
		logger.Debug().Msgf("%+v", err)
		fmt.Fprintf(stderr, "vcftool: %v\n", err)
		return exitError
	}
}

// usageError is a bad flag value found after parsing.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func loadConfig(path string) (config.Settings, error) {
	var err error
	if path != "" {
		err = config.LoadFile(path)
	} else {
		dirs := []string{"."}
		if dir, derr := os.UserConfigDir(); derr == nil {
			dirs = append(dirs, filepath.Join(dir, config.Name))
		}
		err = config.Load(dirs...)
	}
	if err != nil {
		return config.Settings{}, err
	}
	return config.Current()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func setupLogging(w io.Writer, level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
