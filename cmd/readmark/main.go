package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sort"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/DanielOaks/readmark/internal/analyze"
	"github.com/DanielOaks/readmark/internal/config"
	"github.com/DanielOaks/readmark/internal/files"
	"github.com/DanielOaks/readmark/internal/formula"
	"github.com/DanielOaks/readmark/internal/log"
	"github.com/DanielOaks/readmark/internal/output"
	"github.com/DanielOaks/readmark/internal/vocab"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readmark <command> [flags] [files...]

Commands:
  score     Score Markdown files with a readability formula
  check     Flag files whose score crosses the difficulty threshold
  formulas  List available readability formulas
  init      Generate a default .readmark.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'readmark <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "score":
		return runScore(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "formulas":
		return runFormulas(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "readmark: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("readmark %s\n", version)
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		configPath  string
		formulaName string
		format      string
		top         int
		verbose     bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&formulaName, "formula", "", "Readability formula (overrides config)")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.IntVar(&top, "top", 0, "Show only the N hardest files")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readmark score [flags] [files...]\n\n"+
			"Score Markdown files with a readability formula and rank them\n"+
			"hardest first.\n\n"+
			"Files can be paths, directories (walked recursively for *.md), or\n"+
			"glob patterns. With no file arguments, config discovery patterns\n"+
			"are used, or stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: verbose, Prefix: "readmark", W: os.Stderr}

	analyzer, err := buildAnalyzer(cfg, formulaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	paths, err := resolvePaths(fs.Args(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	if len(paths) == 0 {
		if !isStdinPipe() {
			return 0
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readmark: reading stdin: %v\n", err)
			return 2
		}
		res := analyzer.ScoreSource(source)
		rows := []scoreRow{{Path: "<stdin>", Result: res}}
		return writeScores(rows, analyzer.Formula, format, top)
	}

	rows := make([]scoreRow, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readmark: reading %q: %v\n", path, err)
			return 2
		}
		res := analyzer.ScoreSource(source)
		logger.Printf("scored %s: %g", path, res.Score)
		rows = append(rows, scoreRow{Path: path, Result: res})
	}

	return writeScores(rows, analyzer.Formula, format, top)
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath  string
		formulaName string
		format      string
		noColor     bool
		quiet       bool
		verbose     bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&formulaName, "formula", "", "Readability formula (overrides config)")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readmark check [flags] [files...]\n\n"+
			"Check Markdown files against the difficulty threshold and flag\n"+
			"the hardest sentences.\n\n"+
			"Files can be paths, directories (walked recursively for *.md), or\n"+
			"glob patterns. With no file arguments, config discovery patterns\n"+
			"are used, or stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: verbose, Prefix: "readmark", W: os.Stderr}

	analyzer, err := buildAnalyzer(cfg, formulaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	paths, err := resolvePaths(fs.Args(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: %v\n", err)
		return 2
	}

	var findings []analyze.Finding
	if len(paths) == 0 {
		if !isStdinPipe() {
			return 0
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readmark: reading stdin: %v\n", err)
			return 2
		}
		findings = analyzer.CheckSource("<stdin>", source)
	} else {
		for _, path := range paths {
			source, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "readmark: reading %q: %v\n", path, err)
				return 2
			}
			fileFindings := analyzer.CheckSource(path, source)
			logger.Printf("checked %s: %d findings", path, len(fileFindings))
			findings = append(findings, fileFindings...)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		fi, fj := findings[i], findings[j]
		if fi.File != fj.File {
			return fi.File < fj.File
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		return fi.Column < fj.Column
	})

	if !quiet && len(findings) > 0 {
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !noColor}
		}

		if err := formatter.Format(os.Stderr, findings); err != nil {
			fmt.Fprintf(os.Stderr, "readmark: error writing output: %v\n", err)
			return 2
		}
	}

	if len(findings) > 0 {
		return 1
	}

	return 0
}

// runFormulas implements the "formulas" subcommand.
func runFormulas(args []string) int {
	fs := flag.NewFlagSet("formulas", flag.ContinueOnError)
	var format string
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readmark formulas [flags]\n\n"+
			"List available readability formulas.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readmark: formulas takes no file arguments\n")
		return 2
	}

	switch format {
	case "text":
		if err := writeFormulasText(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "readmark: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeFormulasJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "readmark: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "readmark: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	return 0
}

// runInit implements the "init" subcommand: generate .readmark.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readmark init\n\n"+
			"Generate a default .readmark.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readmark: init takes no arguments\n")
		return 2
	}

	const configFile = ".readmark.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "readmark: %s already exists\n", configFile)
		return 2
	}

	cfg := dumpDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readmark: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "readmark: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readmark: created %s\n", configFile)
	return 0
}

// dumpDefaults returns the default config with every formula's
// threshold spelled out, for `readmark init`.
func dumpDefaults() *config.Config {
	cfg := config.Defaults()
	thresholds := make(map[string]float64)
	for _, f := range formula.All() {
		thresholds[f.String()] = f.DefaultThreshold()
	}
	cfg.Thresholds = thresholds
	return cfg
}

// buildAnalyzer assembles an Analyzer from config plus an optional
// formula name override from the command line.
func buildAnalyzer(cfg *config.Config, override string) (*analyze.Analyzer, error) {
	name := cfg.Formula
	if override != "" {
		name = override
	}
	f, err := formula.Parse(name)
	if err != nil {
		return nil, err
	}

	analyzer := analyze.New(f)

	if len(cfg.Vocabularies) > 0 {
		lists := vocab.Builtin()
		for vName, path := range cfg.Vocabularies {
			if err := lists.LoadFile(vocab.Name(vName), path); err != nil {
				return nil, err
			}
		}
		analyzer.Env.Difficult = lists.DifficultWords
	}

	if t, ok := cfg.Thresholds[f.String()]; ok {
		analyzer.Threshold = t
	}
	if cfg.Highlight != nil {
		analyzer.Highlight = *cfg.Highlight
	}
	if cfg.MinWords != nil {
		analyzer.MinWords = *cfg.MinWords
	}
	if cfg.Top != nil {
		analyzer.Top = *cfg.Top
	}

	return analyzer, nil
}

// resolvePaths resolves command-line file arguments, falling back to
// config discovery patterns, then filters ignored paths.
func resolvePaths(args []string, cfg *config.Config, logger *log.Logger) ([]string, error) {
	var paths []string
	var err error

	if len(args) > 0 {
		paths, err = files.Resolve(args)
	} else if len(cfg.Files) > 0 {
		paths, err = files.Discover(".", cfg.Files)
	}
	if err != nil {
		return nil, err
	}

	kept := paths[:0]
	for _, path := range paths {
		if files.MatchesAny(cfg.Ignore, path) {
			logger.Printf("ignoring %s", path)
			continue
		}
		kept = append(kept, path)
	}
	logger.Printf("resolved %d files", len(kept))
	return kept, nil
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	return config.Merge(defaults, loaded), nil
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
