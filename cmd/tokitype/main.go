// Package main provides the CLI entrypoint for tokitype.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tokitype/internal/config"
	"github.com/verte-zerg/tokitype/internal/generator"
	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/results"
	"github.com/verte-zerg/tokitype/internal/session"
	"github.com/verte-zerg/tokitype/internal/tui"
	"github.com/verte-zerg/tokitype/internal/wordlist"
)

const (
	defaultCategory = string(model.CategoryCore)
	defaultWords    = generator.MaxWords
	debugEnv        = "TOKITYPE_DEBUG"
)

var (
	practiceCategory   string
	practiceWords      int
	practiceDataset    string
	practiceDeprecated bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tokitype",
		Short:         "TUI typing drill for toki pona vocabulary",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	addPracticeFlags(rootCmd)
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCategoriesCmd())

	return rootCmd
}

func addPracticeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&practiceCategory, "category", defaultCategory, "usage category (core, common, uncommon, obscure, sandbox)")
	cmd.Flags().IntVar(&practiceWords, "words", defaultWords, fmt.Sprintf("words per session (1-%d)", generator.MaxWords))
	cmd.Flags().StringVar(&practiceDataset, "dataset", "", "dataset TOML file, optionally .bz2 (default: embedded)")
	cmd.Flags().BoolVar(&practiceDeprecated, "deprecated", false, "include deprecated words")
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	pending := wordlist.Preload(cfg.DatasetPath)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	records, err := pending.Wait()
	if err != nil {
		return fmt.Errorf("failed to load dataset %s: %w", wordlist.SourceName(cfg.DatasetPath), err)
	}
	eligible := wordlist.Filter(records, wordlist.FilterForCategory(cfg.Category, cfg.IncludeDeprecated))
	if len(eligible) == 0 {
		logErrln("no", cfg.Category, "words with definitions in", wordlist.SourceName(cfg.DatasetPath))
	}
	log.Printf("loaded %d records, %d eligible", len(records), len(eligible))

	pairs := generator.New().Generate(eligible, cfg.Words)
	return practice(session.New(pairs), cmd.OutOrStdout(), runProgram)
}

// practice drives s through the typing UI and prints the summary once the
// session completes. An empty session completes without starting the UI.
func practice(s *session.Session, out io.Writer, run func(tea.Model) error) error {
	m := tui.NewModel(s)
	if !s.Done() {
		if err := run(m); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
	}
	if m.Screen() != session.ScreenResults {
		return nil
	}
	var reporter results.Reporter = results.NewTableReporter(out)
	if err := reporter.Report(m.Session().Words()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	for _, key := range fileCfg.Unknown {
		logErrf("ignoring unknown config key %q\n", key)
	}
	applyStringConfig(cmd, "category", &practiceCategory, fileCfg.Practice.Category)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "dataset", &practiceDataset, fileCfg.Practice.Dataset)
	applyBoolConfig(cmd, "deprecated", &practiceDeprecated, fileCfg.Practice.Deprecated)

	category, err := model.ParseCategory(practiceCategory)
	if err != nil {
		return model.Config{}, fmt.Errorf("--category: %w", err)
	}
	cfg := model.Config{
		Category:          category,
		Words:             practiceWords,
		DatasetPath:       expandHome(practiceDataset),
		IncludeDeprecated: practiceDeprecated,
		Profile:           fileCfg.Profile,
		Settings:          fileCfg.Settings,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// setupLogging routes the standard logger to a file when debugging is
// enabled and discards it otherwise, so nothing is written over the TUI.
func setupLogging() (func(), error) {
	if os.Getenv(debugEnv) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := config.DefaultDebugLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "tokitype")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List usage categories with eligible word counts",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesCmd,
	}
	cmd.Flags().StringVar(&practiceDataset, "dataset", "", "dataset TOML file, optionally .bz2 (default: embedded)")
	cmd.Flags().BoolVar(&practiceDeprecated, "deprecated", false, "include deprecated words")
	return cmd
}

func runCategoriesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dataset", &practiceDataset, fileCfg.Practice.Dataset)
	applyBoolConfig(cmd, "deprecated", &practiceDeprecated, fileCfg.Practice.Deprecated)

	path := expandHome(practiceDataset)
	records, err := wordlist.LoadWords(path)
	if err != nil {
		return fmt.Errorf("failed to load dataset %s: %w", wordlist.SourceName(path), err)
	}
	return writeCategories(cmd.OutOrStdout(), wordlist.CountByCategory(records, practiceDeprecated))
}

func writeCategories(w io.Writer, counts map[model.UsageCategory]int) error {
	for _, c := range model.Categories {
		if _, err := fmt.Fprintf(w, "%-9s %d\n", c, counts[c]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tokitype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# category = %q       # Usage category: core, common, uncommon, obscure, sandbox
# words = %d               # Words per session (1-%d)
# dataset = ""             # Dataset TOML file, optionally .bz2 (empty: embedded)
# deprecated = false       # Include deprecated words

# Reserved for future options.
[profile]

[settings]
`,
		defaultCategory,
		defaultWords,
		generator.MaxWords,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 || cfg.Words > generator.MaxWords {
		return fmt.Errorf("--words must be between 1 and %d", generator.MaxWords)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
