// Package main provides the CLI entrypoint for wordfind.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordfind/internal/config"
	"github.com/verte-zerg/wordfind/internal/finder"
	"github.com/verte-zerg/wordfind/internal/model"
	"github.com/verte-zerg/wordfind/internal/stats"
	"github.com/verte-zerg/wordfind/internal/tui"
	"github.com/verte-zerg/wordfind/internal/wordlist"
)

const defaultLettersTop = 10

var (
	findPattern  string
	findInclude  string
	findExclude  string
	findGUI      bool
	findWordlist string
	findStrict   bool

	lettersTop int
)

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordfind",
		Short: "Narrow down candidate words for Wordle-style games",
		Long: `Filters a five-letter word list by a positional pattern, letters that
must appear and letters that must not appear.

Use letters for known positions and . for unknown ones, e.g. -p "a..le".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFindCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&findPattern, "pattern", "p", "", "letters for known positions, . for unknown (default: any word)")
	flags.StringVarP(&findInclude, "include", "i", "", "letters that must appear, e.g. \"ref\"")
	flags.StringVarP(&findExclude, "exclude", "e", "", "letters that must not appear, e.g. \"xyz\"")
	flags.StringVarP(&findWordlist, "wordlist", "w", "", "path to a newline-delimited word list (default: built-in)")
	flags.BoolVar(&findStrict, "strict", false, "drop word list entries that are not plain a-z words of the built-in length")
	rootCmd.Flags().BoolVarP(&findGUI, "gui", "g", false, "launch the interactive finder")

	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newServeStdioCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runFindCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}

	if cfg.GUI {
		return runGUI(dict, cfg.Request())
	}

	words, err := findWords(cmd.ErrOrStderr(), dict, cfg.Request())
	if err != nil {
		return err
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, word := range words {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runGUI(dict wordlist.Dictionary, req finder.Request) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("--gui requires an interactive terminal")
	}
	m := tui.NewModel(finder.New(dict), req)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newLettersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Show which letters are most common among the matches",
		Args:  cobra.NoArgs,
		RunE:  runLettersCmd,
	}
	cmd.Flags().IntVar(&lettersTop, "top", defaultLettersTop, "number of letters to show (0 for all)")
	return cmd
}

func runLettersCmd(cmd *cobra.Command, _ []string) error {
	if lettersTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	req := cfg.Request()
	words, err := findWords(cmd.ErrOrStderr(), dict, req)
	if err != nil {
		return err
	}
	report := stats.BuildReport(words, finder.ParseLetters(req.Include), lettersTop)
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%d candidates\n", report.Candidates); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Letters) == 0 {
		return nil
	}
	if err := stats.WriteTable(out, report.Letters, report.Candidates); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newServeStdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-stdio",
		Short: "Answer JSON requests on stdin, one per line",
		Long: `Reads requests of the form {"pattern":"a..le","include":"p","exclude":"g"},
one per line, and writes {"words":[...]} (or {"words":[],"error":"..."})
for each to stdout.`,
		Args: cobra.NoArgs,
		RunE: runServeStdioCmd,
	}
}

func runServeStdioCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	return finder.New(dict).Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
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
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// resolveConfig merges the config file under any flags set on the command line.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "pattern", &findPattern, fileCfg.Finder.Pattern)
	applyStringConfig(cmd, "include", &findInclude, fileCfg.Finder.Include)
	applyStringConfig(cmd, "exclude", &findExclude, fileCfg.Finder.Exclude)
	applyBoolConfig(cmd, "gui", &findGUI, fileCfg.Finder.GUI)
	applyStringConfig(cmd, "wordlist", &findWordlist, fileCfg.Wordlist.Path)
	applyBoolConfig(cmd, "strict", &findStrict, fileCfg.Wordlist.Strict)

	return model.Config{
		Pattern:  findPattern,
		Include:  findInclude,
		Exclude:  findExclude,
		GUI:      findGUI,
		WordList: findWordlist,
		Strict:   findStrict,
	}, nil
}

func loadDictionary(cfg model.Config) (wordlist.Dictionary, error) {
	if cfg.WordList == "" {
		return wordlist.Default(), nil
	}
	var keep wordlist.FilterFunc
	if cfg.Strict {
		keep = wordlist.Strict()
	}
	dict, err := wordlist.LoadWords(cfg.WordList, keep)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordList, err)
	}
	return dict, nil
}

// findWords validates req and filters dict. A pattern that cannot match the
// dictionary's word length is reported on errOut but still yields an empty result.
func findWords(errOut io.Writer, dict wordlist.Dictionary, req finder.Request) ([]string, error) {
	c, err := finder.Compile(req)
	if err != nil {
		return nil, fmt.Errorf("invalid --pattern: %w", err)
	}
	if n := dict.WordLen(); n > 0 && c.Pattern.Len() > 0 && c.Pattern.Len() != n {
		logErrf(errOut, "warning: pattern %q has %d positions but words have %d letters\n", c.Pattern.String(), c.Pattern.Len(), n)
	}
	return finder.Filter(dict, c), nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# wordfind configuration
# Uncomment a value to enable it. CLI flags override config values.

[finder]
# pattern = "....."       # Letters for known positions, . for unknown
# include = ""            # Letters that must appear
# exclude = ""            # Letters that must not appear
# gui = false             # Start the interactive finder by default

[wordlist]
# path = ""               # Newline-delimited word list (default: built-in)
# strict = false          # Drop entries that are not plain a-z five-letter words
`
}

func logErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
