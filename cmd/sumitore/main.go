// Package main provides the CLI entrypoint for sumitore.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sumitore/internal/config"
	"github.com/verte-zerg/sumitore/internal/llm"
	"github.com/verte-zerg/sumitore/internal/model"
	"github.com/verte-zerg/sumitore/internal/stats"
	"github.com/verte-zerg/sumitore/internal/store"
	"github.com/verte-zerg/sumitore/internal/tui"
)

const (
	defaultTimeoutSeconds = 30
	defaultCurveWindow    = 20
	defaultCurveWidth     = 80
)

const apiKeyEnv = "GROQ_API_KEY"

var (
	trainModel   string
	trainBaseURL string
	trainTimeout int

	statsCurveWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sumitore",
		Short:         "TUI summary trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainCmd,
	}

	rootCmd.Flags().StringVar(&trainModel, "model", llm.DefaultModel, "chat model used for generation and evaluation")
	rootCmd.Flags().StringVar(&trainBaseURL, "base-url", llm.DefaultBaseURL, "OpenAI-compatible API base URL")
	rootCmd.Flags().IntVar(&trainTimeout, "timeout", defaultTimeoutSeconds, "API request timeout in seconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runTrainCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "model", &trainModel, fileCfg.API.Model)
	applyStringConfig(cmd, "base-url", &trainBaseURL, fileCfg.API.BaseURL)
	applyIntConfig(cmd, "timeout", &trainTimeout, fileCfg.API.TimeoutSeconds)

	cfg := model.Config{
		Model:          trainModel,
		BaseURL:        trainBaseURL,
		TimeoutSeconds: trainTimeout,
		Lengths:        model.DefaultLengths,
	}
	if fileCfg.Training.Lengths != nil && len(*fileCfg.Training.Lengths) > 0 {
		cfg.Lengths = *fileCfg.Training.Lengths
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	apiKey, saveKey, err := resolveAPIKey()
	if err != nil {
		return err
	}
	client := llm.New(apiKey, cfg.BaseURL, cfg.Model)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	err = client.ValidateCredentials(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}
	if saveKey {
		if err := config.SaveAPIKey(config.DefaultCredentialsPath(), apiKey); err != nil {
			logErrf("failed to save API key: %v\n", err)
		}
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	history, err := st.ListResults(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	model := tui.NewModel(cfg, client, st, history)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveAPIKey returns the key and whether it should be persisted after
// validation. Order: credentials file, environment, interactive prompt.
func resolveAPIKey() (string, bool, error) {
	key, err := config.LoadAPIKey(config.DefaultCredentialsPath())
	if err != nil {
		return "", false, fmt.Errorf("failed to load credentials: %w", err)
	}
	if key != "" {
		return key, false, nil
	}
	if env := strings.TrimSpace(os.Getenv(apiKeyEnv)); env != "" {
		return env, false, nil
	}
	key, err = promptAPIKey()
	if err != nil {
		return "", false, err
	}
	return key, true, nil
}

func promptAPIKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Groq API key: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		key := strings.TrimSpace(string(raw))
		if key == "" {
			return "", fmt.Errorf("API key must not be empty (or set %s)", apiKeyEnv)
		}
		return key, nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no API key provided (set %s or run sumitore in a terminal)", apiKeyEnv)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", fmt.Errorf("API key must not be empty (or set %s)", apiKeyEnv)
	}
	return key, nil
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show training stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window for the pass-rate curve")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	history, err := st.ListResults(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	width := defaultCurveWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	out := cmd.OutOrStdout()
	report := stats.BuildReport(history, time.Now())
	if err := stats.RenderSummary(out, report); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := stats.RenderBadges(out, report.Badges); err != nil {
		return fmt.Errorf("failed to render badges: %w", err)
	}
	if err := stats.RenderPassCurve(out, history, statsCurveWindow, width); err != nil {
		return fmt.Errorf("failed to render pass curve: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sumitore configuration
# Uncomment a value to enable it. CLI flags override config values.

[api]
# model = %q        # Chat model used for generation and evaluation
# base-url = %q     # OpenAI-compatible API base URL
# timeout-seconds = %d              # API request timeout in seconds

[training]
# lengths = [200, 400, 600, 800]   # Passage lengths offered in the menu
`,
		llm.DefaultModel,
		llm.DefaultBaseURL,
		defaultTimeoutSeconds,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Model == "" {
		return fmt.Errorf("--model must not be empty")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("--base-url must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("--timeout must be > 0")
	}
	for _, length := range cfg.Lengths {
		if length <= 0 {
			return fmt.Errorf("config lengths must be > 0")
		}
	}
	if len(cfg.Lengths) == 0 {
		return fmt.Errorf("config lengths must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
