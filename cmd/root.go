// Package cmd provides the CLI commands for promptline.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eirnym-learn/promptline/internal/adapters/gitinfo"
	"github.com/eirnym-learn/promptline/internal/adapters/render"
	"github.com/eirnym-learn/promptline/internal/adapters/system"
	"github.com/eirnym-learn/promptline/internal/config"
	"github.com/eirnym-learn/promptline/internal/logging"
	"github.com/eirnym-learn/promptline/internal/ports"
	"github.com/eirnym-learn/promptline/internal/services"
)

// Global flags
var (
	cfgPath      string
	startPath    string
	refName      string
	verbose      bool
	noColor      bool
	asciiSymbols bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptline",
	Short: "Promptline - a shell prompt line with git status",
	Long: `Promptline renders a single prompt line with time, user, host,
python environment, and git repository status segments.

Wire it into your shell's prompt command, e.g. for zsh:

  precmd() { PROMPT="$(promptline) %# " }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPrompt,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to the config file (default: ~/.config/promptline/config.toml)")
	rootCmd.PersistentFlags().StringVar(&startPath, "path", "", "Directory to inspect (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&refName, "ref", "", "Reference to resolve (default: HEAD)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&asciiSymbols, "ascii", false, "Use the ASCII symbol set")
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := newRunLogger(cfg)

	svc := services.NewPromptService(
		gitinfo.NewCollector(log),
		system.NewHostProvider(),
		system.NewPythonProvider(),
		cfg.TimeLayout,
		log,
	)
	data := svc.Gather(cmd.Context(), gitRequest(cfg))

	renderer := render.NewRenderer(symbolsFor(cfg), render.DefaultPalette(), colorEnabled())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(data))
	return nil
}

// gitRequest merges flag overrides onto the configured request defaults.
func gitRequest(cfg *config.Config) ports.GitRequest {
	req := cfg.Git.Request()
	if startPath != "" {
		req.StartFolder = startPath
	}
	if refName != "" {
		req.ReferenceName = refName
	}
	return req
}

// newRunLogger builds the diagnostic logger for one invocation. The run id
// tells interleaved prompt redraws apart in a shared stderr stream.
func newRunLogger(cfg *config.Config) logging.Logger {
	log := logging.NewVerbose(verbose || cfg.Verbose)
	return log.With("run", uuid.NewString())
}

func symbolsFor(cfg *config.Config) render.Symbols {
	if asciiSymbols || cfg.Theme == "ascii" {
		return render.ASCII()
	}
	return render.UTFPower()
}

func colorEnabled() bool {
	if noColor {
		return false
	}
	return term.IsTerminal(os.Stdout.Fd())
}
