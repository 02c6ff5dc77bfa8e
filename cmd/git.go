package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eirnym-learn/promptline/internal/adapters/gitinfo"
	"github.com/eirnym-learn/promptline/internal/adapters/render"
	"github.com/eirnym-learn/promptline/internal/config"
)

var jsonOutput bool

// gitCmd prints only the repository segment, mainly for shells that
// compose their prompt from individual pieces and for debugging.
var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Print only the git segment",
	Long:  `Collect the repository state snapshot and print the git segment alone.`,
	RunE:  runGit,
}

func init() {
	gitCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the raw snapshot in JSON format")
	rootCmd.AddCommand(gitCmd)
}

func runGit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := newRunLogger(cfg)

	snapshot, err := gitinfo.NewCollector(log).Collect(cmd.Context(), gitRequest(cfg))
	if err != nil {
		// Outside a repository the segment is simply empty; the prompt
		// pipeline must not see an error exit.
		if errors.Is(err, gitinfo.ErrRepositoryNotFound) {
			log.Debug("no repository", "err", err)
			return nil
		}
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderer := render.NewRenderer(symbolsFor(cfg), render.DefaultPalette(), colorEnabled())
	if segment := renderer.GitSegment(snapshot); segment != "" {
		fmt.Fprintln(cmd.OutOrStdout(), segment)
	}
	return nil
}
