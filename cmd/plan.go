package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan [topic]",
	Short: "Build a learning path interactively in the terminal",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		level := parseLevel(levelFlag)
		if !level.Known() {
			return fmt.Errorf("unknown level %q (use low, medium, or high)", levelFlag)
		}

		// The TUI owns the terminal; keep logs out of it.
		orch, cleanup, err := buildOrchestrator(cmd, zap.NewNop())
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.Run(orch, strings.Join(args, " "), level)
	},
}

func init() {
	planCmd.Flags().String("level", "medium", "Learner level: low, medium, or high")
}

// parseLevel maps a case-insensitive flag value to a learner level.
func parseLevel(s string) curriculum.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return curriculum.LevelLow
	case "medium":
		return curriculum.LevelMedium
	case "high":
		return curriculum.LevelHigh
	}
	return curriculum.Level(s)
}
