package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/internal/run"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the comparison when an input file changes",
	Long: `Watch the dataset and the imported curve files, and re-run the full
comparison into a fresh session directory whenever one of them is
rewritten. Useful while an external tool iterates on its export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return run.Watch(cfg, parseLevel(), watchDebounce)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"quiet period before a change triggers a run")
	rootCmd.AddCommand(watchCmd)
}
