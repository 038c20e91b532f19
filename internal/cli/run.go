package cli

import (
	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/internal/run"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full comparison pipeline",
	Long: `Load the configured dataset, fit the models, harmonize their survival
curves, and write every configured report format into a fresh session
directory under output.dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sess, err := run.NewSession(cfg.Output.Dir, parseLevel())
		if err != nil {
			return err
		}
		defer sess.Close()

		return run.Run(cfg, sess)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
