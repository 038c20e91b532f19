package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/dataset"
	"github.com/brookluers/survcmp/internal/run"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print per-variable summaries of the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logrus.New()
		log.SetLevel(parseLevel())

		frame, _, err := run.LoadFrame(cfg, log)
		if err != nil {
			return err
		}

		summaries, err := dataset.Describe(frame)
		if err != nil {
			return err
		}

		tw := tablewriter.NewWriter(os.Stdout)
		tw.SetHeader([]string{"Variable", "N", "Mean", "SD", "Min", "Median", "Max"})
		for _, vs := range summaries {
			tw.Append([]string{
				vs.Name,
				fmt.Sprintf("%d", vs.N),
				fmt.Sprintf("%.4f", vs.Mean),
				fmt.Sprintf("%.4f", vs.SD),
				fmt.Sprintf("%.4f", vs.Min),
				fmt.Sprintf("%.4f", vs.Median),
				fmt.Sprintf("%.4f", vs.Max),
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
