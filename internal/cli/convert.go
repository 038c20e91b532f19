package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/dataset"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the configured CSV dataset to binary columns",
	Long: `Read the CSV dataset named in the configuration and write its float64
variables as a binary column directory (<name>.bin.gz files plus a
dtypes.json manifest). Subsequent runs can then set dataset.format to
bcols and skip CSV parsing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ds, err := dataset.FromCSV(cfg.Dataset.Path, dataset.CSVOptions{
			Float64:   cfg.Dataset.Float64,
			String:    cfg.Dataset.Strings,
			ChunkSize: cfg.Dataset.ChunkSize,
		})
		if err != nil {
			return err
		}

		n, err := dataset.Convert(ds, cfg.Dataset.Float64, convertOut)
		if err != nil {
			return err
		}

		fmt.Printf("wrote %d rows to %s\n", n, convertOut)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOut, "out", "data", "destination directory")
	rootCmd.AddCommand(convertCmd)
}
