package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/dataset"
)

var (
	reduceIn      string
	reduceOut     string
	reducePrefix  string
	reduceNfac    int
	reduceNpow    int
	reduceMaxcode int
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a sparse indicator file to SVD factor columns",
	Long: `Read a long-format (subject, code) indicator file, reduce it with an
approximate SVD, and store the centered, scaled factor columns as
binary columns. The factors can then serve as Cox predictors in place
of thousands of sparse indicators.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fa, err := dataset.ReduceIndicators(reduceIn, reduceNfac, reduceNpow, reduceMaxcode)
		if err != nil {
			return err
		}

		if err := fa.WriteBCols(reduceOut, reducePrefix); err != nil {
			return err
		}

		fmt.Printf("reduced %d subjects to %d factors in %s\n", fa.N, reduceNfac, reduceOut)
		fmt.Printf("values: %f\n", fa.Values)
		return nil
	},
}

func init() {
	reduceCmd.Flags().StringVar(&reduceIn, "in", "", "long-format indicator file")
	reduceCmd.Flags().StringVar(&reduceOut, "out", "data", "destination directory")
	reduceCmd.Flags().StringVar(&reducePrefix, "prefix", "F", "factor column name prefix")
	reduceCmd.Flags().IntVar(&reduceNfac, "nfac", 20, "number of factors to extract")
	reduceCmd.Flags().IntVar(&reduceNpow, "npow", 5, "power iterations for the approximate SVD")
	reduceCmd.Flags().IntVar(&reduceMaxcode, "maxcode", 500, "size of the code space")
	_ = reduceCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(reduceCmd)
}
