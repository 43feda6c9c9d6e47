// cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kernelshap/kernelshap/shap"
	_ "github.com/kernelshap/kernelshap/shap/regression"
)

var (
	backgroundPath string
	queryRaw       string
	coeffsRaw      string
	bias           float64
	seed           int64
	optionsPath    string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "kernelshap",
	Short: "KernelSHAP attribution for a bundled logistic-regression demo predictor",
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain one query point against the bundled demo predictor",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		xbg, err := LoadBackgroundCSV(backgroundPath)
		if err != nil {
			return err
		}
		x, err := ParseQueryRow(queryRaw, xbg.Cols)
		if err != nil {
			return err
		}
		beta, err := parseFloatList(coeffsRaw)
		if err != nil {
			return fmt.Errorf("invalid --coeffs: %w", err)
		}
		if len(beta) != xbg.Cols {
			return fmt.Errorf("--coeffs has %d values, background has %d features", len(beta), xbg.Cols)
		}
		opts, err := LoadExplainOptions(optionsPath)
		if err != nil {
			return err
		}

		predictor := &LinearLogisticPredictor{Beta: beta, Bias: bias}

		logrus.Infof("Explaining query against %d background rows, %d features, seed=%d", xbg.Rows, xbg.Cols, seed)
		ctx := context.Background()
		explainer, err := shap.NewExplainer(ctx, predictor.Predict, xbg, seed)
		if err != nil {
			return err
		}
		result, err := explainer.Explain(ctx, x, shap.ExplainOptions{
			NSamples:      opts.NSamples,
			Ridge:         opts.Ridge,
			MaxCellBudget: opts.MaxCellBudget,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), result.String())
		logrus.Infof("Explanation complete: %d coalitions used (%d enumerated, %d sampled)",
			result.Diagnostics.NSamplesAdded, result.Diagnostics.NEnumerated, result.Diagnostics.NSampled)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	explainCmd.Flags().StringVar(&backgroundPath, "background", "", "Path to background CSV (required)")
	explainCmd.Flags().StringVar(&queryRaw, "query", "", "Comma-separated query feature values (required)")
	explainCmd.Flags().StringVar(&coeffsRaw, "coeffs", "", "Comma-separated logistic-regression coefficients (required)")
	explainCmd.Flags().Float64Var(&bias, "bias", 0, "Logistic-regression bias term")
	explainCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed")
	explainCmd.Flags().StringVar(&optionsPath, "options", "", "Path to an explain-options YAML file")
	explainCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	_ = explainCmd.MarkFlagRequired("background")
	_ = explainCmd.MarkFlagRequired("query")
	_ = explainCmd.MarkFlagRequired("coeffs")

	rootCmd.AddCommand(explainCmd)
}

// parseFloatList parses a comma-separated list of floats.
func parseFloatList(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
