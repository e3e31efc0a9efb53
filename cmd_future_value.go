package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"goal-quantifier/domain"
)

var (
	fvPresentValue float64
	fvYears        float64
	fvRate         float64
	fvJSON         bool
)

var futureValueCmd = &cobra.Command{
	Use:   "future-value",
	Short: "Compute FV = PV * (1 + i)^n",
	Args:  cobra.NoArgs,
	RunE:  runFutureValue,
}

func init() {
	futureValueCmd.Flags().Float64Var(&fvPresentValue, "pv", 0, "Present value (required)")
	futureValueCmd.Flags().Float64Var(&fvYears, "years", 0, "Timeline in years (required)")
	futureValueCmd.Flags().Float64Var(&fvRate, "rate", 0, "Annual inflation rate as a decimal (default: configured rate)")
	futureValueCmd.Flags().BoolVar(&fvJSON, "json", false, "Print the result as JSON")
	futureValueCmd.MarkFlagRequired("pv")
	futureValueCmd.MarkFlagRequired("years")
}

func runFutureValue(cmd *cobra.Command, args []string) error {
	quantifier, err := newQuantifier(cfg, logger)
	if err != nil {
		return err
	}

	input := domain.FutureValueInput{
		PresentValue:  &fvPresentValue,
		TimelineYears: &fvYears,
	}
	if cmd.Flags().Changed("rate") {
		input.InflationRate = &fvRate
	}

	result, err := quantifier.FutureValue(input)
	if err != nil {
		return err
	}

	if fvJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printFutureValue(cmd.OutOrStdout(), result)
}

func printFutureValue(w io.Writer, r domain.QuantificationResult) error {
	_, err := fmt.Fprintf(w,
		"Present value:        %s\nInflation rate:       %s%%\nTimeline (years):     %s\nFuture value needed:  %s\n",
		money(r.PresentValue),
		percent(r.InflationRateAssumed),
		strconv.FormatFloat(r.TimelineYears, 'f', -1, 64),
		money(r.FutureValueRequired),
	)
	return err
}

func money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return strconv.FormatFloat(rate, 'g', -1, 64)
	}
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(2)
}
