package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var quantifyPretty bool

var quantifyCmd = &cobra.Command{
	Use:   "quantify [file]",
	Short: "Add quantification_data to a Financial State Object",
	Long: `Reads a Financial State Object from file (or stdin when omitted or "-")
and prints the updated document to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuantify,
}

func init() {
	quantifyCmd.Flags().BoolVar(&quantifyPretty, "pretty", false, "Indent the output document")
}

func runQuantify(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	quantifier, err := newQuantifier(cfg, logger)
	if err != nil {
		return err
	}

	out, err := quantifier.QuantifyJSON(data)
	if err != nil {
		return err
	}

	if quantifyPretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return err
		}
		out = buf.Bytes()
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
