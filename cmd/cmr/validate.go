package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flota/internal/cmr"
	"flota/internal/domain"
)

var errInvalidDocument = errors.New("document is not valid")

var validateCmd = &cobra.Command{
	Use:   "validate [json-file]",
	Short: "Check a normalized CMR document against the business rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var doc domain.CMRDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	violations := cmr.Violations(&doc)
	if len(violations) == 0 {
		fmt.Fprintln(out, "valid")
		return nil
	}
	for _, v := range violations {
		fmt.Fprintln(out, "-", v)
	}
	return errInvalidDocument
}
