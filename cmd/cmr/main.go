// Command cmr normalizes and validates CMR waybills from local files.
//
//	cmr normalize albaran.pdf --extractor http --ocr-endpoint http://ocr.lan:8000
//	cmr validate albaran.json
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "flota/internal/cmr/ocrhttp"
)

var rootCmd = &cobra.Command{
	Use:           "cmr",
	Short:         "Normalize and validate CMR waybills",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
