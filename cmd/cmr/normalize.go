package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"flota/internal/cmr"
	"flota/internal/config"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Extract and normalize a CMR document",
	Long:  `Runs the extractor over a PDF and prints the normalized document as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

var (
	extractorName string
	ocrEndpoint   string
	ocrTimeout    time.Duration
)

func init() {
	normalizeCmd.Flags().StringVar(&extractorName, "extractor", "mock", "Text extractor: mock or http")
	normalizeCmd.Flags().StringVar(&ocrEndpoint, "ocr-endpoint", "", "Base URL of the OCR service (http extractor)")
	normalizeCmd.Flags().DurationVar(&ocrTimeout, "ocr-timeout", 30*time.Second, "OCR request timeout")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	extractor, err := cmr.NewExtractor(&config.CMRConfig{
		Extractor:   extractorName,
		OCREndpoint: ocrEndpoint,
		OCRTimeout:  ocrTimeout,
	})
	if err != nil {
		return err
	}

	res := cmr.NewNormalizer(extractor).NormalizeDetailed(cmd.Context(), data)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Document   any                `json:"document"`
		Confidence map[string]float64 `json:"confidence_scores"`
	}{res.Document, res.Confidence})
}
