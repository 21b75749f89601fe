// Package cmr turns the raw OCR text of a CMR consignment note into a
// structured domain.CMRDocument.
package cmr

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"flota/internal/domain"
	"flota/internal/port"
)

// outcome is the result of one normalization attempt: either a processed
// document or the reason it failed.
type outcome struct {
	doc        *domain.CMRDocument
	confidence map[string]float64
	reason     string
}

func processed(doc *domain.CMRDocument, confidence map[string]float64) outcome {
	return outcome{doc: doc, confidence: confidence}
}

func failed(reason string) outcome { return outcome{reason: reason} }

func (o outcome) ok() bool { return o.doc != nil }

// Normalizer extracts and structures CMR documents.
type Normalizer struct {
	extractor port.CMRExtractor
	now       func() time.Time
	log       *logrus.Entry
}

// NewNormalizer creates a Normalizer backed by the given extractor.
func NewNormalizer(extractor port.CMRExtractor) *Normalizer {
	return &Normalizer{
		extractor: extractor,
		now:       time.Now,
		log:       logrus.WithField("component", "cmr.normalizer"),
	}
}

// Extractor returns the extractor the normalizer reads documents with.
func (n *Normalizer) Extractor() port.CMRExtractor {
	return n.extractor
}

// WithClock overrides the time source. Used in tests.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Result pairs a normalized document with the extractor's confidence scores.
// Confidence is empty for failed documents.
type Result struct {
	Document   *domain.CMRDocument
	Confidence map[string]float64
}

// Normalize always returns a document. When extraction or parsing fails the
// document has status error, every required field holds its error sentinel and
// ProcessingError carries the reason.
func (n *Normalizer) Normalize(ctx context.Context, document []byte) *domain.CMRDocument {
	return n.NormalizeDetailed(ctx, document).Document
}

// NormalizeDetailed is Normalize plus the confidence scores reported by the
// extractor.
func (n *Normalizer) NormalizeDetailed(ctx context.Context, document []byte) Result {
	res := n.run(ctx, document)
	now := n.now()
	if res.ok() {
		res.doc.Status = domain.CMRStatusProcessed
		res.doc.ProcessedAt = &now
		return Result{Document: res.doc, Confidence: res.confidence}
	}
	n.log.WithField("reason", res.reason).Warn("cmr normalization failed")
	return Result{Document: errorDocument(res.reason, now), Confidence: map[string]float64{}}
}

func (n *Normalizer) run(ctx context.Context, document []byte) (res outcome) {
	defer func() {
		if r := recover(); r != nil {
			res = failed(fmt.Sprint(r))
		}
	}()

	raw, err := n.extractor.Extract(ctx, document)
	if err != nil {
		return failed(err.Error())
	}
	if raw == nil {
		return failed("extractor returned no data")
	}

	doc, err := n.parse(cleanText(raw.Text))
	if err != nil {
		return failed(err.Error())
	}
	confidence := raw.Confidence
	if confidence == nil {
		confidence = map[string]float64{}
	}
	return processed(doc, confidence)
}

func (n *Normalizer) parse(text string) (*domain.CMRDocument, error) {
	cargo, err := extractCargo(text)
	if err != nil {
		return nil, err
	}
	plate, driver := extractVehicle(text)

	doc := &domain.CMRDocument{
		Number:              extractNumber(text),
		LoadingDate:         extractDate(loadingDatePattern, text),
		DeliveryDate:        extractDate(deliveryDatePattern, text),
		Sender:              extractParty(text, senderStart, senderEnd),
		Recipient:           extractParty(text, recipientStart, recipientEnd),
		VehiclePlate:        plate,
		Driver:              driver,
		Cargo:               cargo,
		SpecialInstructions: extractInstructions(text),
	}
	if issued := extractDate(issueDatePattern, text); issued != nil {
		doc.IssueDate = *issued
	} else {
		doc.IssueDate = n.now()
	}
	return doc, nil
}

// cleanText composes accents (OCR engines often emit "e" + U+0301), folds
// CRLF line endings and turns Unicode spaces such as NBSP into ASCII spaces so
// the labels in the rules match.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII && unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func errorDocument(reason string, now time.Time) *domain.CMRDocument {
	party := domain.PartyInfo{
		Name:    domain.PartyError,
		Address: domain.PartyError,
		City:    domain.PartyError,
		Country: domain.PartyError,
	}
	if reason == "" {
		reason = "unknown error"
	}
	return &domain.CMRDocument{
		Number:       domain.CMRNumberError,
		IssueDate:    now,
		Sender:       party,
		Recipient:    party,
		VehiclePlate: domain.PlateError,
		Cargo: domain.CargoInfo{
			Description:   domain.CargoErrorDesc,
			Category:      domain.CargoGeneral,
			GrossWeightKg: 0,
		},
		Status:          domain.CMRStatusError,
		ProcessingError: &reason,
		ProcessedAt:     &now,
	}
}
