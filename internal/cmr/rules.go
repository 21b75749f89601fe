package cmr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"flota/internal/domain"
)

var (
	numberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)N°\s*CMR[:\s]*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)CMR[:\s]*([A-Z0-9\-]+)(?:\s|$)`),
		regexp.MustCompile(`(?i)Número[:\s]*([A-Z0-9\-]+)`),
	}
	// case-sensitive on purpose: "cmr-abc" alone is not a document number
	numberContent = regexp.MustCompile(`[A-Z0-9]`)

	issueDatePattern    = regexp.MustCompile(`(?i)Fecha de emisión[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)
	loadingDatePattern  = regexp.MustCompile(`(?i)Fecha de carga[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)
	deliveryDatePattern = regexp.MustCompile(`(?i)Fecha de entrega[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{4})`)

	senderStart    = regexp.MustCompile(`(?is)REMITENTE.*?/.*?SENDER`)
	senderEnd      = regexp.MustCompile(`(?i)DESTINATARIO`)
	recipientStart = regexp.MustCompile(`(?is)DESTINATARIO.*?/.*?RECIPIENT`)
	recipientEnd   = regexp.MustCompile(`(?i)FECHAS|VEHÍCULO`)
	cargoStart     = regexp.MustCompile(`(?is)CARGA.*?/.*?LOAD`)
	cargoEnd       = regexp.MustCompile(`(?i)INSTRUCCIONES`)

	contactPattern = regexp.MustCompile(`(?i)Contacto[:\s]*([^\n]+)`)
	platePattern   = regexp.MustCompile(`(?i)Matrícula[:\s]*([A-Z0-9\-]+)`)
	driverPattern  = regexp.MustCompile(`(?i)Conductor[:\s]*([^\n]+)`)

	descriptionPattern = regexp.MustCompile(`(?i)Descripción[:\s]*([^\n]+)`)
	weightPattern      = regexp.MustCompile(`(?i)Peso bruto[:\s]*(\d+(?:\.\d+)?)\s*kg`)
	volumePattern      = regexp.MustCompile(`(?i)Volumen[:\s]*(\d+(?:\.\d+)?)\s*m³`)
	unitsPattern       = regexp.MustCompile(`(?i)Unidades[:\s]*(\d+)`)
	valuePattern       = regexp.MustCompile(`(?i)Valor.*?(\d+(?:\.\d+)?)\s*€`)

	instructionsPattern = regexp.MustCompile(`(?is)INSTRUCCIONES ESPECIALES(.*)`)
)

// categoryKeywords is checked in order; the first category with a keyword
// present in the description wins.
var categoryKeywords = []struct {
	category domain.CargoCategory
	keywords []string
}{
	{domain.CargoDangerous, []string{"peligrosa"}},
	{domain.CargoFragile, []string{"frágil"}},
	{domain.CargoRefrigerated, []string{"refrigerada"}},
}

const dateLayout = "2/1/2006"

func extractNumber(text string) string {
	for _, re := range numberPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		number := strings.TrimSpace(m[1])
		if numberContent.MatchString(number) {
			return number
		}
	}
	return domain.CMRNumberUnknown
}

// extractDate returns nil when the label is absent or the date does not exist
// on the calendar (e.g. 31/02/2024).
func extractDate(re *regexp.Regexp, text string) *time.Time {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.ReplaceAll(m[1], "-", "/"))
	if err != nil || t.Year() < 1 {
		return nil
	}
	return &t
}

// section returns the text following the first match of start, cut at the
// first match of end. ok is false when start does not match.
func section(text string, start, end *regexp.Regexp) (string, bool) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	if cut := end.FindStringIndex(rest); cut != nil {
		rest = rest[:cut[0]]
	}
	return rest, true
}

func extractParty(text string, start, end *regexp.Regexp) domain.PartyInfo {
	body, ok := section(text, start, end)
	if !ok {
		return domain.PartyInfo{Name: domain.PartyUnknown}
	}

	var lines []string
	for _, l := range strings.Split(body, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	line := func(i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	party := domain.PartyInfo{
		Name:    line(0),
		Address: line(1),
		City:    line(2),
		Country: line(3),
		Contact: firstCapture(contactPattern, body),
	}
	if party.Name == "" {
		party.Name = domain.PartyUnknown
	}
	return party
}

func extractVehicle(text string) (string, *string) {
	plate := domain.PlateUnknown
	if m := platePattern.FindStringSubmatch(text); m != nil {
		plate = m[1]
	}
	return plate, firstCapture(driverPattern, text)
}

func extractCargo(text string) (domain.CargoInfo, error) {
	body, ok := section(text, cargoStart, cargoEnd)
	if !ok {
		body = text
	}

	cargo := domain.CargoInfo{
		Description: domain.CargoDefaultDesc,
		Category:    domain.CargoGeneral,
	}
	if desc := firstCapture(descriptionPattern, body); desc != nil {
		cargo.Description = *desc
	}
	cargo.Category = categorize(cargo.Description)

	if m := weightPattern.FindStringSubmatch(body); m != nil {
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return cargo, fmt.Errorf("parsing gross weight %q: %w", m[1], err)
		}
		cargo.GrossWeightKg = w
	}
	if m := volumePattern.FindStringSubmatch(body); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return cargo, fmt.Errorf("parsing volume %q: %w", m[1], err)
		}
		cargo.VolumeM3 = &v
	}
	if m := unitsPattern.FindStringSubmatch(body); m != nil {
		u, err := strconv.Atoi(m[1])
		if err != nil {
			return cargo, fmt.Errorf("parsing units %q: %w", m[1], err)
		}
		cargo.Units = &u
	}
	if m := valuePattern.FindStringSubmatch(body); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return cargo, fmt.Errorf("parsing declared value %q: %w", m[1], err)
		}
		cargo.DeclaredValue = &v
	}
	return cargo, nil
}

func categorize(description string) domain.CargoCategory {
	lower := strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.category
			}
		}
	}
	return domain.CargoGeneral
}

func extractInstructions(text string) *string {
	return firstCapture(instructionsPattern, text)
}

// firstCapture returns the trimmed first group of re, or nil when there is no
// match or the capture is blank.
func firstCapture(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	s := strings.TrimSpace(m[1])
	if s == "" {
		return nil
	}
	return &s
}
