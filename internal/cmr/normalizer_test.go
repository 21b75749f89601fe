package cmr_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flota/internal/cmr"
	"flota/internal/domain"
	"flota/mocks"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func textExtractor(text string) *mocks.MockCMRExtractor {
	m := new(mocks.MockCMRExtractor)
	m.On("Extract", mock.Anything, mock.Anything).Return(&domain.RawExtraction{Text: text}, nil)
	return m
}

func normalizeText(t *testing.T, text string) *domain.CMRDocument {
	t.Helper()
	doc := cmr.NewNormalizer(textExtractor(text)).WithClock(clock).Normalize(context.Background(), []byte("pdf"))
	require.NotNil(t, doc)
	return doc
}

type panicExtractor struct{}

func (panicExtractor) Extract(context.Context, []byte) (*domain.RawExtraction, error) {
	panic("ocr engine crashed")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizer_MockSample(t *testing.T) {
	n := cmr.NewNormalizer(cmr.NewMockExtractor()).WithClock(clock)
	doc := n.Normalize(context.Background(), []byte("%PDF-1.4"))

	assert.Equal(t, domain.CMRStatusProcessed, doc.Status)
	assert.Nil(t, doc.ProcessingError)
	require.NotNil(t, doc.ProcessedAt)
	assert.Equal(t, fixedNow, *doc.ProcessedAt)

	assert.Equal(t, "CMR-2024-001234", doc.Number)
	assert.Equal(t, date(2024, 1, 15), doc.IssueDate)
	require.NotNil(t, doc.LoadingDate)
	assert.Equal(t, date(2024, 1, 16), *doc.LoadingDate)
	require.NotNil(t, doc.DeliveryDate)
	assert.Equal(t, date(2024, 1, 18), *doc.DeliveryDate)

	assert.Equal(t, "Empresa Transportes S.A.", doc.Sender.Name)
	assert.Equal(t, "Calle Mayor 123", doc.Sender.Address)
	assert.Equal(t, "Madrid, España", doc.Sender.City)
	assert.Equal(t, "Contacto: Juan Pérez", doc.Sender.Country)
	require.NotNil(t, doc.Sender.Contact)
	assert.Equal(t, "Juan Pérez", *doc.Sender.Contact)

	assert.Equal(t, "Logística Industrial Ltd.", doc.Recipient.Name)
	assert.Equal(t, "Avenida Industrial 456", doc.Recipient.Address)
	assert.Equal(t, "Barcelona, España", doc.Recipient.City)
	require.NotNil(t, doc.Recipient.Contact)
	assert.Equal(t, "María García", *doc.Recipient.Contact)

	assert.Equal(t, "1234-ABC", doc.VehiclePlate)
	require.NotNil(t, doc.Driver)
	assert.Equal(t, "Carlos Rodríguez", *doc.Driver)

	assert.Equal(t, "Mercancía general - electrodomésticos", doc.Cargo.Description)
	assert.Equal(t, domain.CargoGeneral, doc.Cargo.Category)
	assert.Equal(t, 2500.0, doc.Cargo.GrossWeightKg)
	require.NotNil(t, doc.Cargo.VolumeM3)
	assert.Equal(t, 15.0, *doc.Cargo.VolumeM3)
	require.NotNil(t, doc.Cargo.Units)
	assert.Equal(t, 50, *doc.Cargo.Units)
	require.NotNil(t, doc.Cargo.DeclaredValue)
	assert.Equal(t, 15000.0, *doc.Cargo.DeclaredValue)

	require.NotNil(t, doc.SpecialInstructions)
	assert.Equal(t, "Manejar con cuidado. Temperatura controlada 15-25°C.", *doc.SpecialInstructions)
	assert.True(t, cmr.IsValid(doc))
}

func TestNormalizer_MockSample_Deterministic(t *testing.T) {
	n := cmr.NewNormalizer(cmr.NewMockExtractor()).WithClock(clock)
	first := n.Normalize(context.Background(), []byte("a"))
	second := n.Normalize(context.Background(), []byte("b"))
	assert.Equal(t, first, second)
}

func TestNormalizer_NeverFails(t *testing.T) {
	inputs := [][]byte{nil, {}, []byte("garbage"), {0xff, 0xfe, 0x00}}
	texts := []string{"", "   ", "\x00\x01", "REMITENTE / SENDER", "CARGA / LOAD Peso bruto: kg", "Fecha de carga: 99/99/9999"}

	for _, in := range inputs {
		doc := cmr.NewNormalizer(cmr.NewMockExtractor()).Normalize(context.Background(), in)
		require.NotNil(t, doc)
	}
	for _, text := range texts {
		doc := normalizeText(t, text)
		assert.Equal(t, domain.CMRStatusProcessed, doc.Status, text)
	}
}

func TestNormalizer_MissingNumber(t *testing.T) {
	doc := normalizeText(t, "REMITENTE / SENDER\nAcme\n")

	assert.Equal(t, domain.CMRNumberUnknown, doc.Number)
	assert.Equal(t, domain.CMRStatusProcessed, doc.Status)
	assert.Equal(t, "Acme", doc.Sender.Name)
	assert.Equal(t, domain.PartyUnknown, doc.Recipient.Name)
	assert.Equal(t, domain.PlateUnknown, doc.VehiclePlate)
	assert.Nil(t, doc.Driver)
	assert.Equal(t, domain.CargoDefaultDesc, doc.Cargo.Description)
	assert.Zero(t, doc.Cargo.GrossWeightKg)
	assert.Nil(t, doc.SpecialInstructions)
}

func TestNormalizer_NumberPatterns(t *testing.T) {
	t.Run("lowercase_capture_rejected", func(t *testing.T) {
		doc := normalizeText(t, "CMR: abc\n")
		assert.Equal(t, domain.CMRNumberUnknown, doc.Number)
	})

	t.Run("falls_through_to_numero", func(t *testing.T) {
		doc := normalizeText(t, "cmr: abc\nNúmero: X-77\n")
		assert.Equal(t, "X-77", doc.Number)
	})

	t.Run("bare_cmr_label", func(t *testing.T) {
		doc := normalizeText(t, "Documento CMR: AB-12 emitido\n")
		assert.Equal(t, "AB-12", doc.Number)
	})
}

func TestNormalizer_ExtractorError(t *testing.T) {
	ext := new(mocks.MockCMRExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("unreadable pdf"))

	doc := cmr.NewNormalizer(ext).WithClock(clock).Normalize(context.Background(), []byte("x"))

	assert.Equal(t, domain.CMRStatusError, doc.Status)
	assert.Equal(t, domain.CMRNumberError, doc.Number)
	require.NotNil(t, doc.ProcessingError)
	assert.Equal(t, "unreadable pdf", *doc.ProcessingError)
	assert.Equal(t, fixedNow, doc.IssueDate)
	assert.Equal(t, domain.PartyError, doc.Sender.Name)
	assert.Equal(t, domain.PartyError, doc.Sender.Country)
	assert.Equal(t, domain.PartyError, doc.Recipient.Address)
	assert.Equal(t, domain.PlateError, doc.VehiclePlate)
	assert.Equal(t, domain.CargoErrorDesc, doc.Cargo.Description)
	assert.Equal(t, domain.CargoGeneral, doc.Cargo.Category)
	assert.Zero(t, doc.Cargo.GrossWeightKg)
	assert.False(t, cmr.IsValid(doc))
	ext.AssertExpectations(t)
}

func TestNormalizer_ExtractorPanic(t *testing.T) {
	doc := cmr.NewNormalizer(panicExtractor{}).WithClock(clock).Normalize(context.Background(), []byte("x"))

	assert.Equal(t, domain.CMRStatusError, doc.Status)
	require.NotNil(t, doc.ProcessingError)
	assert.Contains(t, *doc.ProcessingError, "ocr engine crashed")
}

func TestNormalizer_NilExtraction(t *testing.T) {
	ext := new(mocks.MockCMRExtractor)
	ext.On("Extract", mock.Anything, mock.Anything).Return(nil, nil)

	doc := cmr.NewNormalizer(ext).Normalize(context.Background(), []byte("x"))
	assert.Equal(t, domain.CMRStatusError, doc.Status)
	assert.NotEmpty(t, *doc.ProcessingError)
}

func TestNormalizer_UnparseableNumberFailsDocument(t *testing.T) {
	doc := normalizeText(t, "CARGA / LOAD\nUnidades: 99999999999999999999999\n")

	assert.Equal(t, domain.CMRStatusError, doc.Status)
	require.NotNil(t, doc.ProcessingError)
	assert.Contains(t, *doc.ProcessingError, "units")
}

func TestNormalizer_Dates(t *testing.T) {
	t.Run("issue_date", func(t *testing.T) {
		doc := normalizeText(t, "Fecha de emisión: 15/01/2024")
		assert.Equal(t, date(2024, 1, 15), doc.IssueDate)
	})

	t.Run("dash_separator", func(t *testing.T) {
		doc := normalizeText(t, "Fecha de carga: 3-2-2024")
		require.NotNil(t, doc.LoadingDate)
		assert.Equal(t, date(2024, 2, 3), *doc.LoadingDate)
	})

	t.Run("malformed_omitted", func(t *testing.T) {
		doc := normalizeText(t, "Fecha de emisión: 32/13/2024\nFecha de entrega: 31/02/2024")
		assert.Equal(t, domain.CMRStatusProcessed, doc.Status)
		assert.Equal(t, fixedNow, doc.IssueDate)
		assert.Nil(t, doc.DeliveryDate)
	})

	t.Run("year_zero_omitted", func(t *testing.T) {
		doc := normalizeText(t, "Fecha de emisión: 01/01/0000\nFecha de entrega: 01/01/0000")
		assert.Equal(t, fixedNow, doc.IssueDate)
		assert.Nil(t, doc.DeliveryDate)
	})

	t.Run("decomposed_accent", func(t *testing.T) {
		doc := normalizeText(t, "Fecha de emisio\u0301n: 01/06/2023")
		assert.Equal(t, date(2023, 6, 1), doc.IssueDate)
	})
}

func TestNormalizer_NonBreakingSpaces(t *testing.T) {
	doc := normalizeText(t, "N° CMR:\u00a0CMR-2024-9\nFecha de emisión:\u00a015/01/2024\nMatrícula:\u00a01234-ABC\n")

	assert.Equal(t, "CMR-2024-9", doc.Number)
	assert.Equal(t, date(2024, 1, 15), doc.IssueDate)
	assert.Equal(t, "1234-ABC", doc.VehiclePlate)
}

func TestNormalizer_Vehicle(t *testing.T) {
	doc := normalizeText(t, "Matrícula: 9876-XYZ\r\nConductor: Ana López\r\n")

	assert.Equal(t, "9876-XYZ", doc.VehiclePlate)
	require.NotNil(t, doc.Driver)
	assert.Equal(t, "Ana López", *doc.Driver)
}

func TestNormalizer_CargoCategory(t *testing.T) {
	tests := []struct {
		desc string
		want domain.CargoCategory
	}{
		{"Mercancía peligrosa clase 3", domain.CargoDangerous},
		{"Cristalería frágil, mercancía peligrosa", domain.CargoDangerous},
		{"Cristalería FRÁGIL", domain.CargoFragile},
		{"Carne refrigerada", domain.CargoRefrigerated},
		{"Muebles de oficina", domain.CargoGeneral},
		{"Producto no peligroso", domain.CargoGeneral},
		{"Non-hazardous chemicals", domain.CargoGeneral},
		{"Fragile glassware", domain.CargoGeneral},
		{"Pescado refrigerado", domain.CargoGeneral},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			doc := normalizeText(t, "CARGA / CHARGE / LOAD\nDescripción: "+tc.desc+"\nPeso bruto: 10 kg\n")
			assert.Equal(t, tc.want, doc.Cargo.Category)
			assert.Equal(t, 10.0, doc.Cargo.GrossWeightKg)
		})
	}
}

func TestNormalizer_CargoWithoutSectionUsesFullText(t *testing.T) {
	doc := normalizeText(t, "Peso bruto: 12.5 kg\nValor: 300.75 €\n")

	assert.Equal(t, 12.5, doc.Cargo.GrossWeightKg)
	require.NotNil(t, doc.Cargo.DeclaredValue)
	assert.Equal(t, 300.75, *doc.Cargo.DeclaredValue)
	assert.Nil(t, doc.Cargo.VolumeM3)
	assert.Nil(t, doc.Cargo.Units)
}

func TestNormalizer_EmptyInstructions(t *testing.T) {
	doc := normalizeText(t, "INSTRUCCIONES ESPECIALES\n   \n")
	assert.Nil(t, doc.SpecialInstructions)
}

func TestNormalizer_NormalizeDetailed_Confidence(t *testing.T) {
	res := cmr.NewNormalizer(cmr.NewMockExtractor()).NormalizeDetailed(context.Background(), []byte("x"))

	assert.Equal(t, domain.CMRStatusProcessed, res.Document.Status)
	assert.Equal(t, 0.98, res.Confidence["matricula"])
	assert.Len(t, res.Confidence, 6)
}
