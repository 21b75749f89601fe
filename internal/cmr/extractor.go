package cmr

import (
	"context"
	"time"

	"flota/internal/domain"
	"flota/internal/port"
)

// sampleWaybill is the text the mock extractor "reads" from any input.
const sampleWaybill = `
        CMR - Carta de Porte Internacional
        N° CMR: CMR-2024-001234

        REMITENTE / EXPEDITEUR / SENDER
        Empresa Transportes S.A.
        Calle Mayor 123
        Madrid, España
        Contacto: Juan Pérez

        DESTINATARIO / DESTINATAIRE / RECIPIENT
        Logística Industrial Ltd.
        Avenida Industrial 456
        Barcelona, España
        Contacto: María García

        FECHAS / DATES
        Fecha de emisión: 15/01/2024
        Fecha de carga: 16/01/2024
        Fecha de entrega: 18/01/2024

        VEHÍCULO / VEHICLE
        Matrícula: 1234-ABC
        Conductor: Carlos Rodríguez

        CARGA / CHARGE / LOAD
        Descripción: Mercancía general - electrodomésticos
        Tipo: General
        Peso bruto: 2500 kg
        Volumen: 15 m³
        Unidades: 50 paquetes
        Valor mercancía: 15000 €

        INSTRUCCIONES ESPECIALES
        Manejar con cuidado. Temperatura controlada 15-25°C.
        `

// MockExtractor returns a fixed sample waybill regardless of the input bytes.
// It stands in for an OCR engine in development and tests.
type MockExtractor struct {
	now func() time.Time
}

// NewMockExtractor creates a MockExtractor.
func NewMockExtractor() port.CMRExtractor {
	return &MockExtractor{now: time.Now}
}

// Extract implements port.CMRExtractor.
func (m *MockExtractor) Extract(_ context.Context, _ []byte) (*domain.RawExtraction, error) {
	return &domain.RawExtraction{
		Text: sampleWaybill,
		Confidence: map[string]float64{
			"numero_cmr":   0.95,
			"remitente":    0.90,
			"destinatario": 0.88,
			"fechas":       0.92,
			"matricula":    0.98,
			"carga":        0.85,
		},
		Metadata: map[string]any{
			"document_type":        "CMR",
			"extraction_method":    "mock_ocr",
			"processing_timestamp": m.now().Format(time.RFC3339),
		},
	}, nil
}
