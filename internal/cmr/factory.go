package cmr

import (
	"fmt"

	"flota/internal/config"
	"flota/internal/port"
)

// ExtractorFactory creates a CMRExtractor from the CMR config.
type ExtractorFactory func(cfg *config.CMRConfig) (port.CMRExtractor, error)

// registry of extractor factories, populated by init() in each extractor package
// or explicitly via RegisterExtractor.
var extractors = map[string]ExtractorFactory{
	"mock": func(*config.CMRConfig) (port.CMRExtractor, error) { return NewMockExtractor(), nil },
}

// RegisterExtractor registers an extractor factory by name.
func RegisterExtractor(name string, factory ExtractorFactory) {
	extractors[name] = factory
}

// NewExtractor creates the extractor named by cfg.Extractor. An empty name
// selects the mock extractor.
func NewExtractor(cfg *config.CMRConfig) (port.CMRExtractor, error) {
	name := cfg.Extractor
	if name == "" {
		name = "mock"
	}
	factory, ok := extractors[name]
	if !ok {
		return nil, fmt.Errorf("unknown cmr extractor: %s", name)
	}
	return factory(cfg)
}
