package extract

import (
	"log/slog"

	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// Pipeline runs every strategy over one document and resolves the
// partials. Priority order, strongest first: hydration state, JSON-LD,
// meta tags, vendor body text, generic body text. Total: any document,
// including an empty one, produces a complete snapshot.
type Pipeline struct {
	extractors []Extractor
	resolver   *Resolver
	logger     *slog.Logger
}

func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractors: []Extractor{
			HydrationExtractor{},
			LinkedDataExtractor{},
			MetaExtractor{},
			VendorTextExtractor{},
			GenericTextExtractor{},
		},
		resolver: NewResolver(),
		logger:   logger.With("component", "pipeline"),
	}
}

func (p *Pipeline) Run(doc *document.Document) models.ProductSnapshot {
	partials := make([]models.PartialResult, 0, len(p.extractors))
	for _, ex := range p.extractors {
		res := ex.Extract(doc)
		if !res.Empty() {
			p.logger.Debug("strategy matched",
				"strategy", ex.Name(),
				"availability", string(res.Availability),
				"has_name", res.Name != "",
				"has_price", res.Price != "")
		}
		partials = append(partials, res)
	}
	return p.resolver.Resolve(partials)
}
