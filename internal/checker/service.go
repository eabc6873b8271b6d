// Package checker runs one product check end to end: fetch the page,
// parse it, run the extraction pipeline, resolve the snapshot.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stockwatch/digitec-stock-check/internal/cache"
	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stockwatch/digitec-stock-check/internal/extract"
	"github.com/stockwatch/digitec-stock-check/internal/fetch"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

var ErrEmptyURL = errors.New("product URL is empty")

type Service struct {
	fetcher  fetch.Fetcher
	pipeline *extract.Pipeline
	cache    *cache.SnapshotCache
	logger   *slog.Logger
}

// NewService wires a checker. cache may be nil to disable caching.
func NewService(fetcher fetch.Fetcher, pipeline *extract.Pipeline, snapCache *cache.SnapshotCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:  fetcher,
		pipeline: pipeline,
		cache:    snapCache,
		logger:   logger.With("component", "checker"),
	}
}

// Check resolves the current status of the product at url. Only fetch
// and document construction can fail; extraction itself is total and a
// page with no recognizable signal resolves to availability "unknown".
func (s *Service) Check(ctx context.Context, url string) (*models.ProductSnapshot, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	log := s.logger.With("check_id", uuid.NewString(), "url", url)

	if snap, ok := s.cache.Get(ctx, url); ok {
		log.Debug("serving cached snapshot", "checked_at", snap.CheckedAt)
		return snap, nil
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch product page: %w", err)
	}

	doc, err := document.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse product page: %w", err)
	}

	snap := s.pipeline.Run(doc)
	s.cache.Set(ctx, url, &snap)

	log.Info("product checked",
		"availability", string(snap.Availability),
		"name", snap.Name,
		"pickup_locations", len(snap.PickupLocations))
	return &snap, nil
}
