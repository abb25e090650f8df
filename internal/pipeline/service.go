package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/randytsao24/citydistance/internal/cache"
	"github.com/randytsao24/citydistance/internal/location"
	"github.com/randytsao24/citydistance/internal/models"
)

// Style selects how a request is evaluated
type Style string

const (
	StyleComposed Style = "composed"
	StyleStaged   Style = "staged"
)

const defaultCacheTTL = 5 * time.Minute

// ParseStyle validates a style name. An empty name means composed.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "", StyleComposed:
		return StyleComposed, nil
	case StyleStaged:
		return StyleStaged, nil
	}
	return "", fmt.Errorf("unknown pipeline style %q (want composed or staged)", s)
}

// Options configures a Service
type Options struct {
	Style    Style
	Format   Format
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Service answers distance requests against one directory and memoizes
// rendered output.
type Service struct {
	dir      *location.Directory
	machine  *Machine
	style    Style
	renderer Renderer
	memo     *cache.Cache[requestKey, string]
	logger   *zap.Logger
}

type requestKey struct {
	a, b string
}

// NewService builds a Service. Call Close when done.
func NewService(dir *location.Directory, opts Options) (*Service, error) {
	style, err := ParseStyle(string(opts.Style))
	if err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(opts.Format)
	if err != nil {
		return nil, err
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		dir:      dir,
		machine:  NewMachine(dir),
		style:    style,
		renderer: renderer,
		memo:     cache.New[requestKey, string](ttl),
		logger:   logger.Named("pipeline"),
	}, nil
}

// Evaluate runs the configured style for an already-validated city pair
func (s *Service) Evaluate(a, b location.City) (Result, error) {
	if s.style == StyleStaged {
		return s.machine.Run(a, b)
	}
	return Compose(s.dir, a, b)
}

// Distance validates both names, evaluates the request and renders the report
func (s *Service) Distance(nameA, nameB string) (string, error) {
	runID := uuid.NewString()
	log := s.logger.With(
		zap.String("run_id", runID),
		zap.String("style", string(s.style)),
		zap.String("start", nameA),
		zap.String("dest", nameB),
	)

	out, hit, err := s.memo.GetOrLoad(requestKey{a: nameA, b: nameB}, func() (string, error) {
		return s.distance(nameA, nameB)
	})
	if err != nil {
		log.Warn("distance request failed", zap.Error(err))
		return "", err
	}

	log.Debug("distance request served", zap.Bool("cache_hit", hit))
	return out, nil
}

func (s *Service) distance(nameA, nameB string) (string, error) {
	a, err := location.NewCity(nameA)
	if err != nil {
		return "", fmt.Errorf("start city: %w", err)
	}
	b, err := location.NewCity(nameB)
	if err != nil {
		return "", fmt.Errorf("destination city: %w", err)
	}

	result, err := s.Evaluate(a, b)
	if err != nil {
		return "", err
	}
	return s.renderer.Report(result.Report())
}

// Nearest renders up to limit mapped places closest to the named city
func (s *Service) Nearest(name string, limit int) (string, error) {
	city, err := location.NewCity(name)
	if err != nil {
		return "", err
	}
	origin, err := s.dir.Lookup(city)
	if err != nil {
		s.logger.Warn("nearest lookup failed", zap.String("city", name), zap.Error(err))
		return "", err
	}

	matches := s.dir.Nearest(origin, limit)
	rows := make([]models.NearbyPlace, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, models.NearbyPlace{
			PlaceView:      placeView(m.Place),
			DistanceMeters: models.Decimal(m.Distance),
			DistanceMiles:  models.Decimal(location.MetersToFeet(m.Distance).Miles()),
		})
	}

	s.logger.Debug("nearest places computed", zap.String("city", name), zap.Int("count", len(rows)))
	return s.renderer.Nearby(placeView(origin), rows)
}

// CacheStats reports memo cache hits and misses
func (s *Service) CacheStats() cache.Stats {
	return s.memo.Stats()
}

// Close stops the memo cache sweeper
func (s *Service) Close() {
	s.memo.Close()
}
