package kmedoids

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
)

// Config controls k-medoids construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the number of medoids. Must satisfy 1 <= K <= number of points.
	// Default: 2.
	K int

	// Labels optionally names the clusters. When set it must hold exactly K
	// distinct names; the i-th name labels the i-th medoid id. When empty,
	// clusters are labelled by their zero-based position.
	Labels []string

	// Metric is the distance function used for every assignment and cost
	// evaluation. Default: EuclideanMetric.
	Metric DistanceMetric

	// Seed seeds the PCG source used to sample the initial medoids.
	// Ignored when Source is set.
	Seed uint64

	// Source overrides the random source used to sample the initial medoids.
	Source rand.Source

	// Workers controls the number of goroutines used by ReassignAll,
	// SwapCost and BestSwap. 0 or 1 runs on the calling goroutine;
	// a negative value means runtime.NumCPU(). Default: 1.
	Workers int

	// CoordinateNames names the coordinate columns of Results. When set it
	// must match the dimensionality of the points. Default: x0, x1, ...
	CoordinateNames []string

	// Logger receives debug events. Default: discard.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		K:       2,
		Metric:  EuclideanMetric{},
		Workers: 1,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	switch {
	case cfg.Workers == 0:
		cfg.Workers = 1
	case cfg.Workers < 0:
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewPCG(cfg.Seed, cfg.Seed^pcgStream)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// validateConfig checks cfg against the points it will be applied to.
// Checks run in a fixed order so that a label mismatch is always reported
// before anything else.
func validateConfig(cfg *Config, points []*Point) error {
	if len(cfg.Labels) > 0 && len(cfg.Labels) != cfg.K {
		return fmt.Errorf("kmedoids: %d labels supplied for K = %d: %w", len(cfg.Labels), cfg.K, ErrConfiguration)
	}
	if cfg.K <= 0 {
		return fmt.Errorf("kmedoids: K must be >= 1, got %d: %w", cfg.K, ErrInsufficientPoints)
	}
	if cfg.K > len(points) {
		return fmt.Errorf("kmedoids: K = %d exceeds %d points: %w", cfg.K, len(points), ErrInsufficientPoints)
	}

	seenLabels := make(map[string]struct{}, len(cfg.Labels))
	for _, l := range cfg.Labels {
		if _, dup := seenLabels[l]; dup {
			return fmt.Errorf("kmedoids: duplicate label %q: %w", l, ErrConfiguration)
		}
		seenLabels[l] = struct{}{}
	}

	if points[0] == nil {
		return fmt.Errorf("kmedoids: nil point at index 0: %w", ErrConfiguration)
	}
	dims := points[0].Dims()
	seen := make(map[int]struct{}, len(points))
	for i, p := range points {
		if p == nil {
			return fmt.Errorf("kmedoids: nil point at index %d: %w", i, ErrConfiguration)
		}
		if p.Dims() != dims {
			return fmt.Errorf("kmedoids: point %d has %d dimensions, expected %d: %w", p.id, p.Dims(), dims, ErrConfiguration)
		}
		if _, dup := seen[p.id]; dup {
			return fmt.Errorf("kmedoids: duplicate point id %d: %w", p.id, ErrConfiguration)
		}
		seen[p.id] = struct{}{}
	}

	if len(cfg.CoordinateNames) > 0 && len(cfg.CoordinateNames) != dims {
		return fmt.Errorf("kmedoids: %d coordinate names for %d dimensions: %w", len(cfg.CoordinateNames), dims, ErrConfiguration)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("kmedoids: Workers must be >= 1 after defaulting, got %d: %w", cfg.Workers, ErrConfiguration)
	}
	return nil
}
