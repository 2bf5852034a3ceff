package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ironsheep/simdtag-go/internal/ccl"
	"github.com/ironsheep/simdtag-go/internal/cluster"
	"github.com/ironsheep/simdtag-go/internal/quadfit"
	"github.com/ironsheep/simdtag-go/internal/threshold"
)

// ErrInvalidDimensions is returned when Run is given an image whose
// width or height falls outside [binimage.MinDimension,
// binimage.MaxDimension].
var ErrInvalidDimensions = errors.New("pipeline: width and height must be in [2, 2047]")

// ErrAllocationFailed wraps a stage's allocation failure with pipeline
// context.
var ErrAllocationFailed = errors.New("pipeline: stage allocation failed")

// ErrStrideMismatch is returned when two buffers expected to share
// dimensions do not.
var ErrStrideMismatch = errors.New("pipeline: stride mismatch between stage buffers")

// Config aggregates every stage's tunables, per spec.md's external
// interface table.
type Config struct {
	ThresholdTileSize     int `json:"threshold_tile_size"`
	ThresholdMinDiff      int `json:"threshold_min_diff"`
	MinClusterPixels      int `json:"min_cluster_pixels"`
	MaxClusterMultiplier  int `json:"max_cluster_multiplier"`
	InitialBucketCapacity int `json:"initial_bucket_capacity"`
	MinComponentPixels    int `json:"min_component_pixels"`
}

// DefaultConfig returns the named defaults from spec.md's configuration
// table.
func DefaultConfig() Config {
	return Config{
		ThresholdTileSize:     4,
		ThresholdMinDiff:      5,
		MinClusterPixels:      24,
		MaxClusterMultiplier:  2,
		InitialBucketCapacity: 2048,
		MinComponentPixels:    25,
	}
}

// Validate reports whether every field holds a usable value.
func (c Config) Validate() error {
	if c.ThresholdTileSize <= 0 {
		return fmt.Errorf("pipeline: ThresholdTileSize must be positive, got %d", c.ThresholdTileSize)
	}
	if c.ThresholdMinDiff < 0 {
		return fmt.Errorf("pipeline: ThresholdMinDiff must be non-negative, got %d", c.ThresholdMinDiff)
	}
	if c.MinClusterPixels <= 0 {
		return fmt.Errorf("pipeline: MinClusterPixels must be positive, got %d", c.MinClusterPixels)
	}
	if c.MaxClusterMultiplier <= 0 {
		return fmt.Errorf("pipeline: MaxClusterMultiplier must be positive, got %d", c.MaxClusterMultiplier)
	}
	if c.InitialBucketCapacity <= 0 {
		return fmt.Errorf("pipeline: InitialBucketCapacity must be positive, got %d", c.InitialBucketCapacity)
	}
	if c.MinComponentPixels <= 0 {
		return fmt.Errorf("pipeline: MinComponentPixels must be positive, got %d", c.MinComponentPixels)
	}
	return nil
}

// LoadConfigFile reads Config from a JSON file, falling back to
// DefaultConfig for any field the file omits.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: reading config file: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parsing config file: %w", err)
	}
	return cfg, nil
}

// envOverrides maps each SIMDTAG_* environment variable to the Config
// field it overrides.
var envOverrides = []struct {
	name string
	set  func(*Config, int)
}{
	{"SIMDTAG_THRESHOLD_TILE_SIZE", func(c *Config, v int) { c.ThresholdTileSize = v }},
	{"SIMDTAG_THRESHOLD_MIN_DIFF", func(c *Config, v int) { c.ThresholdMinDiff = v }},
	{"SIMDTAG_MIN_CLUSTER_PIXELS", func(c *Config, v int) { c.MinClusterPixels = v }},
	{"SIMDTAG_MAX_CLUSTER_MULTIPLIER", func(c *Config, v int) { c.MaxClusterMultiplier = v }},
	{"SIMDTAG_INITIAL_BUCKET_CAPACITY", func(c *Config, v int) { c.InitialBucketCapacity = v }},
	{"SIMDTAG_MIN_COMPONENT_PIXELS", func(c *Config, v int) { c.MinComponentPixels = v }},
}

// ApplyEnvOverrides overrides cfg's fields from SIMDTAG_* environment
// variables that are set, leaving unset fields untouched.
func ApplyEnvOverrides(cfg Config) (Config, error) {
	for _, o := range envOverrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("pipeline: parsing %s: %w", o.name, err)
		}
		o.set(&cfg, v)
	}
	return cfg, nil
}

func (c Config) thresholdOptions() threshold.Options {
	return threshold.Options{TileSize: c.ThresholdTileSize, MinDiff: c.ThresholdMinDiff}
}

func (c Config) cclOptions() ccl.Options {
	return ccl.Options{InitialBucketCapacity: c.InitialBucketCapacity, MinComponentPixels: c.MinComponentPixels}
}

func (c Config) clusterOptions() cluster.Options {
	return cluster.Options{InitialBucketCapacity: c.InitialBucketCapacity}
}

func (c Config) quadfitOptions() quadfit.Options {
	return quadfit.Options{
		MinClusterPixels:     c.MinClusterPixels,
		MaxClusterMultiplier: c.MaxClusterMultiplier,
		MinBoundingBoxArea:   quadfit.DefaultOptions().MinBoundingBoxArea,
	}
}
