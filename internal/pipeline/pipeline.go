package pipeline

import (
	"context"
	"fmt"

	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/ccl"
	"github.com/ironsheep/simdtag-go/internal/cluster"
	"github.com/ironsheep/simdtag-go/internal/quadfit"
	"github.com/ironsheep/simdtag-go/internal/threshold"
)

// Result holds every stage's output for one frame, so a caller (or the
// inspection server) can report per-stage statistics without re-running
// the pipeline.
type Result struct {
	White, Black *binimage.PackedBinaryImage
	Labeling     *ccl.DualLabeling
	Buckets      cluster.Buckets
	Quads        []quadfit.Quad
}

// Pipeline runs the four detector stages against one grayscale image at
// a time. A Pipeline value holds no mutable state and is safe to reuse
// across frames or to run concurrently from multiple goroutines.
type Pipeline struct {
	cfg Config
}

// New validates cfg and returns a Pipeline configured to use it.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg}, nil
}

// Run executes threshold -> ccl -> cluster -> quadfit against gray,
// checking ctx between stages so a caller can cancel a batch in
// progress.
func (p *Pipeline) Run(ctx context.Context, gray *binimage.GrayImage) (*Result, error) {
	if gray.Width < binimage.MinDimension || gray.Width > binimage.MaxDimension ||
		gray.Height < binimage.MinDimension || gray.Height > binimage.MaxDimension {
		return nil, ErrInvalidDimensions
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	white, black, err := threshold.Adaptive(gray, p.cfg.thresholdOptions())
	if err != nil {
		return nil, fmt.Errorf("pipeline: threshold stage: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labeling, err := ccl.LabelDual(white, black, p.cfg.cclOptions())
	if err != nil {
		return nil, fmt.Errorf("pipeline: ccl stage: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buckets := cluster.Extract(labeling, p.cfg.clusterOptions())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quads, err := quadfit.Fit(buckets, gray.Width, gray.Height, p.cfg.quadfitOptions())
	if err != nil {
		return nil, fmt.Errorf("pipeline: quadfit stage: %w", err)
	}

	return &Result{White: white, Black: black, Labeling: labeling, Buckets: buckets, Quads: quads}, nil
}
