package server

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/pipeline"
)

// loadedImage is one cache entry: the grayscale buffer pipeline.load
// decoded, plus the most recent pipeline.run result (nil until run).
type loadedImage struct {
	gray *binimage.GrayImage
	last *pipeline.Result
}

// ImageCache provides thread-safe caching of decoded grayscale images
// and their most recent pipeline run, keyed by the path they were
// loaded from — the same RWMutex-guarded shape as the teacher's
// imaging.ImageCache, generalized to hold pipeline state instead of a
// raw image.Image.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*loadedImage
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]*loadedImage)}
}

// Load decodes the image at path (PNG/JPEG via disintegration/imaging),
// converts it to 8-bit grayscale, and stores it under path, overwriting
// any previous entry.
func (c *ImageCache) Load(path string) (*binimage.GrayImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("server: opening image: %w", err)
	}

	gray, err := toGrayImage(img)
	if err != nil {
		return nil, fmt.Errorf("server: converting to grayscale: %w", err)
	}

	c.mu.Lock()
	c.images[path] = &loadedImage{gray: gray}
	c.mu.Unlock()

	return gray, nil
}

// Get returns the cached grayscale image for path, if any.
func (c *ImageCache) Get(path string) (*binimage.GrayImage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.images[path]
	if !ok {
		return nil, false
	}
	return entry.gray, true
}

// StoreResult remembers the most recent pipeline run for path.
func (c *ImageCache) StoreResult(path string, res *pipeline.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.images[path]
	if !ok {
		return
	}
	entry.last = res
}

// GetResult returns the most recent pipeline run stored for path, if
// any.
func (c *ImageCache) GetResult(path string) (*pipeline.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.images[path]
	if !ok || entry.last == nil {
		return nil, false
	}
	return entry.last, true
}

func toGrayImage(img image.Image) (*binimage.GrayImage, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	gray, err := binimage.NewGrayImage(width, height)
	if err != nil {
		return nil, err
	}
	grayImg := imaging.Grayscale(img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := grayImg.At(b.Min.X+x, b.Min.Y+y)
			r, _, _, _ := c.RGBA()
			gray.Set(x, y, uint8(r>>8))
		}
	}
	return gray, nil
}
