// Package visualize renders pipeline intermediate results (threshold
// masks, label images, gradient clusters) as color overlays on the
// source grayscale image, for the inspection server's debug-image tool.
//
// Label colors are generated deterministically by walking the HCL color
// wheel with github.com/lucasb-eyer/go-colorful so that adjacent labels
// get visually distinct hues without a lookup table, and the colored
// overlay is composited onto the source image with
// github.com/anthonynsimon/bild/blend, generalizing the way the
// teacher's grid overlay drew directly onto a cloned RGBA buffer.
package visualize
