// Package binimage implements packed binary and grayscale image buffers
// used by the thresholding and labeling stages of the fiducial pipeline.
//
// # Packed Layout
//
// A PackedBinaryImage stores one bit per pixel, packed into 64-bit words,
// row by row. Each row is padded to a double-word stride that is rounded
// up to a multiple of the SIMD lane count so the labeling stage can read
// pairs of rows without bounds checks. The allocated height is rounded up
// to an even number for the same reason; an odd-height image has its
// extra row zero-filled.
//
// # Thread Safety
//
// Values of this package's types are plain buffers with no internal
// synchronization. Callers that share an image across goroutines must
// provide their own locking.
package binimage
