// Package threshold implements adaptive, tile-based binarization of a
// grayscale image into dual white/black packed binary images.
//
// # Algorithm
//
// The image is divided into tilesize x tilesize tiles. Each tile's pixel
// min and max are computed, then blurred by taking the min of the 3x3
// neighboring tile-mins and the max of the 3x3 neighboring tile-maxes
// (a min/max box filter, not an average), with tile coordinates clamped
// to the valid range at the image border. A pixel is classified as
// ambiguous (neither white nor black) when its tile's blurred max-min
// spread is below MinDiff; otherwise it's white if it exceeds the
// tile's midpoint and black otherwise.
package threshold
