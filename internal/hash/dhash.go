package hash

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"math/bits"

	"github.com/disintegration/imaging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/tiff" // TIFF format support
	_ "golang.org/x/image/webp" // WebP format support
)

// dHash grid: 8 rows of 9 columns yield 8 adjacent-column comparisons per
// row, one bit each, for a 64-bit fingerprint.
const (
	dhashCols = 9
	dhashRows = 8
)

// MaxDistance is the distance reported for fingerprints that cannot be
// compared (length mismatch or undecodable hex). It never satisfies any
// similarity threshold.
const MaxDistance = math.MaxInt

// Difference computes the 64-bit difference hash of an encoded image as a
// 16-character lowercase hex string.
//
// The image is converted to grayscale and resized to exactly 9x8 with a
// Lanczos filter. For each row and each adjacent column pair, one bit is
// emitted: 1 if the left pixel is strictly brighter than the right one.
// Bits are packed row-major, left to right, top to bottom.
func Difference(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	small := imaging.Resize(imaging.Grayscale(img), dhashCols, dhashRows, imaging.Lanczos)

	var h uint64
	for row := 0; row < dhashRows; row++ {
		for col := 0; col < dhashCols-1; col++ {
			// Grayscale pixels have R = G = B; R is the intensity.
			left := small.NRGBAAt(col, row).R
			right := small.NRGBAAt(col+1, row).R
			h <<= 1
			if left > right {
				h |= 1
			}
		}
	}

	return fmt.Sprintf("%016x", h), nil
}

// Distance returns the Hamming distance between two hex-encoded
// fingerprints: the popcount of the bitwise XOR of their byte sequences.
// Fingerprints of different lengths are maximally dissimilar.
func Distance(a, b string) int {
	aBytes, errA := hex.DecodeString(a)
	bBytes, errB := hex.DecodeString(b)
	if errA != nil || errB != nil || len(aBytes) != len(bBytes) {
		return MaxDistance
	}

	d := 0
	for i := range aBytes {
		d += bits.OnesCount8(aBytes[i] ^ bBytes[i])
	}
	return d
}
