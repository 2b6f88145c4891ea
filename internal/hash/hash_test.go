package hash

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// encodePNG renders img to PNG bytes.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// gradient builds a 9x8 grayscale image whose intensity changes by step
// from one column to the next. A positive step makes every right neighbor
// brighter; a negative step makes every left neighbor brighter.
func gradient(start, step int) image.Image {
	img := image.NewGray(image.Rect(0, 0, 9, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 9; x++ {
			v := start + x*step
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

func TestContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "empty input",
			data: nil,
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "known vector",
			data: []byte("abc"),
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Content(tt.data); got != tt.want {
				t.Errorf("Content() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDifferenceDeterministic(t *testing.T) {
	t.Parallel()

	data := encodePNG(t, gradient(10, 25))

	first, err := Difference(data)
	if err != nil {
		t.Fatalf("Difference() error: %v", err)
	}
	second, err := Difference(data)
	if err != nil {
		t.Fatalf("Difference() error: %v", err)
	}

	if first != second {
		t.Errorf("Difference() not deterministic: %s vs %s", first, second)
	}
	if len(first) != 16 {
		t.Errorf("Difference() length = %d, want 16", len(first))
	}
	if first != strings.ToLower(first) {
		t.Errorf("Difference() = %s, want lowercase hex", first)
	}
}

func TestDifferenceBitPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		img  image.Image
		want string
	}{
		{
			// Intensity strictly falls left to right, so every left pixel
			// wins every comparison.
			name: "descending gradient sets every bit",
			img:  gradient(200, -20),
			want: "ffffffffffffffff",
		},
		{
			name: "ascending gradient clears every bit",
			img:  gradient(10, 20),
			want: "0000000000000000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Difference(encodePNG(t, tt.img))
			if err != nil {
				t.Fatalf("Difference() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Difference() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDifferenceRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Difference([]byte("definitely not an image")); err == nil {
		t.Error("Difference() on garbage bytes should fail")
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical hashes", "0123456789abcdef", "0123456789abcdef", 0},
		{"five bits apart", "0000000000000000", "000000000000001f", 5},
		{"all bits apart", "0000000000000000", "ffffffffffffffff", 64},
		{"length mismatch", "0000000000000000", "0000", MaxDistance},
		{"invalid hex", "zzzzzzzzzzzzzzzz", "0000000000000000", MaxDistance},
		{"both empty", "", "", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Hamming distance is symmetric.
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestDistanceReflexive(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"0000000000000000", "ffffffffffffffff", "a5a5a5a5a5a5a5a5"} {
		if got := Distance(h, h); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", h, h, got)
		}
	}
}
