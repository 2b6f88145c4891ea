package processor

import (
	"bytes"
	"image"
	"strings"
	"sync"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"

	"dupescan/internal/store"
)

var registerParsers sync.Once

// extractMetadata pulls the capture date, camera make/model, and pixel
// dimensions out of the file's EXIF block. A file without EXIF (or with an
// unparseable block) yields nil; individual missing tags just leave their
// fields unset.
func extractMetadata(data []byte) *store.Metadata {
	registerParsers.Do(func() {
		exif.RegisterParsers(mknote.All...)
	})

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	meta := &store.Metadata{}

	// DateTime() prefers DateTimeOriginal (when the photo was taken) over
	// DateTime (when it was last saved or edited).
	if t, err := x.DateTime(); err == nil {
		ts := t.Unix()
		meta.Date = &ts
	}

	if v := tagString(x, exif.Make); v != "" {
		meta.Make = &v
	}
	if v := tagString(x, exif.Model); v != "" {
		meta.Model = &v
	}

	if w, err := tagInt(x, exif.PixelXDimension); err == nil {
		if h, err := tagInt(x, exif.PixelYDimension); err == nil {
			meta.Width = &w
			meta.Height = &h
		}
	}

	return meta
}

func tagString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	v, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func tagInt(x *exif.Exif, name exif.FieldName) (int, error) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}

// probeDimensions reads the pixel dimensions from the image header without
// decoding pixel data.
func probeDimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
