package store

// ImageRecord describes one scanned image file. Path is the unique key.
// The (Size, ModifiedAt) pair defines the record's validity: if either
// differs from what is observed on disk, every derived field is stale and
// the file must be reprocessed.
type ImageRecord struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	CreatedAt   int64     `json:"createdAt"`
	ModifiedAt  int64     `json:"modifiedAt"`
	PHash       *string   `json:"phash,omitempty"`
	ContentHash *string   `json:"contentHash,omitempty"`
	Meta        *Metadata `json:"meta,omitempty"`
}

// Metadata holds the embedded image metadata the scanner cares about.
// Every field may be absent independently.
type Metadata struct {
	// Date is the capture time as a Unix timestamp, preferring the
	// original-capture tag over the generic save timestamp.
	Date   *int64  `json:"date,omitempty"`
	Make   *string `json:"make,omitempty"`
	Model  *string `json:"model,omitempty"`
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
}
