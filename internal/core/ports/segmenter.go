package ports

// Segmenter splits raw document text into an ordered sequence of sentences.
//
//go:generate mockgen -source=segmenter.go -destination=mocks/mock_segmenter.go -package=mocks
type Segmenter interface {
	// Segment returns the sentences of text in document order. Segmentation
	// is deterministic: identical text yields identical sentences.
	Segment(text string) ([]string, error)
}
