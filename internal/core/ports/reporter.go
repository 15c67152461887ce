package ports

// Reporter formats matched sentences and writes them to an output file.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Write formats each sentence as a word-wrapped block separated by
	// blank lines and writes the result to path as UTF-8.
	Write(path string, sentences []string) error
}
