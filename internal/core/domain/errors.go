package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInput is returned when neither an inspec nor --cache is supplied.
	ErrNoInput = zerr.New("inspec and/or cache arguments needed")

	// ErrNoFilesMatched is returned when the inspec expands to zero files.
	ErrNoFilesMatched = zerr.New("no input files found matching inspec")

	// ErrInvalidPattern is returned when the regex pattern does not compile.
	ErrInvalidPattern = zerr.New("invalid regular expression")

	// ErrFileReadFailed is returned when an input file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read input file")

	// ErrDecodeFailed is returned when an input file is not valid
	// Windows-1252. The file is skipped; the run continues.
	ErrDecodeFailed = zerr.New("file is not valid Windows-1252")

	// ErrModelLoadFailed is returned when the Punkt training data cannot be
	// loaded or parsed.
	ErrModelLoadFailed = zerr.New("failed to load sentence tokenizer model")

	// ErrCacheReadFailed is returned when an existing cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read sentence cache")

	// ErrCacheDecodeFailed is returned when the cache file cannot be decoded.
	// A corrupt cache fails the run rather than being silently recomputed.
	ErrCacheDecodeFailed = zerr.New("failed to decode sentence cache")

	// ErrCacheVersionMismatch is returned when the cache was written by an
	// incompatible format version.
	ErrCacheVersionMismatch = zerr.New("sentence cache format version mismatch")

	// ErrCacheEncodeFailed is returned when the cache record cannot be encoded.
	ErrCacheEncodeFailed = zerr.New("failed to encode sentence cache")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write sentence cache")

	// ErrReportWriteFailed is returned when an output file cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write output file")

	// ErrConfigReadFailed is returned when gutengrep.yaml exists but cannot
	// be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when gutengrep.yaml cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
