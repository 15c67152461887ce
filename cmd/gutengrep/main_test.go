package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gutengrep/internal/app"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports/mocks"
)

func newTestProvider(t *testing.T) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mocks.NewMockLoader(ctrl),
		mocks.NewMockSegmenter(ctrl),
		mocks.NewMockCorpusCache(ctrl),
		mocks.NewMockReporter(ctrl),
		mockLogger,
		domain.BuiltinDefaults(),
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	return provider, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newTestProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockLogger := newTestProvider(t)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	stderr := new(bytes.Buffer)
	// A pattern without an inspec and without --cache has no input to scan.
	exitCode := run(context.Background(), []string{"whale"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
