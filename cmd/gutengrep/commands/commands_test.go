package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gutengrep/cmd/gutengrep/commands"
	"gutengrep/internal/app"
	"gutengrep/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, pattern, inspec string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, pattern, inspec string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, pattern, inspec, opts)
	}
	return nil
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPattern, capturedInspec string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, pattern, inspec string, opts app.RunOptions) error {
				capturedPattern = pattern
				capturedInspec = inspec
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{`\bwhale\b`, "books/*.txt", "--ignore-case", "--sort", "--cache", "--correct"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, `\bwhale\b`, capturedPattern)
		assert.Equal(t, "books/*.txt", capturedInspec)
		assert.True(t, capturedOpts.IgnoreCase)
		assert.True(t, capturedOpts.Sort)
		assert.True(t, capturedOpts.Cache)
		assert.True(t, capturedOpts.Correct)
	})

	t.Run("leaves outfile empty unless flag is set", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"whale", "books/*.txt"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedOpts.Outfile)
	})

	t.Run("forwards outfile when flag is set", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"whale", "books/*.txt", "-o", "matches.log"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "matches.log", capturedOpts.Outfile)
	})

	t.Run("accepts a pattern without an inspec", func(t *testing.T) {
		var capturedInspec string

		mock := &mockApp{
			runFunc: func(_ context.Context, _, inspec string, _ app.RunOptions) error {
				capturedInspec = inspec
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"whale", "--cache"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedInspec)
	})

	t.Run("rejects missing pattern", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"whale", "books/*.txt"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
