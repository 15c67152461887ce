package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gutengrep/internal/adapters/loader"
	"gutengrep/internal/core/domain"
	"gutengrep/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *loader.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return loader.New(log)
}

func TestLoader_Glob(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.md"} {
		err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o600)
		require.NoError(t, err)
	}

	l := newLoader(t)

	files, err := l.Glob(filepath.Join(tmpDir, "*.txt"))
	require.NoError(t, err)

	// Lexical order, stable across runs.
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.txt"),
		filepath.Join(tmpDir, "b.txt"),
	}, files)
}

func TestLoader_Glob_NoMatches(t *testing.T) {
	t.Parallel()

	l := newLoader(t)

	files, err := l.Glob(filepath.Join(t.TempDir(), "*.txt"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoader_Glob_BadPattern(t *testing.T) {
	t.Parallel()

	l := newLoader(t)

	_, err := l.Glob("[")
	assert.Error(t, err)
}

func TestLoader_Read(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "book.txt")

	// 0x93/0x94 are Windows-1252 curly quotes, 0x85 is an ellipsis.
	raw := []byte("He said \x93hello\x94\x85 and left.")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	l := newLoader(t)

	doc, err := l.Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "He said “hello”… and left.", doc.Text)
}

func TestLoader_Read_DecodeFailure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.txt")

	// 0x81 has no Windows-1252 assignment.
	require.NoError(t, os.WriteFile(path, []byte("good text \x81 bad byte"), 0o600))

	l := newLoader(t)

	_, err := l.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
}

func TestLoader_Read_MissingFile(t *testing.T) {
	t.Parallel()

	l := newLoader(t)

	_, err := l.Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDecodeFailed)
}
