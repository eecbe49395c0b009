package calc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()

	tempDir, err := os.MkdirTemp("", "calc_cancel")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	for i := range 10 {
		name := filepath.Join(tempDir, fmt.Sprintf("t%d.expr", i))
		require.NoError(t, os.WriteFile(name, []byte("2 * 3"), 0o644))
	}

	engine, err := New("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ProcessPath(ctx, nil, engine, tempDir, ProcessFile)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestProcessPathContinuesPastFailures(t *testing.T) {
	t.Parallel()

	tempDir, err := os.MkdirTemp("", "calc_fail")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "good.expr"), []byte("2 * 2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "bad.expr"), []byte("2 *"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), zap.NewNop(), engine, tempDir, ProcessFile)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Value)
}

func TestProcessPathOrdersResultsByFilename(t *testing.T) {
	t.Parallel()

	tempDir, err := os.MkdirTemp("", "calc_order")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	names := []string{"a.expr", "b.expr", "c.expr", "d.expr", "e.expr"}
	for i, name := range names {
		content := fmt.Sprintf("%d", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0o644))
	}

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), nil, engine, tempDir, ProcessFile)

	require.NoError(t, err)
	require.Len(t, results, len(names))
	for i, result := range results {
		assert.Equal(t, filepath.Join(tempDir, names[i]), result.Filename)
		assert.Equal(t, i+1, result.Value)
	}
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	tempDir, err := os.MkdirTemp("", "calc_single")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "answer.expr")
	require.NoError(t, os.WriteFile(path, []byte("6 * 7"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 42, results[0].Value)
}

func TestProcessPathIgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	tempDir, err := os.MkdirTemp("", "calc_ext")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 * 3"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	results, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessPathMissing(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessPath(context.Background(), nil, engine, filepath.Join(t.TempDir(), "nowhere"), ProcessFile)
	assert.Error(t, err)
}
