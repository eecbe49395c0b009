package calc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) EvalFile(path string) (Result, error) {
	args := m.Called(path)
	return args.Get(0).(Result), args.Error(1)
}

func (m *mockEngine) EvalSource(source []byte) (Result, error) {
	args := m.Called(source)
	return args.Get(0).(Result), args.Error(1)
}

func setupMockEngine(expected Result, filePath string) *mockEngine {
	engine := new(mockEngine)
	engine.On("EvalFile", filePath).Return(expected, nil)
	return engine
}

func setupSourceMockEngine(expected Result, content []byte) *mockEngine {
	engine := new(mockEngine)
	engine.On("EvalSource", content).Return(expected, nil)
	return engine
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expected := Result{
		Filename: "answer.expr",
		Expr:     "(6 * 7)",
		Value:    42,
	}
	engine := setupMockEngine(expected, "answer.expr")

	result, err := ProcessFile(engine, "answer.expr")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	engine.AssertExpectations(t)
}

func TestProcessSource(t *testing.T) {
	t.Parallel()
	expected := Result{
		Expr:  "(2 * 3)",
		Value: 6,
	}
	engine := setupSourceMockEngine(expected, []byte("2 * 3"))

	result, err := ProcessSource(engine, []byte("2 * 3"))

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	engine.AssertExpectations(t)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	tempDir, err := os.MkdirTemp("", "test")
	assert.NoError(t, err)
	defer os.RemoveAll(tempDir)

	paths := createTempFiles(t, tempDir, "one.expr", "two.expr")

	expected := []Result{
		{Filename: paths[0], Expr: "(2 * 3)", Value: 6},
		{Filename: paths[1], Expr: "(3 * 4)", Value: 12},
	}

	engine := new(mockEngine)
	engine.On("EvalFile", paths[0]).Return(expected[0], nil)
	engine.On("EvalFile", paths[1]).Return(expected[1], nil)

	results, err := ProcessPath(ctx, logger, engine, tempDir, ProcessFile)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Contains(t, results, expected[0])
	assert.Contains(t, results, expected[1])
	engine.AssertExpectations(t)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	tempDir, err := os.MkdirTemp("", "test")
	assert.NoError(t, err)
	defer os.RemoveAll(tempDir)

	paths := createTempFiles(t, tempDir, "one.expr", "two.expr")

	expected := []Result{
		{Filename: paths[0], Expr: "(2 * 3)", Value: 6},
		{Filename: paths[1], Expr: "(3 * 4)", Value: 12},
	}

	engine := new(mockEngine)
	engine.On("EvalFile", paths[0]).Return(expected[0], nil)
	engine.On("EvalFile", paths[1]).Return(expected[1], nil)

	results, err := ProcessFiles(ctx, logger, engine, paths, ProcessFile)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Contains(t, results, expected[0])
	assert.Contains(t, results, expected[1])
	engine.AssertExpectations(t)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	ctx := context.Background()

	expected := []Result{
		{Expr: "(2 * 3)", Value: 6},
		{Expr: "(3 * 4)", Value: 12},
	}

	engine := new(mockEngine)
	engine.On("EvalSource", []byte("2 * 3")).Return(expected[0], nil)
	engine.On("EvalSource", []byte("3 * 4")).Return(expected[1], nil)

	results, err := ProcessSources(ctx, logger, engine, [][]byte{[]byte("2 * 3"), []byte("3 * 4")}, ProcessSource)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Contains(t, results, expected[0])
	assert.Contains(t, results, expected[1])
	engine.AssertExpectations(t)
}

func TestProcessSourcesStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	engine := new(mockEngine)
	engine.On("EvalSource", []byte("2 *")).Return(Result{}, assert.AnError)

	results, err := ProcessSources(context.Background(), zap.NewNop(), engine, [][]byte{[]byte("2 *"), []byte("3 * 4")}, ProcessSource)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, results)
	engine.AssertExpectations(t)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("scratch.expr"))
	assert.True(t, hasDesiredExtension(filepath.Join("a", "b", "scratch.expr")))
	assert.False(t, hasDesiredExtension("scratch.txt"))
	assert.False(t, hasDesiredExtension("scratch"))
}

func createTempFiles(t *testing.T, dir string, fileNames ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		filePath := filepath.Join(dir, fileName)
		require.NoError(t, os.WriteFile(filePath, []byte("0"), 0o644))
		paths = append(paths, filePath)
	}
	return paths
}
