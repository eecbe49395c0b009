// Package calc evaluates expression files in batches: single files, in-memory
// sources, or whole directories fanned out across a bounded worker pool.
package calc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/gitter-badger/matryoshka/internal/exp"
	"github.com/gitter-badger/matryoshka/rec"
	"github.com/gitter-badger/matryoshka/treefmt"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const maxShowRecentFiles = 25

// Engine evaluates one expression source or file to a Result.
type Engine interface {
	EvalFile(path string) (Result, error)
	EvalSource(source []byte) (Result, error)
}

// Result is the outcome of evaluating a single expression.
type Result struct {
	Filename string `json:"filename,omitempty"`
	Expr     string `json:"expr"`
	Value    int    `json:"value"`
	Tree     string `json:"tree,omitempty"`
}

// Evaluator is the default Engine: it parses a source, resolves bindings
// against the configured variables, and folds the closed term to its value.
type Evaluator struct {
	vars map[string]int
	tree bool
}

// New builds the default Engine from the configuration file at
// configurationPath. An empty path yields an evaluator with no bindings.
func New(configurationPath string) (*Evaluator, error) {
	if configurationPath == "" {
		return &Evaluator{}, nil
	}

	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}

	return NewFromConfig(config), nil
}

// NewFromConfig builds an Engine from an already parsed configuration.
func NewFromConfig(config Config) *Evaluator {
	return &Evaluator{vars: config.Vars, tree: config.Tree}
}

// EvalFile reads and evaluates the expression file at path.
func (e *Evaluator) EvalFile(path string) (Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	result, err := e.EvalSource(source)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	result.Filename = path
	return result, nil
}

// EvalSource evaluates a single expression held in source.
func (e *Evaluator) EvalSource(source []byte) (Result, error) {
	term, err := exp.Parse(string(source))
	if err != nil {
		return Result{}, err
	}

	resolved, err := exp.Resolve(term, e.vars)
	if err != nil {
		return Result{}, err
	}

	value, err := exp.Eval(resolved, nil)
	if err != nil {
		return Result{}, err
	}

	result := Result{Expr: term.String(), Value: value}
	if e.tree {
		result.Tree = RenderTree(resolved)
	}
	return result, nil
}

// RenderTree draws resolved as a tree with every node annotated by the value
// of the subterm below it. The term must be closed, as Resolve leaves it.
func RenderTree(resolved exp.Exp) string {
	annotated := rec.Annotate(resolved, exp.Project, exp.Map[exp.Exp, exp.Attr[int]], exp.NewAttr[int], closedValue)
	tree := rec.AttrTree(annotated, exp.AttrValue, exp.AttrLayer, exp.Fold)
	label := func(a exp.Attr[int]) string { return exp.Describe[exp.Attr[int]](a.Layer) }
	return treefmt.Format(tree, label, "expression")
}

// closedValue reduces one layer of a closed term; only literals and products
// occur after Resolve.
func closedValue(l exp.ExpF[exp.Attr[int]]) int {
	switch v := l.(type) {
	case exp.NumF[exp.Attr[int]]:
		return v.N
	case exp.MulF[exp.Attr[int]]:
		return v.L.Value * v.R.Value
	}
	return 0
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources [][]byte,
	processor func(Engine, []byte) (Result, error),
) ([]Result, error) {
	var allResults []Result
	for i, source := range sources {
		result, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error evaluating source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, result)
	}

	return allResults, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor func(Engine, string) (Result, error),
) ([]Result, error) {
	var allResults []Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error evaluating path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor func(Engine, string) (Result, error),
) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var results []Result
	if info.IsDir() {
		var files []string
		err := filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}

		// mutex for recent files
		var recentFilesMutex sync.Mutex
		recentFiles := make([]string, maxShowRecentFiles)

		// make space for recent files
		for range maxShowRecentFiles + 1 {
			fmt.Println()
		}
		fmt.Printf("\033[%dA", maxShowRecentFiles+1)

		// channels for results and errors
		resultChan := make(chan Result, len(files))
		errorChan := make(chan error, len(files))

		// limit the number of workers
		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		// update recent files
		updateRecentFiles := func(filename string) {
			recentFilesMutex.Lock()
			defer recentFilesMutex.Unlock()

			// update the list
			for j := maxShowRecentFiles - 1; j > 0; j-- {
				recentFiles[j] = recentFiles[j-1]
			}
			recentFiles[0] = filename

			// move the cursor up
			fmt.Printf("\033[%dA", maxShowRecentFiles)

			// print the list
			for j := range recentFiles {
				if recentFiles[j] != "" {
					// \033[2k: clear the line
					// \r: move the cursor to the beginning of the line
					fmt.Printf("\033[2K\r%s\n", recentFiles[j])
				} else {
					fmt.Printf("\033[2K\r\n")
				}
			}
		}

		// for each file, run a goroutine
		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				sem <- struct{}{}
				go func(fp string) {
					defer func() { <-sem }()

					// show the start of file processing
					updateRecentFiles(filepath.Base(fp))

					fileResult, err := processor(engine, fp)
					if err != nil {
						if logger != nil {
							logger.Error("Error evaluating file", zap.String("file", fp), zap.Error(err))
						}
						errorChan <- err
					} else {
						resultChan <- fileResult
					}
					bar.Add(1)
				}(filePath)
			}
		}

		// collect all results; every worker sends exactly one message
		var failed int
		for range files {
			select {
			case <-errorChan:
				failed++
			case result := <-resultChan:
				results = append(results, result)
			}
		}
		if failed > 0 && logger != nil {
			logger.Warn("Some files failed to evaluate", zap.Int("failed", failed))
		}

		fmt.Println()
		sort.Slice(results, func(i, j int) bool { return results[i].Filename < results[j].Filename })
		return results, nil
	} else if hasDesiredExtension(path) {
		fileResult, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		results = append(results, fileResult)
	}

	return results, nil
}

func ProcessFile(engine Engine, filePath string) (Result, error) {
	return engine.EvalFile(filePath)
}

func ProcessSource(engine Engine, source []byte) (Result, error) {
	return engine.EvalSource(source)
}

var desiredExtensions = map[string]bool{
	".expr": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// Config drives the evaluator: named variable bindings seeding the outermost
// scope, and whether results carry a rendered value tree.
type Config struct {
	Name string         `yaml:"name"`
	Vars map[string]int `yaml:"vars"`
	Tree bool           `yaml:"tree"`
}

// LoadConfig parses the YAML configuration file at configurationPath.
func LoadConfig(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
