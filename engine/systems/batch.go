package systems

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/icemath/engine/core"
)

// BatchCall is one [[call]] entry of a batch file.
type BatchCall struct {
	ID   string    `toml:"id"`
	Fn   string    `toml:"fn"`
	Args []float64 `toml:"args"`
}

// BatchFile is a named list of calls, evaluated in parallel and reported in
// file order.
type BatchFile struct {
	Name  string      `toml:"name"`
	Calls []BatchCall `toml:"call"`
}

// CallResult is the outcome of one call. Error is empty on success.
type CallResult struct {
	ID        string    `toml:"id"`
	Fn        string    `toml:"fn"`
	Args      []float64 `toml:"args"`
	Value     float64   `toml:"value"`
	Error     string    `toml:"error,omitempty"`
	ElapsedMS float64   `toml:"elapsed_ms"`
}

// BatchResult is written back as TOML by the batch command.
type BatchResult struct {
	RunID     string       `toml:"run_id"`
	Name      string       `toml:"name"`
	StartedAt time.Time    `toml:"started_at"`
	ElapsedMS float64      `toml:"elapsed_ms"`
	Failures  int          `toml:"failures"`
	Results   []CallResult `toml:"result"`
}

// ParseBatch decodes a batch file. Unknown keys are rejected and calls
// without an id are numbered from 1.
func ParseBatch(data []byte) (*BatchFile, error) {
	var file BatchFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}
	for i := range file.Calls {
		if file.Calls[i].Fn == "" {
			return nil, fmt.Errorf("call %d has no fn", i+1)
		}
		if file.Calls[i].ID == "" {
			file.Calls[i].ID = fmt.Sprintf("call-%d", i+1)
		}
	}
	return &file, nil
}

// LoadBatch reads and decodes the batch file at path. An empty name is
// replaced by the file name.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := ParseBatch(data)
	if err != nil {
		return nil, fmt.Errorf("decoding batch %s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = filepath.Base(path)
	}
	return file, nil
}

// Evaluator runs batch files against a registry and records timings.
type Evaluator struct {
	Registry *Registry
	Metrics  *core.Metrics
}

func NewEvaluator(registry *Registry) *Evaluator {
	return &Evaluator{
		Registry: registry,
		Metrics:  core.NewMetrics(),
	}
}

/**
 * @brief Evaluates every call of file on the job system and waits for all of
 * them. Results keep the order of the file. Once ctx is done no further calls
 * are submitted; those calls carry the context error and RunBatch returns it
 * together with the partial result.
 */
func (e *Evaluator) RunBatch(ctx context.Context, file *BatchFile, js *JobSystem) (*BatchResult, error) {
	runID := uuid.NewString()
	logger := core.Logger("run", runID, "batch", file.Name)
	logger.Info("batch started", "calls", len(file.Calls), "workers", js.Workers())

	clock := core.NewClock()
	clock.Start()

	result := &BatchResult{
		RunID:     runID,
		Name:      file.Name,
		StartedAt: time.Now().UTC().Truncate(time.Millisecond),
		Results:   make([]CallResult, len(file.Calls)),
	}

	var wg sync.WaitGroup
	var ctxErr error
	for i, call := range file.Calls {
		res := &result.Results[i]
		res.ID, res.Fn, res.Args = call.ID, call.Fn, call.Args

		if ctxErr = ctx.Err(); ctxErr != nil {
			res.Error = ctxErr.Error()
			continue
		}

		wg.Add(1)
		callClock := core.NewClock()
		js.Submit(JobTask{
			Run: func() error {
				callClock.Start()
				v, err := e.Registry.Call(call.Fn, call.Args)
				callClock.Update()
				callClock.Stop()
				res.Value = v
				res.ElapsedMS = callClock.Elapsed() * 1000.0
				if e.Metrics != nil {
					e.Metrics.Update(callClock.Elapsed(), err != nil)
				}
				return err
			},
			OnComplete: func() {
				wg.Done()
			},
			OnFailure: func(err error) {
				res.Error = err.Error()
				wg.Done()
			},
		})
	}
	wg.Wait()

	clock.Update()
	clock.Stop()
	result.ElapsedMS = clock.Elapsed() * 1000.0
	for _, r := range result.Results {
		if r.Error != "" {
			result.Failures++
		}
	}

	logger.Info("batch finished", "failures", result.Failures, "elapsed", clock.ElapsedDuration())
	if ctxErr != nil {
		logger.Warn("batch interrupted", "err", ctxErr)
		return result, ctxErr
	}
	return result, nil
}

// Encode writes r as TOML.
func (r *BatchResult) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(r)
}

// Save writes r as TOML to path, creating parent directories.
func (r *BatchResult) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
