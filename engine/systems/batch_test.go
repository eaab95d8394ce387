package systems

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/icemath/engine/core"
)

const sampleBatch = `
name = "sample"

[[call]]
id = "root"
fn = "sqrt"
args = [81]

[[call]]
fn = "gcd"
args = [48, 18]

[[call]]
id = "bad"
fn = "log"
args = [-1]

[[call]]
id = "missing"
fn = "nope"
args = []
`

func TestParseBatch(t *testing.T) {
	file, err := ParseBatch([]byte(sampleBatch))
	require.NoError(t, err)
	assert.Equal(t, "sample", file.Name)
	require.Len(t, file.Calls, 4)
	assert.Equal(t, "call-2", file.Calls[1].ID)
	assert.Equal(t, []float64{48, 18}, file.Calls[1].Args)

	_, err = ParseBatch([]byte("[[call]]\nfn = \"sin\"\nargz = [1]\n"))
	assert.Error(t, err)

	_, err = ParseBatch([]byte("[[call]]\nargs = [1]\n"))
	assert.Error(t, err)
}

func TestLoadBatchDefaultsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[call]]\nfn = \"fib\"\nargs = [10]\n"), 0o644))

	file, err := LoadBatch(path)
	require.NoError(t, err)
	assert.Equal(t, "numbers.toml", file.Name)
}

func newTestJobSystem(t *testing.T) *JobSystem {
	t.Helper()
	js, err := NewJobSystem(4, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = js.Shutdown() })
	return js
}

func TestRunBatchKeepsFileOrder(t *testing.T) {
	file, err := ParseBatch([]byte(sampleBatch))
	require.NoError(t, err)

	e := NewEvaluator(NewRegistry())
	res, err := e.RunBatch(context.Background(), file, newTestJobSystem(t))
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "sample", res.Name)
	require.Len(t, res.Results, 4)
	assert.Equal(t, []string{"root", "call-2", "bad", "missing"}, []string{
		res.Results[0].ID, res.Results[1].ID, res.Results[2].ID, res.Results[3].ID,
	})
	assert.Equal(t, 9.0, res.Results[0].Value)
	assert.Empty(t, res.Results[0].Error)
	assert.Equal(t, 6.0, res.Results[1].Value)
	assert.Contains(t, res.Results[2].Error, core.ErrDomain.Error())
	assert.Contains(t, res.Results[3].Error, core.ErrUnknownFunction.Error())
	assert.Equal(t, 2, res.Failures)

	assert.Equal(t, uint64(4), e.Metrics.Calls())
	assert.Equal(t, uint64(2), e.Metrics.Failures())
}

func TestRunBatchManyCalls(t *testing.T) {
	file := &BatchFile{Name: "many"}
	for i := 0; i < 200; i++ {
		file.Calls = append(file.Calls, BatchCall{ID: "", Fn: "fib", Args: []float64{float64(i % 70)}})
	}

	e := NewEvaluator(NewRegistry())
	res, err := e.RunBatch(context.Background(), file, newTestJobSystem(t))
	require.NoError(t, err)
	assert.Zero(t, res.Failures)

	fib := []float64{0, 1}
	for len(fib) < 70 {
		fib = append(fib, fib[len(fib)-1]+fib[len(fib)-2])
	}
	for i, r := range res.Results {
		assert.Equal(t, fib[i%70], r.Value, "call %d", i)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	file, err := ParseBatch([]byte(sampleBatch))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEvaluator(NewRegistry())
	res, err := e.RunBatch(ctx, file, newTestJobSystem(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, res.Failures)
	assert.Zero(t, e.Metrics.Calls())
}

func TestBatchResultRoundTrip(t *testing.T) {
	file, err := ParseBatch([]byte(sampleBatch))
	require.NoError(t, err)
	res, err := NewEvaluator(NewRegistry()).RunBatch(context.Background(), file, newTestJobSystem(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "results.toml")
	require.NoError(t, res.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded BatchResult
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, res.RunID, decoded.RunID)
	assert.Equal(t, res.Failures, decoded.Failures)
	require.Len(t, decoded.Results, 4)
	assert.Equal(t, "bad", decoded.Results[2].ID)

	var buf bytes.Buffer
	require.NoError(t, res.Encode(&buf))
	assert.Contains(t, buf.String(), "[[result]]")
}
