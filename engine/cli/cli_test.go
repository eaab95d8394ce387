package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/icemath/engine/core"
)

// run executes the command tree with a config path that does not exist, so
// every test starts from the defaults.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "sqrt", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "sqrt(4) = 2")

	out, err = run(t, "eval", "binomial", "52", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "= 2598960")

	out, err = run(t, "eval", "abs", "-3")
	require.NoError(t, err)
	assert.Contains(t, out, "= 3")
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "nope", "1")
	assert.ErrorIs(t, err, core.ErrUnknownFunction)

	_, err = run(t, "eval", "sin", "1", "2")
	assert.ErrorIs(t, err, core.ErrArity)

	_, err = run(t, "eval", "sin", "one")
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = run(t, "eval", "log", "-1")
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestFuncs(t *testing.T) {
	out, err := run(t, "funcs")
	require.NoError(t, err)
	for _, name := range []string{"sin", "sqrt", "pow", "fib", "amicable", "lerp", "rand"} {
		assert.Contains(t, out, name)
	}
	assert.Less(t, strings.Index(out, "0 argument(s)"), strings.Index(out, "1 argument(s)"))
}

func TestVerticesRect(t *testing.T) {
	out, err := run(t, "vertices", "rect", "--rect", "0,0,4,2")
	require.NoError(t, err)
	l := lines(out)
	require.Len(t, l, 5)
	assert.Contains(t, l[0], "4 vertices, 8 values")
	assert.Equal(t, "0, 0", l[1])
	assert.Equal(t, "4, 2", l[3])
}

func TestVerticesTransformed(t *testing.T) {
	out, err := run(t, "vertices", "point3d", "--points", "1,2,3", "--translate", "1,1,1", "--scale", "2,2,2")
	require.NoError(t, err)
	assert.Equal(t, "3, 5, 7", lines(out)[1])
}

func TestVerticesMesh(t *testing.T) {
	out, err := run(t, "vertices", "cube", "--size", "2", "--mesh")
	require.NoError(t, err)
	assert.Contains(t, out, "24 vertices, 12 triangles")

	_, err = run(t, "vertices", "circle", "--mesh")
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestVerticesErrors(t *testing.T) {
	_, err := run(t, "vertices", "hexagon")
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = run(t, "vertices", "line2d", "--points", "1,2,3")
	assert.ErrorIs(t, err, core.ErrArity)

	_, err = run(t, "vertices", "polygon", "--sides", "2")
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestRandSeeded(t *testing.T) {
	first, err := run(t, "rand", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	second, err := run(t, "rand", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, lines(first), 3)

	out, err := run(t, "rand", "--int", "--min", "1", "--max", "6", "-n", "50")
	require.NoError(t, err)
	for _, l := range lines(out) {
		assert.Contains(t, []string{"1", "2", "3", "4", "5", "6"}, l)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "cli"

[[call]]
fn = "sqrt"
args = [81]

[[call]]
fn = "fact"
args = [30]
`), 0o644))

	resultPath := filepath.Join(dir, "out", "result.toml")
	out, err := run(t, "batch", path, "--out", resultPath)
	require.NoError(t, err)
	assert.Contains(t, out, "cli (2 calls, 1 failed")
	assert.Contains(t, out, "sqrt(81) = 9")
	assert.Contains(t, out, "overflow")

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id")
	assert.Contains(t, string(data), "failures = 1")
}

func TestBatchMissingFile(t *testing.T) {
	_, err := run(t, "batch", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icemath.toml")
	_, err := run(t, "config", "--write", path)
	require.NoError(t, err)

	cfg, err := core.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)

	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "circle_segments = 64")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icemath.toml")
	require.NoError(t, os.WriteFile(path, []byte("[jobs]\nworkers = 0\n"), 0o644))

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "funcs"})
	assert.ErrorIs(t, root.Execute(), core.ErrNoWorkers)
}

func TestCamera(t *testing.T) {
	out, err := run(t, "camera", "--move", "yaw=1.5707963267948966", "--move", "forward=2")
	require.NoError(t, err)
	assert.Contains(t, lines(out)[1], "position")
	assert.Contains(t, out, "view")
	assert.NotContains(t, out, "view-projection")

	out, err = run(t, "camera", "--perspective", "0.785,1.777,0.1,100")
	require.NoError(t, err)
	assert.Contains(t, out, "view-projection")

	_, err = run(t, "camera", "--move", "jump=1")
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = run(t, "camera", "--perspective", "1,2")
	assert.ErrorIs(t, err, core.ErrArity)
}
