package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(level),
	).Logger()
}

func runTest(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var o, e bytes.Buffer
	code = run(append([]string{`ratcalc`}, args...), &o, &e, testLogger)
	return code, o.String(), e.String()
}

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), `ratcalc.toml`)
	require.NoError(t, os.WriteFile(path, []byte(s), 0o600))
	return path
}

func TestRun(t *testing.T) {
	for _, tc := range [...]struct {
		Name   string
		Args   []string
		Stdout string
	}{
		{
			Name:   `parse`,
			Args:   []string{`parse`, `6/4`},
			Stdout: "ratio: 3/2\ndecimal: 1.500000\nexact: 1.5\nfloat: 1.5\n",
		},
		{
			Name:   `parse no exact`,
			Args:   []string{`--places`, `3`, `parse`, `2/3`},
			Stdout: "ratio: 2/3\ndecimal: 0.667\nfloat: 0.6666666666666666\n",
		},
		{
			Name:   `eval wrapping`,
			Args:   []string{`--type`, `int8`, `eval`, `100`, `+`, `100`},
			Stdout: "ratio: -56\ndecimal: -56.000000\nexact: -56\nfloat: -56\n",
		},
		{
			Name:   `eval checked`,
			Args:   []string{`--places`, `0`, `eval`, `--checked`, `1/2`, `*`, `4`},
			Stdout: "ratio: 2\ndecimal: 2\nexact: 2\nfloat: 2\n",
		},
		{
			Name:   `eval json`,
			Args:   []string{`--json`, `eval`, `1/4`, `+`, `1/4`},
			Stdout: `{"type":"int64","ratio":"1/2","numer":"1","denom":"2","decimal":"0.500000","exact":"0.5","float":0.5}` + "\n",
		},
		{
			Name:   `cmp`,
			Args:   []string{`cmp`, `1/3`, `2/6`},
			Stdout: "0\n",
		},
		{
			Name:   `cmp json`,
			Args:   []string{`--json`, `cmp`, `1/2`, `1/3`},
			Stdout: `{"cmp":1}` + "\n",
		},
		{
			Name:   `approx`,
			Args:   []string{`--max-iterations`, `2`, `--places`, `2`, `approx`, `3.141592653589793`},
			Stdout: "ratio: 22/7\ndecimal: 3.14\nfloat: 3.142857142857143\n",
		},
		{
			Name:   `cf`,
			Args:   []string{`--type`, `big`, `cf`, `415/93`},
			Stdout: "[4; 2, 6, 7]\n",
		},
		{
			Name:   `cf integer`,
			Args:   []string{`cf`, `--`, `-3`},
			Stdout: "[-3]\n",
		},
		{
			Name:   `parse multiple`,
			Args:   []string{`--places`, `1`, `parse`, `1/2`, `3`},
			Stdout: "ratio: 1/2\ndecimal: 0.5\nexact: 0.5\nfloat: 0.5\n\nratio: 3\ndecimal: 3.0\nexact: 3\nfloat: 3\n",
		},
		{
			Name:   `parse multiple json`,
			Args:   []string{`--json`, `--type`, `uint8`, `parse`, `2/4`, `7`},
			Stdout: `{"type":"uint8","ratio":"1/2","numer":"1","denom":"2","decimal":"0.500000","exact":"0.5","float":0.5}` + "\n" +
				`{"type":"uint8","ratio":"7","numer":"7","denom":"1","decimal":"7.000000","exact":"7","float":7}` + "\n",
		},
		{
			Name:   `cf json`,
			Args:   []string{`--json`, `cf`, `415/93`},
			Stdout: `["4","2","6","7"]` + "\n",
		},
		{
			Name:   `round`,
			Args:   []string{`--places`, `2`, `round`, `--`, `-5/8`},
			Stdout: "ratio: -5/8\nfloor: -1\nceil: 0\ntrunc: 0\nround: -1\nhalf_even: -0.62\n",
		},
		{
			Name:   `round json`,
			Args:   []string{`--json`, `--places`, `0`, `round`, `5/2`},
			Stdout: `{"ratio":"5/2","floor":"2","ceil":"3","trunc":"2","round":"3","half_even":"2"}` + "\n",
		},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			code, stdout, stderr := runTest(t, tc.Args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.Stdout, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_errors(t *testing.T) {
	for _, tc := range [...]struct {
		Name   string
		Args   []string
		Stderr string
	}{
		{
			Name:   `overflow`,
			Args:   []string{`--type`, `int8`, `eval`, `--checked`, `100`, `+`, `100`},
			Stderr: `calc: overflow`,
		},
		{
			Name:   `division by zero`,
			Args:   []string{`eval`, `1`, `/`, `0`},
			Stderr: `division by zero`,
		},
		{
			Name:   `zero denominator`,
			Args:   []string{`parse`, `1/0`},
			Stderr: `zero value denominator`,
		},
		{
			Name:   `rem wrapped divisor`,
			Args:   []string{`--type`, `uint8`, `eval`, `1/16`, `%`, `16`},
			Stderr: `division by zero`,
		},
		{
			Name:   `unknown type`,
			Args:   []string{`--type`, `int128`, `parse`, `1`},
			Stderr: `calc: unknown type`,
		},
		{
			Name:   `unknown operator`,
			Args:   []string{`eval`, `1`, `^`, `2`},
			Stderr: `calc: unknown operator`,
		},
		{
			Name:   `no arguments`,
			Args:   []string{`parse`},
			Stderr: `expected at least 1 argument`,
		},
		{
			Name:   `arguments`,
			Args:   []string{`cmp`, `1`},
			Stderr: `expected 2 argument(s), got 1`,
		},
		{
			Name:   `no approximation`,
			Args:   []string{`--type`, `uint8`, `approx`, `300`},
			Stderr: `calc: no approximation`,
		},
		{
			Name:   `invalid float`,
			Args:   []string{`approx`, `pi`},
			Stderr: `ratcalc: approx`,
		},
		{
			Name:   `invalid log level`,
			Args:   []string{`--log-level`, `loud`, `parse`, `1`},
			Stderr: `invalid log level`,
		},
		{
			Name:   `missing config`,
			Args:   []string{`--config`, filepath.Join(t.TempDir(), `missing.toml`), `parse`, `1`},
			Stderr: `failed to load config`,
		},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			code, stdout, stderr := runTest(t, tc.Args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, `"lvl":"err"`)
			assert.Contains(t, stderr, tc.Stderr)
		})
	}
}

func TestRun_config(t *testing.T) {
	path := writeConfig(t, `
type = "big"
log_level = "debug"

[approx]
max_iterations = 2

[format]
places = 2
`)

	code, stdout, stderr := runTest(t, `--config`, path, `approx`, `3.141592653589793`)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "ratio: 22/7\ndecimal: 3.14\nfloat: 3.142857142857143\n", stdout)
	assert.Contains(t, stderr, `ratcalc: running command`)
	assert.Contains(t, stderr, `"type":"big"`)

	// flags take precedence
	code, stdout, stderr = runTest(t, `--config`, path, `--places`, `4`, `--log-level`, `err`, `parse`, `18446744073709551616/3`)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "ratio: 18446744073709551616/3\ndecimal: 6148914691236517205.3333\nfloat: 6.148914691236517e+18\n", stdout)
	assert.Empty(t, stderr)

	// zero places is distinct from unset
	path = writeConfig(t, "[format]\nplaces = 0\n")
	code, stdout, _ = runTest(t, `--config`, path, `parse`, `7/2`)
	require.Equal(t, 0, code)
	assert.Equal(t, "ratio: 7/2\ndecimal: 4\nexact: 3.5\nfloat: 3.5\n", stdout)
}

func TestRun_configUnknownKey(t *testing.T) {
	path := writeConfig(t, "typ = \"big\"\n")
	code, _, stderr := runTest(t, `--config`, path, `parse`, `1`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown keys`)
}

func TestParseLevel(t *testing.T) {
	for s, level := range map[string]logiface.Level{
		`disabled`: logiface.LevelDisabled,
		`emerg`:    logiface.LevelEmergency,
		`err`:      logiface.LevelError,
		`error`:    logiface.LevelError,
		`WARN`:     logiface.LevelWarning,
		`warning`:  logiface.LevelWarning,
		`info`:     logiface.LevelInformational,
		`debug`:    logiface.LevelDebug,
		`trace`:    logiface.LevelTrace,
	} {
		v, err := parseLevel(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, level, v, s)
		}
	}
	_, err := parseLevel(`verbose`)
	assert.Error(t, err)
}
