package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, sheets ...LogSheet) string {
	t.Helper()
	data, err := json.Marshal(TripPlan{LogSheets: sheets})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func twoDays() []LogSheet {
	day2 := scenarioSheet()
	day2.DayNumber = 2
	day2.Date = "2026-03-03"
	return []LogSheet{scenarioSheet(), day2}
}

func defaultRenderOptions() renderOptions {
	return renderOptions{format: "svg", timeout: time.Second}
}

func TestRunRender_SingleDaySVGToStdout(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, scenarioSheet())
	var stdout, stderr bytes.Buffer

	err := runRender(context.Background(), path, defaultRenderOptions(), nil, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "<svg")
	assert.Contains(t, stdout.String(), ">10.5</text>")
	assert.Empty(t, stderr.String())
}

func TestRunRender_ReadsStdin(t *testing.T) {
	t.Setenv(templateEnv, "")
	data, err := os.ReadFile(writePlan(t, scenarioSheet()))
	require.NoError(t, err)
	var stdout bytes.Buffer

	err = runRender(context.Background(), "-", defaultRenderOptions(), bytes.NewReader(data), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Day 1 - 2026-03-02")
}

func TestRunRender_SeveralDaysNeedOutDir(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	var stdout bytes.Buffer

	err := runRender(context.Background(), path, defaultRenderOptions(), nil, &stdout, io.Discard)

	assert.ErrorContains(t, err, "2 days selected")
	assert.Zero(t, stdout.Len())
}

func TestRunRender_OutDir(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	opts := defaultRenderOptions()
	opts.outDir = filepath.Join(t.TempDir(), "charts")

	err := runRender(context.Background(), path, opts, nil, io.Discard, io.Discard)
	require.NoError(t, err)

	for _, name := range []string{"day-1.svg", "day-2.svg"} {
		data, err := os.ReadFile(filepath.Join(opts.outDir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "</svg>"), name)
	}
}

func TestRunRender_SelectDay(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	opts := defaultRenderOptions()
	opts.day = 2
	var stdout bytes.Buffer

	require.NoError(t, runRender(context.Background(), path, opts, nil, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "Day 2 - 2026-03-03")

	opts.day = 9
	err := runRender(context.Background(), path, opts, nil, io.Discard, io.Discard)
	assert.ErrorContains(t, err, "day 9 not found")
}

func TestRunRender_HTMLWithTemplate(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	tmpl := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(tmpl, []byte("header:\n  truck: \"T-88\"\nstyle:\n  background: \"#000000\"\n"), 0o644))

	opts := defaultRenderOptions()
	opts.format = "HTML"
	opts.templatePath = tmpl
	opts.outputFile = filepath.Join(t.TempDir(), "logs.html")

	require.NoError(t, runRender(context.Background(), path, opts, nil, io.Discard, io.Discard))

	data, err := os.ReadFile(opts.outputFile)
	require.NoError(t, err)
	page := string(data)
	assert.Equal(t, 2, strings.Count(page, "<svg"))
	assert.Contains(t, page, "T-88")
	assert.Contains(t, page, `fill="#000000"`)
}

func TestRunRender_HTMLIntoOutDir(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	opts := defaultRenderOptions()
	opts.format = "html"
	opts.outDir = filepath.Join(t.TempDir(), "report")
	var stdout bytes.Buffer

	require.NoError(t, runRender(context.Background(), path, opts, nil, &stdout, io.Discard))

	assert.Zero(t, stdout.Len())
	data, err := os.ReadFile(filepath.Join(opts.outDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<svg"))
}

func TestRunRender_DuplicateDayNumbers(t *testing.T) {
	t.Setenv(templateEnv, "")
	days := twoDays()
	days[1].DayNumber = 1
	path := writePlan(t, days...)
	opts := defaultRenderOptions()
	opts.outDir = filepath.Join(t.TempDir(), "charts")

	err := runRender(context.Background(), path, opts, nil, io.Discard, io.Discard)

	assert.ErrorContains(t, err, "day 1 appears more than once")
	assert.NoFileExists(t, filepath.Join(opts.outDir, "day-1.svg"))
}

func TestRunRender_TemplateFromEnv(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(tmpl, []byte("style:\n  font_family: serif\n"), 0o644))
	t.Setenv(templateEnv, tmpl)
	path := writePlan(t, scenarioSheet())
	var stdout bytes.Buffer

	require.NoError(t, runRender(context.Background(), path, defaultRenderOptions(), nil, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), `font-family="serif"`)
}

func TestRunRender_RejectedDay(t *testing.T) {
	t.Setenv(templateEnv, "")
	days := twoDays()
	days[1].Segments = days[1].Segments[1:]
	path := writePlan(t, days...)
	opts := defaultRenderOptions()
	opts.outDir = t.TempDir()
	var stderr bytes.Buffer

	err := runRender(context.Background(), path, opts, nil, io.Discard, &stderr)

	assert.EqualError(t, err, "1 of 2 day(s) rejected")
	assert.Contains(t, stderr.String(), "error: day 2: ")
	assert.FileExists(t, filepath.Join(opts.outDir, "day-1.svg"))
	assert.NoFileExists(t, filepath.Join(opts.outDir, "day-2.svg"))
}

func TestRunRender_StrictWarnings(t *testing.T) {
	t.Setenv(templateEnv, "")
	sheet := scenarioSheet()
	sheet.Segments[0].Status = "yard_move"
	path := writePlan(t, sheet)
	var stdout, stderr bytes.Buffer

	require.NoError(t, runRender(context.Background(), path, defaultRenderOptions(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `warning: day 1: unknown-status: segment 0 has unrecognized status "yard_move"`)
	assert.Contains(t, stdout.String(), "<svg", "chart is still produced")

	opts := defaultRenderOptions()
	opts.strict = true
	err := runRender(context.Background(), path, opts, nil, io.Discard, io.Discard)
	assert.EqualError(t, err, "1 of 1 day(s) have warnings")
}

func TestRunRender_OptionErrors(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, scenarioSheet())

	opts := defaultRenderOptions()
	opts.format = "pdf"
	assert.ErrorContains(t, runRender(context.Background(), path, opts, nil, io.Discard, io.Discard), "unsupported export format 'pdf'")

	opts = defaultRenderOptions()
	opts.outputFile, opts.outDir = "a.svg", "out"
	assert.ErrorContains(t, runRender(context.Background(), path, opts, nil, io.Discard, io.Discard), "mutually exclusive")

	opts = defaultRenderOptions()
	assert.ErrorContains(t, runRender(context.Background(), filepath.Join(t.TempDir(), "nope.json"), opts, nil, io.Discard, io.Discard), "error reading data file")

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))
	assert.ErrorContains(t, runRender(context.Background(), empty, opts, nil, io.Discard, io.Discard), "no log sheets found")
}

func TestWriteOutput_RemovesFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")

	err := writeOutput(path, nil, func(w io.Writer) error {
		_, _ = io.WriteString(w, "<svg")
		return errors.New("encoder failed")
	})

	assert.EqualError(t, err, "encoder failed")
	assert.NoFileExists(t, path)
}

func TestCheckCommand(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"check", path})

	require.NoError(t, root.Execute())
	assert.Equal(t, 2, strings.Count(out.String(), "✓ ok"))
}

func TestRenderCommand_Flags(t *testing.T) {
	t.Setenv(templateEnv, "")
	path := writePlan(t, twoDays()...)
	outDir := t.TempDir()

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", path, "--format", "svg", "--out-dir", outDir, "--day", "2"})

	require.NoError(t, root.Execute())
	assert.FileExists(t, filepath.Join(outDir, "day-2.svg"))
	assert.NoFileExists(t, filepath.Join(outDir, "day-1.svg"))
}

func TestOutcomeError(t *testing.T) {
	okChart := &Chart{}
	warnChart := &Chart{Warnings: []Warning{{Kind: WarnTotalsSum}}}

	assert.NoError(t, outcomeError([]DayResult{{Chart: okChart}, {Chart: warnChart}}, false))
	assert.EqualError(t, outcomeError([]DayResult{{Chart: okChart}, {Chart: warnChart}}, true), "1 of 2 day(s) have warnings")
	assert.EqualError(t, outcomeError([]DayResult{{Err: errors.New("bad")}, {Chart: warnChart}}, true), "1 of 2 day(s) rejected")
}
