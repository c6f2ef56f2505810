package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctrbench/internal/benchmark"
	"ctrbench/internal/workload"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		viper.Reset()
	})

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmdSweep(t *testing.T) {
	if workload.RaceEnabled {
		t.Skip("Non-atomic Benchmark races by design")
	}
	viper.Reset()
	viper.Set("iterations", 1000)
	viper.Set("max_threads", 2)

	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := benchmark.ParseReport(stdout)
	require.Len(t, lines, 14*2)
	assert.Equal(t, "Non-atomic Baseline", lines[0].Workload)
	assert.Equal(t, 1, lines[0].Threads)
	assert.Equal(t, "Atomic Benchmark (seq_cst)", lines[27].Workload)
	assert.Equal(t, 2, lines[27].Threads)
	assert.Equal(t, 28, strings.Count(stdout, "\n"))
}

func TestRootCmdVerboseLogsToStderr(t *testing.T) {
	viper.Reset()
	viper.Set("iterations", 10)
	viper.Set("max_threads", 1)
	viper.Set("verbose", true)

	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Len(t, benchmark.ParseReport(stdout), 14)
	assert.Contains(t, stderr, `"msg":"sweep started"`)
	assert.Contains(t, stderr, `"msg":"trial finished"`)
	assert.NotContains(t, stdout, "sweep started")
}

func TestRootCmdVerboseLogsTrialSummary(t *testing.T) {
	viper.Reset()
	viper.Set("iterations", 10)
	threads := 2
	if workload.RaceEnabled {
		threads = 1
	}
	viper.Set("max_threads", threads)
	viper.Set("verbose", true)

	_, stderr, err := execute(t)
	require.NoError(t, err)

	var summaries []map[string]any
	for line := range strings.Lines(stderr) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "trial summary" {
			summaries = append(summaries, rec)
		}
	}
	require.Len(t, summaries, 14)

	first := summaries[0]
	assert.Equal(t, "Non-atomic Baseline", first["workload"])
	assert.Equal(t, float64(threads), first["trials"])
	// 10 iterations at each of 1..threads.
	assert.Equal(t, float64(10*threads*(threads+1)/2), first["increments_total"])
	assert.Len(t, first["ns_per_increment"], threads)
	assert.Equal(t, "Atomic Benchmark (seq_cst)", summaries[13]["workload"])
}

func TestRootCmdQuietSkipsTrialSummary(t *testing.T) {
	viper.Reset()
	viper.Set("iterations", 10)
	viper.Set("max_threads", 1)

	_, stderr, err := execute(t)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "trial summary")
}

func TestRootCmdEmptySweep(t *testing.T) {
	viper.Reset()
	viper.Set("max_threads", 0)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRootCmdRejectsArguments(t *testing.T) {
	viper.Reset()
	viper.Set("max_threads", 0)

	_, _, err := execute(t, "extra")
	assert.ErrorContains(t, err, "unknown command")
}

func TestRootCmdInvalidConfig(t *testing.T) {
	viper.Reset()
	viper.Set("iterations", -5)

	stdout, _, err := execute(t)
	assert.ErrorContains(t, err, "iterations must be positive")
	assert.Empty(t, stdout)
}

func TestExecuteExitsOnError(t *testing.T) {
	oldExit := exit
	oldRoot := rootCmd
	defer func() {
		exit = oldExit
		rootCmd = oldRoot
		viper.Reset()
	}()

	code := -1
	exit = func(c int) { code = c }

	viper.Reset()
	viper.Set("iterations", 0)
	rootCmd = newRootCmd()
	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(&bytes.Buffer{})

	Execute()
	assert.Equal(t, 1, code)
}
