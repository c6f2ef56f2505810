package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// TextReport writes the human readable report:
//
//	<workload>: numThreads = <N> ... <ms> ms
//
// The prefix is written and flushed when the trial starts so a long trial
// is visible; the duration completes the line when it ends.
type TextReport struct {
	w   io.Writer
	err error
}

func NewTextReport(w io.Writer) *TextReport {
	return &TextReport{w: w}
}

type flusher interface {
	Flush() error
}

func (r *TextReport) TrialStarted(workload string, threads int) {
	r.printf("%s: numThreads = %d ... ", workload, threads)
	if f, ok := r.w.(flusher); ok && r.err == nil {
		r.err = f.Flush()
	}
}

func (r *TextReport) TrialFinished(res TrialResult) {
	r.printf("%d ms\n", res.Milliseconds())
	if f, ok := r.w.(flusher); ok && r.err == nil {
		r.err = f.Flush()
	}
}

// Err returns the first write error, if any.
func (r *TextReport) Err() error {
	return r.err
}

func (r *TextReport) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// ReportLine is one parsed line of a TextReport.
type ReportLine struct {
	Workload string
	Threads  int
	Millis   int64
}

var reportRegex = regexp.MustCompile(`^(.+): numThreads = (\d+) \.\.\. (\d+) ms$`)

// ParseReport extracts every complete trial line from a TextReport output.
// Lines that do not match, including an unfinished trailing trial, are
// skipped.
func ParseReport(output string) []ReportLine {
	var lines []ReportLine
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		matches := reportRegex.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		line := ReportLine{Workload: matches[1]}
		if val, err := strconv.Atoi(matches[2]); err == nil {
			line.Threads = val
		}
		if val, err := strconv.ParseInt(matches[3], 10, 64); err == nil {
			line.Millis = val
		}
		lines = append(lines, line)
	}

	return lines
}
