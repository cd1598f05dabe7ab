// Package probe reads media metadata with ffprobe.
package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// FFprobe constants
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
)

// Runner executes a command and returns its standard output
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// FFprobe looks up stream durations with the ffprobe binary
type FFprobe struct {
	command string
	run     Runner
}

// NewFFprobe creates a prober using ffprobe from PATH
func NewFFprobe() *FFprobe {
	return &FFprobe{
		command: FFprobeCommand,
		run:     runCommand,
	}
}

// SetRunner replaces the command runner
func (p *FFprobe) SetRunner(run Runner) {
	p.run = run
}

// Available reports whether the ffprobe binary can be found
func (p *FFprobe) Available() bool {
	_, err := exec.LookPath(p.command)
	return err == nil
}

// BuildArgs builds the ffprobe arguments for a source
func (p *FFprobe) BuildArgs(source string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		source,
	}
}

// ProbeDuration returns the duration of a source in whole seconds
func (p *FFprobe) ProbeDuration(ctx context.Context, source string) (int, error) {
	output, err := p.run(ctx, p.command, p.BuildArgs(source)...)
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's duration output and truncates it to whole seconds
func ParseDuration(output string) (int, error) {
	durationStr := strings.TrimSpace(output)
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration: %s", durationStr)
	}
	return int(duration), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
