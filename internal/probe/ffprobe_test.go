package probe

import (
	"context"
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"596.461667\n", 596, false},
		{"75.000000", 75, false},
		{"0.9", 0, false},
		{"N/A", 0, true},
		{"", 0, true},
		{"-3.0", 0, true},
	}

	for _, test := range tests {
		got, err := ParseDuration(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseDuration(%q) expected error, got %d", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseDuration(%q) = %d, expected %d", test.input, got, test.expected)
		}
	}
}

func TestBuildArgs(t *testing.T) {
	p := NewFFprobe()
	args := p.BuildArgs("https://example.com/video.mp4")

	expected := []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		"https://example.com/video.mp4",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d", len(expected), len(args))
	}
	for i := range expected {
		if args[i] != expected[i] {
			t.Errorf("Arg %d: expected %s, got %s", i, expected[i], args[i])
		}
	}
}

func TestProbeDuration_UsesRunner(t *testing.T) {
	p := NewFFprobe()
	var gotName string
	p.SetRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		return []byte("888.0\n"), nil
	})

	seconds, err := p.ProbeDuration(context.Background(), "sintel.mp4")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if seconds != 888 {
		t.Errorf("Expected 888 seconds, got %d", seconds)
	}
	if gotName != FFprobeCommand {
		t.Errorf("Expected command %s, got %s", FFprobeCommand, gotName)
	}
}

func TestProbeDuration_RunnerError(t *testing.T) {
	p := NewFFprobe()
	runErr := errors.New("exec: \"ffprobe\": executable file not found in $PATH")
	p.SetRunner(func(context.Context, string, ...string) ([]byte, error) {
		return nil, runErr
	})

	_, err := p.ProbeDuration(context.Background(), "sintel.mp4")
	if !errors.Is(err, runErr) {
		t.Errorf("Expected wrapped runner error, got: %v", err)
	}
}
