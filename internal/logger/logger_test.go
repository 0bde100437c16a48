package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func reset() {
	SetVerbose(false)
	SetTimestamps(false)
	ResetOutput()
	now = time.Now
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("rows %d", 891)
	Info("loaded %s", "titanic.csv")
	Warn("column %q missing", "Age")

	want := "[DEBUG] rows 891\n[INFO] loaded titanic.csv\n[WARN] column \"Age\" missing\n"
	if buf.String() != want {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	Timed("hidden")()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Render Data Cleaning")

	if buf.String() != "\n=== Render Data Cleaning ===\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTimestamps(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	SetTimestamps(true)
	now = func() time.Time { return time.Date(2024, 4, 15, 9, 30, 5, 250e6, time.UTC) }

	Info("ready")

	if buf.String() != "09:30:05.250 [INFO] ready\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTimed(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	ticks := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 2, 0, time.UTC),
	}
	now = func() time.Time {
		t := ticks[0]
		ticks = ticks[1:]
		return t
	}

	Timed("load dataset")()

	if !strings.Contains(buf.String(), "load dataset took 2s") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	if Output() != &buf {
		t.Error("expected Output to return the configured writer")
	}
}
