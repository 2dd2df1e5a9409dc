package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Original Value", "Converted Value")
	table.AddRow("0.10 Miles", "0.16 Kilometers")
	table.AddRow("1,000.00 Miles", "1,609.34 Kilometers")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Original Value │ Converted Value" {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "0.10 Miles     │ ") {
		t.Errorf("first column not padded: %q", lines[2])
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Error("color codes written with colors disabled")
	}
}

func TestAddRowPadsMissingCells(t *testing.T) {
	var buf bytes.Buffer
	table := NewWriter(&buf, true).NewTable("a", "b", "c")
	table.AddRow("only")
	table.Render()

	if !strings.Contains(buf.String(), "only │   │") {
		t.Errorf("missing cells were not padded:\n%s", buf.String())
	}
}

func TestVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug printed at default verbosity: %q", buf.String())
	}

	w.SetVerbosity(2)
	w.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not printed at verbosity 2: %q", buf.String())
	}

	buf.Reset()
	w.SetVerbosity(0)
	w.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info printed at verbosity 0: %q", buf.String())
	}
}

func TestBoxWidthFollowsContent(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, true).Box("Conversion Result", "1.00000000 Miles = 1.60934000 Kilometers")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	top := []rune(lines[0])
	for i, l := range lines {
		if got := len([]rune(l)); got != len(top) {
			t.Errorf("line %d has width %d, want %d: %q", i, got, len(top), l)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, false).Error("bad %s", "unit")

	if !strings.Contains(buf.String(), Red) || !strings.Contains(buf.String(), "bad unit") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
