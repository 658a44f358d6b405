package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"

	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
)

func salesTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.FromRecords([][]string{
		{"date", "sales"},
		{"2024-01-01", "120"},
		{"2024-01-02", "180"},
		{"2024-01-03", "95"},
		{"2024-01-04", "210"},
		{"2024-01-05", "160"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return table
}

func TestRender_AllKinds(t *testing.T) {
	table := salesTable(t)

	for _, kind := range Kinds {
		outDir := t.TempDir()
		payload, err := Render(table, outDir, "sales", kind)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", kind, err)
		}
		if payload == "" {
			t.Fatalf("Render(%s) returned empty payload", kind)
		}

		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			t.Fatalf("Render(%s) payload is not valid base64: %v", kind, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("Render(%s) payload is not a valid PNG: %v", kind, err)
		}
		if cfg.Width != canvasWidth || cfg.Height != canvasHeight {
			t.Fatalf("Render(%s) produced %dx%d, expected %dx%d",
				kind, cfg.Width, cfg.Height, canvasWidth, canvasHeight)
		}

		if _, err := os.Stat(filepath.Join(outDir, PlotFileName)); err != nil {
			t.Fatalf("Render(%s) did not write %s: %v", kind, PlotFileName, err)
		}
	}
}

func TestRender_OverwritesPlotFile(t *testing.T) {
	table := salesTable(t)
	outDir := t.TempDir()

	if _, err := Render(table, outDir, "sales", Line); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if _, err := Render(table, outDir, "sales", Bar); err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("failed to read output dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != PlotFileName {
		t.Fatalf("expected exactly %s in output dir, got %d entries", PlotFileName, len(entries))
	}
}

func TestRender_MissingColumn(t *testing.T) {
	table := salesTable(t)
	if _, err := Render(table, t.TempDir(), "profit", Line); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestRender_RejectsCategoricalColumn(t *testing.T) {
	table := salesTable(t)

	for _, kind := range Kinds {
		_, err := Render(table, t.TempDir(), "date", kind)
		if err == nil {
			t.Fatalf("Render(%s) accepted categorical value column", kind)
		}
		var kindErr *ColumnKindError
		if !errors.As(err, &kindErr) {
			t.Fatalf("Render(%s) returned %T, expected *ColumnKindError", kind, err)
		}
		if kindErr.Column != "date" || kindErr.Plot != kind {
			t.Fatalf("unexpected error detail: %+v", kindErr)
		}
	}
}

func TestRender_PieRejectsNegativeValues(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"label", "value"},
		{"a", "10"},
		{"b", "-3"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	if _, err := Render(table, t.TempDir(), "value", Pie); err == nil {
		t.Fatalf("expected error for negative pie wedge size")
	}
}

func TestRender_PieRejectsZeroSum(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"label", "value"},
		{"a", "0"},
		{"b", "0.0"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	if _, err := Render(table, t.TempDir(), "value", Pie); err == nil {
		t.Fatalf("expected error for zero-sum pie")
	}
}

func TestRender_SingleRowHist(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"id", "value"},
		{"a", "42"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	payload, err := Render(table, t.TempDir(), "value", Hist)
	if err != nil {
		t.Fatalf("Render(hist) failed on identical values: %v", err)
	}
	if payload == "" {
		t.Fatalf("expected non-empty payload")
	}
}

func TestXPositions_NumericScalesByValue(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"hour", "load"},
		{"0", "10"},
		{"5", "20"},
		{"10", "30"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	positions, _ := xPositions(table.XColumn())
	if len(positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(positions))
	}
	if !(positions[0] < positions[1] && positions[1] < positions[2]) {
		t.Fatalf("numeric x positions must increase with value: %v", positions)
	}
	// 5 is the midpoint of [0,10], so its position must sit halfway.
	mid := (positions[0] + positions[2]) / 2
	if math.Abs(positions[1]-mid) > 0.001 {
		t.Fatalf("value 5 must sit halfway between 0 and 10: %v", positions)
	}
}

func TestRender_BarWithNumericXColumn(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"hour", "load"},
		{"0", "10"},
		{"3", "25"},
		{"10", "15"},
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}

	payload, err := Render(table, t.TempDir(), "load", Bar)
	if err != nil {
		t.Fatalf("Render(bar) failed on numeric x column: %v", err)
	}
	if payload == "" {
		t.Fatalf("expected non-empty payload")
	}
}

func TestFontLoader_DropsUnparseableFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatalf("failed to write fake font: %v", err)
	}

	f := &fontLoader{path: path}
	dc := gg.NewContext(1, 1)
	f.apply(dc, tickFontSize)

	if f.path != "" {
		t.Fatalf("expected fontLoader to drop the unparseable face, still holds %q", f.path)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		token string
		want  PlotKind
		ok    bool
	}{
		{"scatter", Scatter, true},
		{"LINE", Line, true},
		{" hist ", Hist, true},
		{"Bar", Bar, true},
		{"pie", Pie, true},
		{"circle", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseKind(c.token)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseKind(%q) = (%q, %v), expected (%q, %v)", c.token, got, ok, c.want, c.ok)
		}
	}
}

func TestColumnKindError_Message(t *testing.T) {
	err := &ColumnKindError{Column: "date", Kind: dataset.Categorical, Plot: Hist}
	want := `column "date" is categorical, hist plots need a numeric value column`
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
