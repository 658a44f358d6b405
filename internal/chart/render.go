package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
)

// PlotFileName is the fixed on-disk artifact name, overwritten each run.
const PlotFileName = "plot.png"

const (
	canvasWidth  = 1000
	canvasHeight = 600

	plotLeft   = 110.0
	plotRight  = 950.0
	plotTop    = 70.0
	plotBottom = 460.0

	chartTitle = "Data Visualization"

	titleFontSize  = 22.0
	labelFontSize  = 16.0
	tickFontSize   = 12.0
	legendFontSize = 13.0

	markerRadius = 4.0
	barRelWidth  = 0.8
	histBuckets  = 10

	tickLength = 6.0
	maxXTicks  = 12
	gridSteps  = 5
)

var (
	seriesColor = color.RGBA{31, 119, 180, 255}
	gridColor   = color.RGBA{190, 190, 190, 255}
	axisColor   = color.RGBA{40, 40, 40, 255}

	palette = []color.RGBA{
		{31, 119, 180, 255},
		{255, 127, 14, 255},
		{44, 160, 44, 255},
		{214, 39, 40, 255},
		{148, 103, 189, 255},
		{140, 86, 75, 255},
		{227, 119, 194, 255},
		{127, 127, 127, 255},
		{188, 189, 34, 255},
		{23, 190, 207, 255},
	}
)

// Render draws one chart of the selected column against the table's first
// column and returns the PNG as a base64 string. The figure is also written
// to outDir/plot.png as an inspectable artifact; the encoded payload comes
// from the in-memory buffer, not a disk round trip.
//
// The plot-type tag is validated by the driver; an unrecognized kind here
// is an unreachable state.
func Render(t *dataset.Table, outDir, column string, kind PlotKind) (string, error) {
	col, ok := t.Column(column)
	if !ok {
		return "", fmt.Errorf("no column %q in dataset", column)
	}
	if col.Kind != dataset.Numeric {
		return "", &ColumnKindError{Column: column, Kind: col.Kind, Plot: kind}
	}
	xCol := t.XColumn()

	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	fonts := newFontLoader()

	switch kind {
	case Scatter:
		drawScatter(dc, fonts, xCol, col)
	case Line:
		drawLinePlot(dc, fonts, xCol, col)
	case Hist:
		drawHist(dc, fonts, col)
	case Bar:
		drawBars(dc, fonts, xCol, col)
	case Pie:
		if err := drawPie(dc, fonts, xCol, col); err != nil {
			return "", err
		}
	default:
		panic(fmt.Sprintf("chart: unreachable plot kind %q", kind))
	}

	drawDecoration(dc, fonts, xCol.Name, col.Name)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile := filepath.Join(outDir, PlotFileName)
	if err := dc.SavePNG(outFile); err != nil {
		return "", fmt.Errorf("failed to save plot: %w", err)
	}

	fileInfo, err := os.Stat(outFile)
	if err != nil {
		return "", fmt.Errorf("failed to stat plot file: %w", err)
	}
	if fileInfo.Size() == 0 {
		os.Remove(outFile)
		logging.LogError("Plot file is empty after rendering", zap.String("filename", outFile))
		return "", fmt.Errorf("plot file is empty after rendering")
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode plot: %w", err)
	}

	logging.LogSuccess("Plot saved",
		zap.String("filename", outFile),
		zap.String("plotType", string(kind)),
		zap.String("column", column),
		zap.Int64("fileSize", fileInfo.Size()))

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fontLoader resolves one usable truetype face from the usual system
// locations. When nothing is found gg falls back to its built-in face.
type fontLoader struct {
	path string
}

var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

func newFontLoader() *fontLoader {
	for _, p := range fontPaths {
		if _, err := os.Stat(p); err == nil {
			return &fontLoader{path: p}
		}
	}
	logging.LogWarn("No system font found, using built-in face",
		zap.Int("paths_checked", len(fontPaths)))
	return &fontLoader{}
}

func (f *fontLoader) apply(dc *gg.Context, size float64) {
	if f.path == "" {
		return
	}
	if err := dc.LoadFontFace(f.path, size); err != nil {
		logging.LogWarn("Font file exists but failed to load, using built-in face",
			zap.String("path", f.path),
			zap.Error(err))
		f.path = ""
	}
}

type xTick struct {
	pos   float64
	label string
}

func yToPixel(v, yMin, yMax float64) float64 {
	return plotBottom - (v-yMin)/(yMax-yMin)*(plotBottom-plotTop)
}

// slotCenters spreads n slots evenly across the plot width.
func slotCenters(n int) []float64 {
	centers := make([]float64, n)
	slotW := (plotRight - plotLeft) / float64(n)
	for i := range centers {
		centers[i] = plotLeft + (float64(i)+0.5)*slotW
	}
	return centers
}

func valueRange(vals []float64) (float64, float64) {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// padRange widens a value range by 5% on each side so markers do not sit
// on the frame. A zero-width range gets a unit of slack.
func padRange(min, max float64) (float64, float64) {
	if min == max {
		return min - 1, max + 1
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}

// strideTicks thins row ticks down to at most maxXTicks labels.
func strideTicks(positions []float64, labels []string) []xTick {
	stride := 1
	if len(positions) > maxXTicks {
		stride = (len(positions) + maxXTicks - 1) / maxXTicks
	}
	ticks := make([]xTick, 0, maxXTicks)
	for i := 0; i < len(positions); i += stride {
		ticks = append(ticks, xTick{pos: positions[i], label: labels[i]})
	}
	return ticks
}

func formatTickValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// drawFrame draws the axis lines, dashed horizontal gridlines with value
// labels, and the rotated x tick labels.
func drawFrame(dc *gg.Context, fonts *fontLoader, yMin, yMax float64, ticks []xTick) {
	dc.SetColor(axisColor)
	dc.SetLineWidth(2)
	dc.SetDash()
	dc.DrawLine(plotLeft, plotBottom, plotRight, plotBottom)
	dc.Stroke()
	dc.DrawLine(plotLeft, plotTop, plotLeft, plotBottom)
	dc.Stroke()

	fonts.apply(dc, tickFontSize)

	for i := 0; i <= gridSteps; i++ {
		v := yMin + float64(i)*(yMax-yMin)/gridSteps
		y := yToPixel(v, yMin, yMax)

		if i > 0 {
			dc.SetColor(gridColor)
			dc.SetLineWidth(1)
			dc.SetDash(10, 5)
			dc.DrawLine(plotLeft, y, plotRight, y)
			dc.Stroke()
			dc.SetDash()
		}

		dc.SetColor(axisColor)
		dc.SetLineWidth(2)
		dc.DrawLine(plotLeft-tickLength, y, plotLeft, y)
		dc.Stroke()
		dc.DrawStringAnchored(formatTickValue(v), plotLeft-tickLength-4, y, 1, 0.5)
	}

	// X tick labels rotated 45° and right-aligned, matching the readability
	// treatment the tool has always applied.
	for _, tick := range ticks {
		dc.SetColor(axisColor)
		dc.SetLineWidth(2)
		dc.DrawLine(tick.pos, plotBottom, tick.pos, plotBottom+tickLength)
		dc.Stroke()

		labelY := plotBottom + tickLength + 6
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), tick.pos, labelY)
		dc.DrawStringAnchored(tick.label, tick.pos, labelY, 1, 0.5)
		dc.Pop()
	}
}

// drawDecoration adds the fixed title, the axis labels, and the legend.
// It runs for every plot kind, pie included.
func drawDecoration(dc *gg.Context, fonts *fontLoader, xName, yName string) {
	dc.SetColor(axisColor)

	fonts.apply(dc, titleFontSize)
	dc.DrawStringAnchored(chartTitle, canvasWidth/2, 36, 0.5, 0.5)

	fonts.apply(dc, labelFontSize)
	dc.DrawStringAnchored(xName, (plotLeft+plotRight)/2, canvasHeight-24, 0.5, 0.5)

	cy := (plotTop + plotBottom) / 2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 30, cy)
	dc.DrawStringAnchored(yName, 30, cy, 0.5, 0.5)
	dc.Pop()

	drawLegend(dc, fonts, yName)
}

// drawLegend draws a single-entry legend box with the selected column name.
func drawLegend(dc *gg.Context, fonts *fontLoader, label string) {
	fonts.apply(dc, legendFontSize)

	const swatch = 14.0
	const pad = 7.0
	labelW, labelH := dc.MeasureString(label)
	boxW := swatch + labelW + 3*pad
	boxH := labelH + 2*pad
	x0 := plotRight - boxW - 10
	y0 := plotTop + 10

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	dc.Fill()
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	dc.Stroke()

	dc.SetColor(seriesColor)
	dc.DrawRectangle(x0+pad, y0+(boxH-swatch)/2, swatch, swatch)
	dc.Fill()

	dc.SetColor(axisColor)
	dc.DrawStringAnchored(label, x0+swatch+2*pad, y0+boxH/2, 0, 0.5)
}
