package chart

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
)

// xPositions places each row on the x-axis. A numeric first column is
// scaled by value; anything else gets one evenly spaced slot per row.
func xPositions(xCol *dataset.Column) ([]float64, []xTick) {
	n := xCol.Len()
	var positions []float64

	if xCol.Kind == dataset.Numeric {
		const margin = 30.0
		min, max := valueRange(xCol.Floats())
		span := max - min
		positions = make([]float64, n)
		for i, v := range xCol.Floats() {
			if span == 0 {
				positions[i] = (plotLeft + plotRight) / 2
				continue
			}
			positions[i] = plotLeft + margin + (v-min)/span*(plotRight-plotLeft-2*margin)
		}
	} else {
		positions = slotCenters(n)
	}

	return positions, strideTicks(positions, xCol.Values)
}

func drawScatter(dc *gg.Context, fonts *fontLoader, xCol, yCol *dataset.Column) {
	ys := yCol.Floats()
	positions, ticks := xPositions(xCol)
	yMin, yMax := padRange(valueRange(ys))

	drawFrame(dc, fonts, yMin, yMax, ticks)

	dc.SetColor(seriesColor)
	for i, v := range ys {
		dc.DrawCircle(positions[i], yToPixel(v, yMin, yMax), markerRadius)
		dc.Fill()
	}
}

func drawLinePlot(dc *gg.Context, fonts *fontLoader, xCol, yCol *dataset.Column) {
	ys := yCol.Floats()
	positions, ticks := xPositions(xCol)
	yMin, yMax := padRange(valueRange(ys))

	drawFrame(dc, fonts, yMin, yMax, ticks)

	dc.SetColor(seriesColor)
	dc.SetLineWidth(2)
	for i := 0; i < len(ys)-1; i++ {
		dc.DrawLine(
			positions[i], yToPixel(ys[i], yMin, yMax),
			positions[i+1], yToPixel(ys[i+1], yMin, yMax))
		dc.Stroke()
	}

	// Markers on every point, drawn over the segments.
	for i, v := range ys {
		dc.DrawCircle(positions[i], yToPixel(v, yMin, yMax), markerRadius)
		dc.Fill()
	}
}

func drawBars(dc *gg.Context, fonts *fontLoader, xCol, yCol *dataset.Column) {
	ys := yCol.Floats()
	n := len(ys)
	// Bars sit at the first column's value when it is numeric, one evenly
	// spaced slot per row otherwise. Width is uniform either way.
	positions, ticks := xPositions(xCol)
	barW := (plotRight - plotLeft) / float64(n) * barRelWidth

	min, max := valueRange(ys)
	yMin := math.Min(0, min)
	yMax := math.Max(0, max)
	if yMin == yMax {
		yMax = 1
	}
	yMax += (yMax - yMin) * 0.05

	drawFrame(dc, fonts, yMin, yMax, ticks)

	zero := yToPixel(0, yMin, yMax)
	dc.SetColor(seriesColor)
	for i, v := range ys {
		top := yToPixel(v, yMin, yMax)
		x := positions[i] - barW/2
		if v >= 0 {
			dc.DrawRectangle(x, top, barW, zero-top)
		} else {
			dc.DrawRectangle(x, zero, barW, top-zero)
		}
		dc.Fill()
	}
}

// drawHist buckets the value column into a fixed number of bins. Bars take
// 80% of their slot, leaving a visible gap between neighbors.
func drawHist(dc *gg.Context, fonts *fontLoader, yCol *dataset.Column) {
	vals := yCol.Floats()
	min, max := valueRange(vals)
	width := (max - min) / histBuckets
	if width == 0 {
		// all values identical: spread a unit-wide range around the value
		min -= 0.5
		width = 1.0 / histBuckets
	}

	counts := make([]int, histBuckets)
	for _, v := range vals {
		idx := int((v - min) / width)
		if idx >= histBuckets {
			idx = histBuckets - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	yMin := 0.0
	yMax := float64(maxCount) * 1.05
	if yMax == 0 {
		yMax = 1
	}

	// Ticks at every bucket edge, labeled with the edge value.
	slotW := (plotRight - plotLeft) / histBuckets
	ticks := make([]xTick, 0, histBuckets+1)
	for i := 0; i <= histBuckets; i++ {
		ticks = append(ticks, xTick{
			pos:   plotLeft + float64(i)*slotW,
			label: formatTickValue(min + float64(i)*width),
		})
	}

	drawFrame(dc, fonts, yMin, yMax, ticks)

	dc.SetColor(seriesColor)
	gap := slotW * (1 - barRelWidth) / 2
	for i, c := range counts {
		if c == 0 {
			continue
		}
		top := yToPixel(float64(c), yMin, yMax)
		x := plotLeft + float64(i)*slotW + gap
		dc.DrawRectangle(x, top, slotW*barRelWidth, plotBottom-top)
		dc.Fill()
	}
}

// drawPie renders one wedge per row. Wedge sizes must be non-negative with
// a positive sum; anything else fails deterministically before drawing.
func drawPie(dc *gg.Context, fonts *fontLoader, xCol, yCol *dataset.Column) error {
	vals := yCol.Floats()
	sum := 0.0
	for _, v := range vals {
		if v < 0 {
			return fmt.Errorf("pie wedge sizes cannot be negative: column %q contains %v", yCol.Name, v)
		}
		sum += v
	}
	if sum == 0 {
		return fmt.Errorf("pie wedge sizes in column %q sum to zero", yCol.Name)
	}

	cx := float64(canvasWidth) / 2
	cy := (plotTop+plotBottom)/2 + 20
	r := 165.0

	fonts.apply(dc, tickFontSize)

	a0 := 0.0
	for i, v := range vals {
		a1 := a0 + v/sum*2*math.Pi

		dc.SetColor(palette[i%len(palette)])
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, a0, a1)
		dc.ClosePath()
		dc.Fill()

		mid := (a0 + a1) / 2

		// Wedge label outside the rim, percentage annotation inside.
		dc.SetColor(axisColor)
		dc.DrawStringAnchored(xCol.Values[i],
			cx+math.Cos(mid)*(r+22), cy+math.Sin(mid)*(r+22), 0.5, 0.5)

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", v/sum*100),
			cx+math.Cos(mid)*r*0.6, cy+math.Sin(mid)*r*0.6, 0.5, 0.5)

		a0 = a1
	}

	return nil
}
