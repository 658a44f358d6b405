package main

import (
	"fmt"
	"os"

	"github.com/jaytlin4/Data-Visualizer/internal/chart"
	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
)

// go run etc/tools/render_demo.go
// Renders one chart of every kind into etc/charts/<kind>/plot.png
func main() {
	table, err := dataset.FromRecords([][]string{
		{"date", "sales"},
		{"2024-01-01", "120"},
		{"2024-01-02", "180"},
		{"2024-01-03", "95"},
		{"2024-01-04", "210"},
		{"2024-01-05", "160"},
	})
	if err != nil {
		fmt.Printf("Error building demo table: %v\n", err)
		os.Exit(1)
	}

	for _, kind := range chart.Kinds {
		outDir := fmt.Sprintf("etc/charts/%s", kind)
		if _, err := chart.Render(table, outDir, "sales", kind); err != nil {
			fmt.Printf("Error rendering %s chart: %v\n", kind, err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %s/%s\n", outDir, chart.PlotFileName)
	}

	fmt.Println("Open the files to see the results!")
}
