package chart

import (
	"fmt"
	"strings"

	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
)

// PlotKind tags one of the five supported chart types.
type PlotKind string

const (
	Scatter PlotKind = "scatter"
	Line    PlotKind = "line"
	Hist    PlotKind = "hist"
	Bar     PlotKind = "bar"
	Pie     PlotKind = "pie"
)

// Kinds lists the recognized plot-type tags, in prompt order.
var Kinds = []PlotKind{Scatter, Line, Hist, Bar, Pie}

// ParseKind matches a user-supplied token against the recognized tags.
// Matching is case-insensitive.
func ParseKind(token string) (PlotKind, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, k := range Kinds {
		if string(k) == token {
			return k, true
		}
	}
	return "", false
}

// KindTokens returns the tags as plain strings for prompt display.
func KindTokens() []string {
	tokens := make([]string, len(Kinds))
	for i, k := range Kinds {
		tokens[i] = string(k)
	}
	return tokens
}

// ColumnKindError reports a column whose kind cannot serve as the value
// axis of the requested plot type. It is returned before any drawing
// happens.
type ColumnKindError struct {
	Column string
	Kind   dataset.Kind
	Plot   PlotKind
}

func (e *ColumnKindError) Error() string {
	return fmt.Sprintf("column %q is %s, %s plots need a numeric value column",
		e.Column, e.Kind, e.Plot)
}
