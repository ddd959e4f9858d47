// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws box plots of scenario run times.
package benchchart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"golang.org/x/benchrank/benchstat"
	"golang.org/x/benchrank/benchunit"
)

// ErrNoSamples is returned when no scenario has run time samples.
var ErrNoSamples = errors.New("no run time samples to chart")

// FormatFor returns the chart format implied by the extension of
// path: "svg" or "png".
func FormatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg", ".png":
		return ext[1:], nil
	default:
		return "", fmt.Errorf("unsupported chart format %q (want .svg or .png)", ext)
	}
}

const dpi = 96

// Write draws one box per scenario with run time samples, in order,
// and writes the chart to w in format "svg" or "png". All boxes share
// one duration unit, chosen from the scenario averages by strategy.
func Write(w io.Writer, scenarios []*benchstat.Scenario, format string, strategy benchunit.Strategy) error {
	var measured []*benchstat.Scenario
	var centers []float64
	for _, s := range scenarios {
		if len(s.Samples) == 0 {
			continue
		}
		measured = append(measured, s)
		if s.Stats != nil {
			centers = append(centers, s.Stats.Average)
		} else {
			centers = append(centers, s.Samples[0])
		}
	}
	if len(measured) == 0 {
		return ErrNoSamples
	}
	unit := benchunit.BestUnit(centers, benchunit.Duration, strategy)

	pl := plot.New()
	pl.Title.Text = "Run time"
	pl.Y.Label.Text = unit.Label
	pl.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	names := make([]string, 0, len(measured))
	for i, s := range measured {
		values := make(plotter.Values, len(s.Samples))
		for j, v := range s.Samples {
			values[j] = unit.Scale(v)
		}
		b, err := plotter.NewBoxPlot(vg.Points(20), float64(i), values)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		b.FillColor = color.RGBA{0x30, 0x60, 0xc0, 0x50}
		pl.Add(b)
		names = append(names, s.Name)
	}
	pl.NominalX(names...)

	// Heuristic width and height.
	width := vg.Length(1.5*float64(2+len(measured))) * vg.Centimeter
	if width < 10*vg.Centimeter {
		width = 10 * vg.Centimeter
	}
	height := 8 * vg.Centimeter

	var c vg.CanvasWriterTo
	switch format {
	case "svg":
		c = vgsvg.New(width, height)
	case "png":
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
	pl.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}
