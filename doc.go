// Package piechart provides a software rasterizer for anti-aliased pie
// charts and the 2D primitives they are composed of.
//
// # Overview
//
// The engine draws directly into a caller-owned 32-bit BGRA pixel buffer:
// anti-aliased circle fills and rings, thick arcs, capsule ("stadium")
// unions, 1px lines, and complete pie charts assembled from (value, color)
// sections. Alpha compositing runs through precomputed 8-bit lookup tables.
//
// # Quick Start
//
//	import piechart "github.com/toehead2001/pdn-pie-chart-legacy"
//
//	dst, _ := piechart.NewSurface(200, 200)
//	err := piechart.DrawPieChart(dst, []piechart.Section{
//		{Value: 1, Color: piechart.Red},
//		{Value: 2, Color: piechart.Blue},
//	})
//
//	_ = dst.SavePNG("chart.png")
//
// # Architecture
//
// The module is organized into:
//   - Public API: Surface, Color, Section, the draw operations
//   - geom: analytic primitives (vectors, lines, circles, arcs, stadiums)
//
// All drawing is pure, single-threaded computation. The only process-wide
// state is the blend lookup tables, built once on first use and read-only
// afterwards. Callers serialize access to a given Surface themselves.
package piechart
