// Package geom provides the analytic 2D geometry primitives behind the
// pie-chart rasterizer: vectors, lines in general and normalized form,
// circles, arcs, segments, and stadiums (capsules).
//
// All types are plain values; operations return new values rather than
// mutating receivers. Scanline intersection queries return an explicit ok
// flag instead of NaN sentinels: the rasterizer calls them once per pixel
// row and treats a false result as "skip this row".
//
// Degenerate inputs (zero-length vectors, zero-radius circles, coincident
// lines) are tolerated everywhere and answered with a defined failure
// signal. Operations that would divide by a vanished coefficient, such as
// XAt on a horizontal line, document the predicate the caller must check
// first; guarding inside the per-pixel loops would be too expensive.
package geom
