// Package decal generates deterministic splatter ornaments for staircase cells.
//
// A Generator derives a per-cell seed from its global seed and the cell index, draws
// a fixed sequence from a Mulberry32 stream, and memoizes the resulting Record.
// Records are expressed in cell-normalized anchors plus pixel sizes proportional to
// the nominal cell width the generator was configured with; renderers scale anchors
// by the actual cell size.
//
// Records returned by a Generator are shared and must be treated as read-only.
package decal
