// Package fov computes field of view by brute-force ray marching.
//
// FieldOfView marks the origin, then walks rings of radius 1..r with a
// midpoint-circle recurrence. Every ring point of the first octant yields 8
// symmetric targets, and a Bresenham ray is cast from the origin to each.
// A ray marks tiles outward through tilemap.SightMap.MarkVisible and stops
// right after the first tile that reports itself opaque: that tile is
// visible, nothing behind it on the ray is.
//
// Adjacent rays overlap and tiles get marked many times. No shadow casting
// is attempted; the method needs no workspace and no allocation.
//
// Complexity: O(r³) MarkVisible calls for radius r.
package fov
