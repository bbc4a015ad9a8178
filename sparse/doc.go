// Package sparse is a hashed backend for unbounded or mostly empty maps.
//
// Only open tiles are stored, in a hash set; every other coordinate is solid
// rock. Scratch channels are hash maps that hold only the tiles an algorithm
// touched, so ClearDistance costs O(touched) instead of O(area).
//
// Every Point is in bounds for a sparse Map, so no operation panics.
package sparse
