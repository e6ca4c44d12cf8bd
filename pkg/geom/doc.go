// Package geom provides the small set of 2D value types shared by the
// adaptation engine: vectors, sizes, rectangles and affine matrices.
//
// Every type is a plain value. Operations return new values and never
// mutate their receivers, so snapshots built from them can be shared freely
// between passes.
//
// Coordinate spaces used throughout screenfit:
//
//   - viewport space: physical pixels reported by the host
//   - design space: the authoring resolution elements are placed in
//   - buffer space: the backing buffer, which is design space with axes
//     swapped when forced rotation is active
//   - style space: the on-screen size of the buffer after scaling
package geom
