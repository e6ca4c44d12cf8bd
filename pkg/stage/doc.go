// Package stage computes the quarter-turn compensation applied to content
// when the presentation orientation differs from the device orientation.
//
// Two independent pieces are produced per pass:
//
//   - [Transform]: content rotation, rotation pivot, world bounds and the
//     remapped camera bounds, recomputed from scratch every pass.
//   - [PinFunc]: the single shared function that elements pinned to the
//     viewport (rather than to rotated content) use to find their screen
//     position. Pinned elements receive it by injection; nothing on the host
//     is patched.
package stage
