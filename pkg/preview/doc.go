// Package preview renders an adaptation snapshot as it would appear on the
// physical viewport.
//
// A preview shows three layers in viewport pixels:
//
//   - the viewport itself, including any letterbox or pillarbox bars
//   - the displayed surface, positioned by the alignment offset
//   - the registered elements, mapped through the stage rotation, the
//     display ratio and the offset
//
// Three encodings are available: [RenderSVG] for vector output, [RenderPNG]
// for raster output, and [RenderJSON] for the snapshot together with the
// computed screen rectangles.
//
// Rendering is deterministic: identical snapshots and items produce
// byte-identical output, so previews can be cached by content hash.
package preview
