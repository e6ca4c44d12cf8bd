// Package widget re-anchors registered elements and resizes full-bleed
// shapes after every adaptation pass.
//
// Elements are described by two small interfaces, [Positionable] and
// [Resizable], so any renderable that exposes a position, a normalized pivot
// and a size can participate. [Box] is a ready-made implementation used by
// the CLI and previews.
//
// Arranging is split in two steps so a pass can be committed atomically:
// [Arrange] computes a [Move] per element without touching it, and
// [Move.Apply] writes the result.
package widget
