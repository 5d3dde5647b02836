// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

FillOp fills a rectangle with rounded corners, StrokeOp outlines one
and LineOp draws a line segment. All operations respect the current
clip area. The operations are recorded only; rasterizing them is left
to the rendering backend.
*/
package paint
