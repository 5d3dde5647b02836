// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements layouts whose state outlives the frame:
// scroll areas, grids and multi-touch views. Widget values are
// configuration and are usually created anew every frame. Their
// state is kept in the memory of the layout context, keyed by an ID
// derived from the context and an ID source.
package widget
