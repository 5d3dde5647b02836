// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides operations for clipping paint operations.
Drawing outside the current clip area is ignored.

The current clip is initially the infinite set. Pushing a Rect sets the
clip to the intersection of the current clip and the rectangle. Popping
the area restores the clip to its state before pushing.
*/
package clip
