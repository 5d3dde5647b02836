// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input tracks pointer state for a window, one frame at a time.

The frame driver queues the platform's pointer events on a [State] and
calls [State.Frame] once per frame. The resulting [Frame] is a
snapshot that widgets query: pointer position, per-frame delta and
velocity, wheel scrolling, the time since the previous frame and the
aggregated multi-touch gesture.
*/
package input
