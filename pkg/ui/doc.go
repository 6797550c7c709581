// Package ui provides terminal progress components: an in-place, color-coded
// ProgressBar, an io.Writer adapter that drives it from a copy, and a spinner
// for streams of unknown size.
//
// The bar writes one line per update and never emits a newline until it
// finishes:
//
//	 7/10 ━━━━━━━━━━━━━━━━━━━━ stage: build
//
// The counter is bold, the filled part of the track green and the remainder
// light gray.
package ui
