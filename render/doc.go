// Package render turns a boundary and an escape trace into pixels.
//
// Viewport maps world coordinates (y up) onto a canvas (y down) so that the
// boundary's bounding box fits with uniform scale and padding. SavePNG draws
// a headless snapshot with gogpu/gg; cmd/escapeview reuses Viewport and
// Palette for its live window.
package render
