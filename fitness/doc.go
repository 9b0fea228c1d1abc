// Package fitness scores an escape Path by its worst case over a grid of
// start conditions: every sample point × HeadingCount evenly spaced initial
// headings.
//
// The score is the MAXIMUM finite escape distance, not the average. Trials
// that never escape (distance ≥ Horizon − Margin) are ignored, otherwise a
// single trapped start would pin every path to the horizon and the optimizer
// could not tell good paths apart. When no trial escapes at all the score is
// the horizon itself, the worst possible value.
//
// Lower is better.
package fitness
