// Package segment divides a one-dimensional data domain into contiguous
// segments and distributes an axis's pixel length over them.
//
// # Overview
//
// A segmented axis does not map data to pixels with a single linear
// function. Each [Spec] covers a sub-range [From, To] of the domain with its
// own number of major intervals and its own share of the axis. [Layout]
// turns a list of specs plus the axis length into one [Geometry] per
// segment.
//
// # Sizing Modes
//
//   - Explicit: if any spec sets Length, each segment gets Length × axis
//     length, or TickPixels × SplitNumber when it has no Length.
//   - Uniform: otherwise every major interval on the axis gets the same
//     number of pixels. If the first segment subdivides its intervals with
//     a non-default MinorSplitNumber, its size is corrected so minor steps
//     stay the same pixel width across the first boundary.
//
// In both modes the last segment absorbs the rounding remainder, so the
// sizes always sum to the axis length.
//
// # Validation
//
// Specs are validated once by [NewSet]. Layout itself never fails; it
// assumes a validated, contiguous input.
package segment
