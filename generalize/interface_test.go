package generalize

import "github.com/katalvlaran/ipdr/frame"

// Compile-time check that frame.Sequence satisfies the minimal interface
// MIC/down depend on.
var _ sequence = (*frame.Sequence)(nil)
