package timsort

import "errors"

// ErrInvalidRange is returned when an internal boundary fails first <= last.
// Slice-based callers cannot construct this directly; it guards run and
// stack arithmetic inside the driver and merger.
var ErrInvalidRange = errors.New("timsort: invalid range")

// ErrInvalidPolicyAction is returned when a Policy's MergeAction or
// MergeAction3 returns a value outside {MergeYX, MergeZY, MergeNothing}.
var ErrInvalidPolicyAction = errors.New("timsort: policy returned an invalid merge action")
