package geom

import "errors"

// ErrInvalidGeometry reports geometric input a call cannot act on: non-finite
// coordinates, a non-positive conic weight, or a degenerate tangent-circle
// construction in [Path.ArcTo]. The failed call leaves the path unchanged.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrInvalidArgument reports an out-of-range parameter with a defined domain,
// such as a line count below one in [Path.ConvertToLines] or an arc-length
// query on an empty path.
var ErrInvalidArgument = errors.New("invalid argument")
