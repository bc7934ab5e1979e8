// Package geom implements a 2D path and boolean geometry kernel.
//
// The central type is [Path], a mutable value made of contours, which in turn
// are ordered sequences of drawing verbs (move, line, cubic Bézier, rational
// conic, quadratic Bézier, close). Paths are built with the verb methods and
// the composite builders ([Path.AddRect], [Path.AddEllipse], [Path.ArcTo],
// [Path.AddText]), transformed with affine maps, measured (length, arc-length
// inversion, bounding box), flattened and resampled, and combined with the
// boolean set operations [Path.Intersect], [Path.Unite] and [Path.Difference].
//
// # Curves
//
// The evaluators are small value types: [Line], [QuadBez], [CubicBez] and the
// rational [ConicBez]. A conic with weight 1 is exactly a quadratic Bézier;
// weights below 1 give elliptical segments and weights above 1 hyperbolic
// ones. Curve parameters t ∈ [0, 1] travel along the control cage and are not
// linear in arc length; [Path.ParamAtLength] performs the inversion.
//
// # Ownership and errors
//
// A Path is a plain value owned by its caller. Mutating methods mutate the
// receiver in place; a failed call reports either [ErrInvalidGeometry] or
// [ErrInvalidArgument] and leaves the path untouched. Boolean and flattening
// operations never fail for finite input, however degenerate: they produce a
// best-effort result under the even-odd fill rule.
//
// # Literature
//
// The flattening follows [Flattening quadratic Béziers] by Raph Levien; conic
// evaluation and subdivision use the standard homogeneous-coordinate
// formulation of rational Béziers (see [A Primer on Bézier Curves]).
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package geom
