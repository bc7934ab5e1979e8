package geom

import (
	"fmt"
	"sort"
)

const maxBisectDepth = 16

// lengthSample maps a cumulative arc length to the whole-path parameter at
// which it is reached.
type lengthSample struct {
	length float64
	param  float64
}

// Length returns the total arc length of the path: the sum over all contours,
// in authored order, including the implied closing line of closed contours.
// The length is measured on a fresh polyline approximation of the path, so it
// always reflects the current geometry.
func (p *Path) Length() float64 {
	table := p.lengthTable()
	if len(table) == 0 {
		return 0
	}
	return table[len(table)-1].length
}

// ParamAtLength returns the whole-path parameter in [0, 1] at which the
// cumulative arc length equals length. The parameter advances uniformly per
// segment, so it is not linear in arc length within a segment; only the
// mapping computed here relates the two. Out-of-range lengths clamp to the
// nearest endpoint. Calling ParamAtLength on an empty path fails with
// [ErrInvalidArgument].
func (p *Path) ParamAtLength(length float64) (float64, error) {
	table := p.lengthTable()
	if len(table) == 0 {
		return 0, fmt.Errorf("paramAtLength on empty path: %w", ErrInvalidArgument)
	}
	total := table[len(table)-1].length
	if length <= 0 {
		return 0, nil
	}
	if length >= total {
		return 1, nil
	}
	i := sort.Search(len(table), func(i int) bool {
		return table[i].length >= length
	})
	lo, hi := table[i-1], table[i]
	if hi.length == lo.length {
		return hi.param, nil
	}
	frac := (length - lo.length) / (hi.length - lo.length)
	return lo.param + frac*(hi.param-lo.param), nil
}

// lengthTable builds the monotone length → parameter table by adaptively
// bisecting every segment until each chord deviates from the curve by less
// than the flattening tolerance. The table is rebuilt on every query; no
// cached table can go stale when the geometry changes.
func (p *Path) lengthTable() []lengthSample {
	nseg := p.countSegments()
	if nseg == 0 {
		return nil
	}
	table := make([]lengthSample, 1, 2*nseg+1)
	table[0] = lengthSample{0, 0}
	total := 0.0
	span := 1.0 / float64(nseg)
	idx := 0
	for seg := range p.Segments() {
		base := float64(idx) * span
		table = appendSegmentSamples(table, seg, 0, 1, seg.Start(), seg.End(), &total, base, span, 0)
		idx++
	}
	return table
}

func appendSegmentSamples(table []lengthSample, seg Segment, t0, t1 float64, p0, p1 Point, total *float64, base, span float64, depth int) []lengthSample {
	tm := (t0 + t1) / 2
	pm := seg.Eval(tm)
	if depth >= maxBisectDepth || pm.Distance(p0.Midpoint(p1)) <= flattenTolerance {
		*total += p0.Distance(pm)
		table = append(table, lengthSample{*total, base + span*tm})
		*total += pm.Distance(p1)
		return append(table, lengthSample{*total, base + span*t1})
	}
	table = appendSegmentSamples(table, seg, t0, tm, p0, pm, total, base, span, depth+1)
	return appendSegmentSamples(table, seg, tm, t1, pm, p1, total, base, span, depth+1)
}
