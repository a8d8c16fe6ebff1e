package joint

import (
	"math"

	"github.com/matzehuels/fingerbox/pkg/errors"
)

// MaxSegments bounds the number of segments on a single edge. Sub-millimetre
// fingers on a long edge would otherwise produce tens of thousands of
// vertices.
const MaxSegments = 2001

// segmentEps absorbs floating point noise in length/width divisions, so that
// 100/10 counts as exactly 10 segments.
const segmentEps = 1e-9

// FingerSpec selects how an edge is divided into fingers. It is a closed sum
// type: the only implementations are [ByWidth] and [ByCount].
type FingerSpec interface {
	fingerSpec()
}

// ByWidth requests fingers of approximately Width; the count is derived from
// the edge length.
type ByWidth struct {
	Width float64 `json:"width" toml:"width"`
}

// ByCount requests exactly Count fingers; their width is derived from the edge
// length.
type ByCount struct {
	Count int `json:"count" toml:"count"`
}

func (ByWidth) fingerSpec() {}
func (ByCount) fingerSpec() {}

// Layout is the division of one edge into segments.
type Layout struct {
	Segments int     // n, always odd
	Width    float64 // length / n
	Fingers  int     // (n-1)/2
}

// Divide derives the segment layout of an edge of the given length.
func Divide(length float64, spec FingerSpec) (Layout, error) {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Layout{}, errors.InvalidDimension("length", nil, "edge length must be positive, got %g", length)
	}

	var n int
	switch s := spec.(type) {
	case ByWidth:
		if s.Width <= 0 || math.IsNaN(s.Width) || math.IsInf(s.Width, 0) {
			return Layout{}, errors.InvalidDimension("finger.width", nil, "finger width must be positive, got %g", s.Width)
		}
		if s.Width >= length/2 {
			return Layout{}, errors.InvalidDimension("finger.width", nil,
				"finger width %g must be less than half the edge length %g", s.Width, length)
		}
		ratio := length / s.Width
		if ratio > MaxSegments {
			return Layout{}, errors.InvalidDimension("finger.width", nil,
				"finger width %g yields more than %d segments on a %g edge", s.Width, MaxSegments, length)
		}
		n = int(math.Floor(ratio + segmentEps))
		if n%2 == 0 {
			n++
		}
	case ByCount:
		if s.Count < 1 {
			return Layout{}, errors.InvalidDimension("finger.count", nil, "finger count must be at least 1, got %d", s.Count)
		}
		if 2*s.Count+1 > MaxSegments {
			return Layout{}, errors.InvalidDimension("finger.count", nil, "finger count %d exceeds %d", s.Count, (MaxSegments-1)/2)
		}
		n = 2*s.Count + 1
	case nil:
		return Layout{}, errors.Configuration("finger", "finger spec is required")
	default:
		return Layout{}, errors.Configuration("finger", "unsupported finger spec %T", spec)
	}

	l := Layout{Segments: n, Width: length / float64(n), Fingers: (n - 1) / 2}
	if l.Fingers < 1 {
		return Layout{}, errors.InvalidDimension("finger", nil, "edge of length %g has no room for a finger", length)
	}
	return l, nil
}

// SpecField returns the parameter name a finger spec is configured through,
// for error attribution.
func SpecField(spec FingerSpec) string {
	switch spec.(type) {
	case ByWidth:
		return "finger.width"
	case ByCount:
		return "finger.count"
	default:
		return "finger"
	}
}
