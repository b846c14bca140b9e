// Package classing maps absolute text positions to key-wheel equivalence
// classes. Schemes are pure and total: any non-negative index yields a class.
package classing

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheme assigns every position index to one of a fixed number of classes.
type Scheme struct {
	id      string
	classes int
	fn      func(int) int
}

// ID is the stable identifier used in plans and result records.
func (s Scheme) ID() string { return s.id }

// Classes is the number of distinct class ids the scheme can yield.
func (s Scheme) Classes() int { return s.classes }

// ClassOf maps index i to its class. Pure and deterministic.
func (s Scheme) ClassOf(i int) int { return s.fn(i) }

// SixTrack is the parity/triality scheme ((i mod 2) * 3) + (i mod 3),
// yielding six classes with period six.
func SixTrack() Scheme {
	return Scheme{
		id:      "six-track",
		classes: 6,
		fn:      func(i int) int { return (i%2)*3 + i%3 },
	}
}

// GridColumns classes positions by column of a grid of the given width.
func GridColumns(width int) Scheme {
	return Scheme{
		id:      fmt.Sprintf("columns:%d", width),
		classes: width,
		fn:      func(i int) int { return i % width },
	}
}

// GridRows classes positions by row of a width×height grid, wrapping after
// height rows so the scheme stays total.
func GridRows(width, height int) Scheme {
	return Scheme{
		id:      fmt.Sprintf("rows:%dx%d", width, height),
		classes: height,
		fn:      func(i int) int { return (i / width) % height },
	}
}

// Identity places every position in a single class.
func Identity() Scheme {
	return Scheme{
		id:      "identity",
		classes: 1,
		fn:      func(int) int { return 0 },
	}
}

// ByID resolves a scheme identifier: "six-track", "identity", "columns:W"
// or "rows:WxH".
func ByID(id string) (Scheme, error) {
	switch {
	case id == "six-track":
		return SixTrack(), nil
	case id == "identity":
		return Identity(), nil
	case strings.HasPrefix(id, "columns:"):
		w, err := strconv.Atoi(strings.TrimPrefix(id, "columns:"))
		if err != nil || w <= 0 {
			return Scheme{}, fmt.Errorf("bad column scheme %q", id)
		}
		return GridColumns(w), nil
	case strings.HasPrefix(id, "rows:"):
		dims := strings.SplitN(strings.TrimPrefix(id, "rows:"), "x", 2)
		if len(dims) == 2 {
			w, errW := strconv.Atoi(dims[0])
			h, errH := strconv.Atoi(dims[1])
			if errW == nil && errH == nil && w > 0 && h > 0 {
				return GridRows(w, h), nil
			}
		}
		return Scheme{}, fmt.Errorf("bad row scheme %q", id)
	}
	return Scheme{}, fmt.Errorf("unknown classing scheme %q", id)
}
