package segment

import (
	"math"

	"github.com/matzehuels/segaxis/pkg/errors"
)

const (
	// DefaultSplitNumber is the number of major intervals a segment is cut
	// into when its SplitNumber is unset.
	DefaultSplitNumber = 5

	// DefaultTickPixels is the pixel width of one major interval for
	// segments sized by tick pixels rather than by proportional length.
	DefaultTickPixels = 5.0

	// DefaultMinorSplitNumber is the axis-wide minor subdivision count.
	DefaultMinorSplitNumber = 5

	// MaxSplitNumber bounds SplitNumber and MinorSplitNumber of a segment
	// and the axis-wide minor subdivision count.
	MaxSplitNumber = 1000

	// MaxTicks bounds the number of major intervals across a set.
	MaxTicks = 10000

	// MaxMinorTicks bounds the number of minor subdivisions across a set.
	MaxMinorTicks = 100000

	eps = 1e-9
)

// Spec describes one contiguous sub-range of an axis domain as configured
// by the user. Zero values of the optional fields mean "unset".
type Spec struct {
	From float64 `json:"from" toml:"from"`
	To   float64 `json:"to" toml:"to"`

	// SplitNumber is the number of major intervals (default 5).
	SplitNumber int `json:"split_number,omitempty" toml:"split_number,omitempty"`

	// MinorSplitNumber overrides the axis minor subdivision for gaps
	// between this segment's major ticks.
	MinorSplitNumber int `json:"minor_split_number,omitempty" toml:"minor_split_number,omitempty"`

	// Length is a fraction of the total axis length. Any positive Length
	// in a set switches the whole set to explicit sizing.
	Length float64 `json:"length,omitempty" toml:"length,omitempty"`

	// TickPixels sizes a segment without Length in explicit mode as
	// TickPixels × SplitNumber (default 5).
	TickPixels float64 `json:"tick_pixels,omitempty" toml:"tick_pixels,omitempty"`
}

// Splits returns SplitNumber with the default applied.
func (s Spec) Splits() int {
	if s.SplitNumber <= 0 {
		return DefaultSplitNumber
	}
	return s.SplitNumber
}

// Interval returns the data distance between two major ticks.
func (s Spec) Interval() float64 {
	return (s.To - s.From) / float64(s.Splits())
}

// Span returns To - From.
func (s Spec) Span() float64 { return s.To - s.From }

// Contains reports whether v lies in [From, To].
func (s Spec) Contains(v float64) bool { return v >= s.From && v <= s.To }

func (s Spec) tickPixels() float64 {
	if s.TickPixels <= 0 {
		return DefaultTickPixels
	}
	return s.TickPixels
}

// Set is a validated, ordered, contiguous list of segment specs.
// The zero Set is empty and invalid; use NewSet.
type Set struct {
	specs []Spec
}

// NewSet validates specs and returns an immutable Set holding a copy.
//
// The list must be non-empty, every span must be positive, consecutive
// segments must touch (to[i] == from[i+1] within 1e-9; the next From is
// snapped to the previous To), and the optional fields must not be
// negative. Split numbers are capped at MaxSplitNumber, the total number of
// major intervals at MaxTicks, and the Lengths must not add up to more than
// the whole axis. A zero SplitNumber is normalized to DefaultSplitNumber.
func NewSet(specs []Spec) (Set, error) {
	if len(specs) == 0 {
		return Set{}, errors.New(errors.ErrCodeInvalidSegments, "at least one segment is required")
	}

	var ticks int
	var length float64
	out := make([]Spec, len(specs))
	for i, s := range specs {
		if err := validate(i, s); err != nil {
			return Set{}, err
		}
		if i > 0 {
			prev := out[i-1].To
			if math.Abs(prev-s.From) > eps {
				return Set{}, errors.New(errors.ErrCodeInvalidSegments,
					"segment %d: from %v does not continue previous to %v", i, s.From, prev)
			}
			s.From = prev
		}
		s.SplitNumber = s.Splits()
		out[i] = s
		ticks += s.SplitNumber
		length += s.Length
	}
	if ticks > MaxTicks {
		return Set{}, errors.New(errors.ErrCodeInvalidSegments,
			"segments have %d major intervals (max %d)", ticks, MaxTicks)
	}
	if length > 1+eps {
		return Set{}, errors.New(errors.ErrCodeInvalidSegments,
			"segment lengths add up to %v (max 1)", length)
	}
	return Set{specs: out}, nil
}

func validate(i int, s Spec) error {
	switch {
	case math.IsNaN(s.From) || math.IsNaN(s.To) || math.IsInf(s.From, 0) || math.IsInf(s.To, 0):
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: bounds must be finite", i)
	case s.To <= s.From:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: to (%v) must exceed from (%v)", i, s.To, s.From)
	case s.SplitNumber < 0:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: split_number cannot be negative", i)
	case s.SplitNumber > MaxSplitNumber:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: split_number exceeds %d", i, MaxSplitNumber)
	case s.MinorSplitNumber < 0:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: minor_split_number cannot be negative", i)
	case s.MinorSplitNumber > MaxSplitNumber:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: minor_split_number exceeds %d", i, MaxSplitNumber)
	case math.IsNaN(s.Length) || math.IsInf(s.Length, 0) || math.IsNaN(s.TickPixels) || math.IsInf(s.TickPixels, 0):
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: length and tick_pixels must be finite", i)
	case s.Length < 0:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: length cannot be negative", i)
	case s.TickPixels < 0:
		return errors.New(errors.ErrCodeInvalidSegments, "segment %d: tick_pixels cannot be negative", i)
	}
	return nil
}

// CheckMinorTicks reports an error when subdividing every major interval,
// by its segment's MinorSplitNumber or else minorDefault, would produce more
// than MaxMinorTicks minor steps. A trailing segment added by Extend is
// counted with the default split number.
func (s Set) CheckMinorTicks(minorDefault int) error {
	if minorDefault <= 0 {
		minorDefault = DefaultMinorSplitNumber
	}
	if minorDefault > MaxSplitNumber {
		return errors.New(errors.ErrCodeInvalidSegments, "minor_split_number exceeds %d", MaxSplitNumber)
	}
	total := DefaultSplitNumber * minorDefault
	for _, sp := range s.specs {
		k := sp.MinorSplitNumber
		if k <= 0 {
			k = minorDefault
		}
		total += sp.Splits() * k
	}
	if total > MaxMinorTicks {
		return errors.New(errors.ErrCodeInvalidSegments,
			"segments have %d minor intervals (max %d)", total, MaxMinorTicks)
	}
	return nil
}

// Len returns the number of segments.
func (s Set) Len() int { return len(s.specs) }

// At returns the i-th spec.
func (s Set) At(i int) Spec { return s.specs[i] }

// Specs returns a copy of the specs.
func (s Set) Specs() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Coverage returns [first.From, last.To].
func (s Set) Coverage() [2]float64 {
	if len(s.specs) == 0 {
		return [2]float64{}
	}
	return [2]float64{s.specs[0].From, s.specs[len(s.specs)-1].To}
}

// Extend returns the specs followed by a trailing segment reaching max when
// max lies beyond the last configured To. The trailing segment uses the
// default split number. The receiver is not modified.
func (s Set) Extend(max float64) []Spec {
	out := s.Specs()
	if n := len(out); n > 0 && max > out[n-1].To {
		out = append(out, Spec{
			From:        out[n-1].To,
			To:          max,
			SplitNumber: DefaultSplitNumber,
		})
	}
	return out
}
