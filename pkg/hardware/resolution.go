package hardware

import (
	"strings"

	"github.com/pkg/errors"
)

// Resolution is one of the supported target resolutions.
type Resolution string

const (
	Res768p  Resolution = "1024x768"
	Res1080p Resolution = "1920x1080"
	Res1440p Resolution = "2560x1440"
	Res2160p Resolution = "3840x2160"
)

// DefaultResolution is used when the caller does not choose one.
const DefaultResolution = Res1080p

// Resolutions lists the supported resolutions, lowest first.
func Resolutions() (list []Resolution) {
	list = []Resolution{Res768p, Res1080p, Res1440p, Res2160p}
	return list
}

// ParseResolution accepts "1920x1080" style strings (case-insensitive "X" too).
func ParseResolution(s string) (res Resolution, err error) {
	candidate := Resolution(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range Resolutions() {
		if r == candidate {
			res = r
			return res, err
		}
	}
	err = errors.Errorf("unsupported resolution %q (choose one of 1024x768, 1920x1080, 2560x1440, 3840x2160)", s)
	return res, err
}

// BottleneckMultiplier scales the weighted GPU score in the bottleneck estimator.
// It is a different table from RequirementMultiplier.
func (r Resolution) BottleneckMultiplier() (m float32) {
	switch r {
	case Res768p:
		m = 0.3
	case Res1080p:
		m = 1.0
	case Res1440p:
		m = 2.0
	case Res2160p:
		m = 3.0
	default:
		m = 1.0
	}
	return m
}

// RequirementMultiplier scales a game's requirement scores in the adequacy analyzer.
func (r Resolution) RequirementMultiplier() (m float32) {
	switch r {
	case Res768p:
		m = 0.6
	case Res1080p:
		m = 1.0
	case Res1440p:
		m = 1.6
	case Res2160p:
		m = 2.8
	default:
		m = 1.0
	}
	return m
}

// IsLowest reports whether r is the lowest supported tier.
func (r Resolution) IsLowest() bool { return r == Res768p }

func (r Resolution) String() string { return string(r) }
