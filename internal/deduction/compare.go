package deduction

import "svw.info/starbattle/internal/domain"

// Tighter picks the more specific of two same-key deductions. The order is
// total per kind: an exact star count beats any bound, and between two bound
// pairs the narrower [min,max] range wins. Ties keep the earlier deduction so
// merging stays stable.
func Tighter(a, b domain.Deduction) domain.Deduction {
	aExact := a.StarsRequired != domain.Unspec
	bExact := b.StarsRequired != domain.Unspec
	switch {
	case aExact && !bExact:
		return a
	case bExact && !aExact:
		return b
	case aExact && bExact:
		return a
	}
	if boundWidth(b) < boundWidth(a) {
		return b
	}
	return a
}

// boundWidth measures the [min,max] spread; unset bounds count as maximally
// loose so any stated bound beats an absent one.
func boundWidth(d domain.Deduction) int {
	const loose = 1 << 20
	lo, hi := 0, loose
	if d.MinStars != domain.Unspec {
		lo = d.MinStars
	}
	if d.MaxStars != domain.Unspec {
		hi = d.MaxStars
	}
	return hi - lo
}
