// Package text provides the small padding/coalescing primitives the
// to-pattern formatter pipeline applies after a substitution is resolved.
package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Alignment selects which side of a padded string absorbs the shim runes.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Coalesce replaces every rune in from with to.
func Coalesce(s string, from []rune, to rune) string {
	set := make(map[rune]bool, len(from))
	for _, r := range from {
		set[r] = true
	}
	var b strings.Builder
	for _, r := range s {
		if set[r] {
			b.WriteRune(to)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pad widens s to width display columns using shim, aligned per alignment.
// If s already measures at least width columns, it is returned unchanged.
func Pad(s string, shim rune, alignment Alignment, width int) string {
	n := uniseg.StringWidth(s)
	if n >= width {
		return s
	}
	margin := width - n
	var left, right int
	switch alignment {
	case AlignLeft:
		left, right = 0, margin
	case AlignRight:
		left, right = margin, 0
	case AlignCenter:
		left = margin / 2
		right = margin - left
	}
	var b strings.Builder
	for i := 0; i < left; i++ {
		b.WriteRune(shim)
	}
	b.WriteString(s)
	for i := 0; i < right; i++ {
		b.WriteRune(shim)
	}
	return b.String()
}
