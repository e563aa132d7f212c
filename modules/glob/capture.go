package glob

// Captures holds the submatches produced by matching a compiled glob
// pattern against a path. Index 0 is always the whole match; indices
// 1..N correspond to the pattern's capturing groups in source order,
// counting every top-level Class/Wildcard/Alternative token once. Literal
// and Separator tokens do not capture, and neither do the tokens inside an
// Alternative's branches.
type Captures struct {
	subject string
	indices []int
}

func newCaptures(subject string, indices []int) *Captures {
	return &Captures{subject: subject, indices: indices}
}

// Matched returns the text of the overall match.
func (c *Captures) Matched() string {
	text, _ := c.Get(0)
	return text
}

// Get returns the text of the capture group at index, and whether that
// group participated in the match (an alternative branch that wasn't
// taken leaves its group unset).
func (c *Captures) Get(index int) (string, bool) {
	lo, hi := index*2, index*2+1
	if hi >= len(c.indices) || c.indices[lo] < 0 || c.indices[hi] < 0 {
		return "", false
	}
	return c.subject[c.indices[lo]:c.indices[hi]], true
}

// Len reports the number of capture groups, excluding the whole match.
func (c *Captures) Len() int {
	if len(c.indices) == 0 {
		return 0
	}
	return len(c.indices)/2 - 1
}
