package glob

// RuleError reports a structurally invalid, but otherwise parseable, glob.
type RuleError struct {
	msg string
}

func (e *RuleError) Error() string { return e.msg }

var (
	errAlternativeTree        = &RuleError{msg: "invalid tree wildcard `**` in alternative"}
	errAlternativeZeroOrMore  = &RuleError{msg: "invalid zero-or-more wildcard `*` or `$` in alternative"}
)

// Check validates structural rules that the parser alone cannot enforce:
// an alternative branch must not reduce to a lone tree wildcard, must not
// place a tree wildcard at a branch edge adjacent to another token, and
// must not place a lone zero-or-more token (or one at a branch edge) next
// to another zero-or-more token outside the alternative.
func Check(tokens []Token) error {
	return checkComponents(Components(tokens), nil, nil)
}

func checkComponents(components []Component, parentLeft, parentRight Token) error {
	for _, component := range components {
		toks := component.Tokens
		for i, tok := range toks {
			alt, ok := tok.(Alternative)
			if !ok {
				continue
			}
			var left, right Token
			if i > 0 {
				left = toks[i-1]
			} else {
				left = parentLeft
			}
			if i+1 < len(toks) {
				right = toks[i+1]
			} else {
				right = parentRight
			}
			for _, branch := range alt.Branches {
				if len(branch) == 0 {
					continue
				}
				if err := checkTerminals(branch, left, right); err != nil {
					return err
				}
				if err := checkComponents(Components(branch), left, right); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isTree(t Token) bool {
	w, ok := t.(Wildcard)
	return ok && w.Kind == WildcardTree
}

func isZeroOrMoreToken(t Token) bool {
	w, ok := t.(Wildcard)
	return ok && (w.Kind == WildcardZeroOrMoreEager || w.Kind == WildcardZeroOrMoreLazy)
}

func checkTerminals(branch []Token, left, right Token) error {
	first := branch[0]
	last := branch[len(branch)-1]

	if len(branch) == 1 {
		if isTree(first) {
			// A branch that is nothing but `**`, e.g. `{foo,**}`.
			return errAlternativeTree
		}
		if isZeroOrMoreToken(first) && (isZeroOrMoreToken(left) || isZeroOrMoreToken(right)) {
			// e.g. `foo*{bar,*,baz}`.
			return errAlternativeZeroOrMore
		}
		return nil
	}

	if isTree(first) && left != nil {
		// The alternative is prefixed, e.g. `foo{bar,**/baz}`.
		return errAlternativeTree
	}
	if isTree(last) && right != nil {
		// The alternative is postfixed, e.g. `{foo,bar/**}baz`.
		return errAlternativeTree
	}
	if isZeroOrMoreToken(first) && isZeroOrMoreToken(left) {
		// e.g. `foo*{bar,*baz}`.
		return errAlternativeZeroOrMore
	}
	if isZeroOrMoreToken(last) && isZeroOrMoreToken(right) {
		// e.g. `{foo,bar*}*baz`.
		return errAlternativeZeroOrMore
	}
	return nil
}
