package glob

import (
	"fmt"
	"regexp"
	"strings"
)

const pathSeparatorRune = '/'

// Compile builds an anchored regular expression from a token sequence.
// Tree wildcards are encoded according to their position within the exact
// slice passed in (first, interior, last, or sole token), which is why
// Alternative branches are encoded through a fresh, independent call
// rather than by indexing into the parent slice.
func Compile(tokens []Token) (*regexp.Regexp, error) {
	var pattern strings.Builder
	pattern.WriteString("^")
	encode(true, &pattern, tokens)
	pattern.WriteString("$")
	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("glob: compiled pattern rejected by regexp engine: %w", err)
	}
	return re, nil
}

func group(capture bool, pattern *strings.Builder, body string) {
	if capture {
		pattern.WriteString("(")
	} else {
		pattern.WriteString("(?:")
	}
	pattern.WriteString(body)
	pattern.WriteString(")")
}

func encode(capture bool, pattern *strings.Builder, tokens []Token) {
	for i, token := range tokens {
		switch t := token.(type) {
		case Literal:
			pattern.WriteString(regexp.QuoteMeta(string(t)))
		case Separator:
			pattern.WriteString("/")
		case Alternative:
			branches := make([]string, 0, len(t.Branches))
			for _, branch := range t.Branches {
				var b strings.Builder
				b.WriteString("(?:")
				encode(false, &b, branch)
				b.WriteString(")")
				branches = append(branches, b.String())
			}
			group(capture, pattern, strings.Join(branches, "|"))
		case Class:
			group(capture, pattern, encodeClass(t))
		case Wildcard:
			encodeWildcard(capture, pattern, t, tokens, i)
		}
	}
}

func encodeWildcard(capture bool, pattern *strings.Builder, w Wildcard, tokens []Token, i int) {
	switch w.Kind {
	case WildcardOne:
		group(capture, pattern, "[^/]")
	case WildcardZeroOrMoreEager:
		group(capture, pattern, "[^/]*")
	case WildcardZeroOrMoreLazy:
		group(capture, pattern, "[^/]*?")
	case WildcardTree:
		switch wildcardTreePosition(tokens, i) {
		case treeOnly:
			group(capture, pattern, ".*")
		case treeFirst:
			pattern.WriteString("(?:/?|")
			group(capture, pattern, ".*/")
			pattern.WriteString(")")
		case treeMiddle:
			pattern.WriteString("(?:/|/")
			group(capture, pattern, ".*/")
			pattern.WriteString(")")
		case treeLast:
			pattern.WriteString("(?:/?|/")
			group(capture, pattern, ".*")
			pattern.WriteString(")")
		}
	}
}

type treePosition int

const (
	treeOnly treePosition = iota
	treeFirst
	treeMiddle
	treeLast
)

func wildcardTreePosition(tokens []Token, i int) treePosition {
	switch {
	case len(tokens) == 1:
		return treeOnly
	case i == 0:
		return treeFirst
	case i == len(tokens)-1:
		return treeLast
	default:
		return treeMiddle
	}
}

// encodeClass renders a character class, excluding the path separator from
// whatever set the class would otherwise match. The reference engine
// expresses this with a class-intersection operator; Go's regexp (RE2)
// has no such operator, so the exclusion is done by hand: negated classes
// gain `/` as one more excluded character, and non-negated classes have
// any archetype spanning `/` split around it.
func encodeClass(c Class) string {
	var body strings.Builder
	for _, a := range c.Archetypes {
		if c.Negated {
			writeArchetype(&body, a)
			continue
		}
		for _, sub := range excludeSeparator(a) {
			writeArchetype(&body, sub)
		}
	}
	var out strings.Builder
	out.WriteString("[")
	if c.Negated {
		out.WriteString("^")
	}
	out.WriteString(body.String())
	if c.Negated {
		out.WriteString("/")
	}
	out.WriteString("]")
	return out.String()
}

func writeArchetype(b *strings.Builder, a Archetype) {
	b.WriteString(classEscape(a.Lo))
	if a.Hi != a.Lo {
		b.WriteString("-")
		b.WriteString(classEscape(a.Hi))
	}
}

func excludeSeparator(a Archetype) []Archetype {
	if a.Lo > pathSeparatorRune || a.Hi < pathSeparatorRune {
		return []Archetype{a}
	}
	var out []Archetype
	if a.Lo <= pathSeparatorRune-1 {
		out = append(out, Archetype{Lo: a.Lo, Hi: pathSeparatorRune - 1})
	}
	if a.Hi >= pathSeparatorRune+1 {
		out = append(out, Archetype{Lo: pathSeparatorRune + 1, Hi: a.Hi})
	}
	return out
}

func classEscape(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return "\\" + string(r)
	}
	return string(r)
}
