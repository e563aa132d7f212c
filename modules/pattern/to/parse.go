package to

import (
	"fmt"
	"strconv"
)

// ParseError reports a malformed to-pattern.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...any) error {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

type parser struct {
	text string
	pos  int
}

// Parse tokenizes a to-pattern. The grammar is hand-written recursive
// descent (mirroring the nom grammar this dialect was translated from): at
// every position outside a `{...}` slot, text is literal; inside one, a
// capture substitution is attempted before falling back to a property
// substitution.
func Parse(text string) ([]Token, error) {
	p := &parser{text: text}
	var tokens []Token
	for p.pos < len(p.text) {
		if tok, ok, err := p.attemptLiteral(); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
			continue
		}
		if tok, ok, err := p.attemptSubstitution(); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
			continue
		}
		return nil, parseErrorf("unexpected character at byte %d in to-pattern %q", p.pos, text)
	}
	if len(tokens) == 0 {
		return nil, parseErrorf("empty to-pattern")
	}
	return tokens, nil
}

func isEscapableToChar(c byte) bool {
	switch c {
	case '[', ']', '{', '}', '\\':
		return true
	}
	return false
}

// attemptLiteral consumes a run of text outside `{}`, honoring `\` escapes
// of `[ ] { } \`.
func (p *parser) attemptLiteral() (Token, bool, error) {
	start := p.pos
	var text []byte
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		if c == '{' || c == '}' {
			break
		}
		if c == '\\' {
			if p.pos+1 >= len(p.text) || !isEscapableToChar(p.text[p.pos+1]) {
				return nil, false, parseErrorf("invalid escape at byte %d", p.pos)
			}
			text = append(text, p.text[p.pos+1])
			p.pos += 2
			continue
		}
		text = append(text, c)
		p.pos++
	}
	if len(text) == 0 {
		p.pos = start
		return nil, false, nil
	}
	return Literal(text), true, nil
}

// attemptArgument parses a `[...]` bracketed argument, where `[`, `]`, and
// `\` must be escaped with `\`. An empty argument (`[]`) is valid.
func (p *parser) attemptArgument() (string, bool) {
	if p.pos >= len(p.text) || p.text[p.pos] != '[' {
		return "", false
	}
	start := p.pos
	pos := p.pos + 1
	var text []byte
	for pos < len(p.text) {
		c := p.text[pos]
		if c == ']' {
			break
		}
		if c == '\\' {
			if pos+1 >= len(p.text) || !isEscapableToChar(p.text[pos+1]) {
				p.pos = start
				return "", false
			}
			text = append(text, p.text[pos+1])
			pos += 2
			continue
		}
		if c == '[' {
			p.pos = start
			return "", false
		}
		text = append(text, c)
		pos++
	}
	if pos >= len(p.text) || p.text[pos] != ']' {
		p.pos = start
		return "", false
	}
	p.pos = pos + 1
	return string(text), true
}

func (p *parser) attemptSubstitution() (Token, bool, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '{' {
		return nil, false, nil
	}
	if tok, ok, err := p.attemptCapture(); err != nil || ok {
		return tok, ok, err
	}
	return p.attemptProperty()
}

// attemptCapture tries to parse `{identifier condition? formatters?}`,
// backtracking entirely if what follows the identifier/condition/formatters
// isn't the closing brace (in which case attemptProperty gets a turn).
func (p *parser) attemptCapture() (Token, bool, error) {
	start := p.pos
	pos := p.pos + 1

	sub := &parser{text: p.text, pos: pos}
	identifier := sub.attemptIdentifier()
	condition, err := sub.attemptCondition()
	if err != nil {
		p.pos = start
		return nil, false, nil
	}
	formatters, err := sub.attemptFormatters()
	if err != nil {
		p.pos = start
		return nil, false, nil
	}
	if sub.pos >= len(sub.text) || sub.text[sub.pos] != '}' {
		p.pos = start
		return nil, false, nil
	}
	p.pos = sub.pos + 1
	return Substitution{
		Subject:    Capture{Identifier: identifier},
		Condition:  condition,
		Formatters: formatters,
	}, true, nil
}

func (p *parser) attemptIdentifier() Identifier {
	if p.pos < len(p.text) && p.text[p.pos] == '#' {
		start := p.pos + 1
		pos := start
		for pos < len(p.text) && p.text[pos] >= '0' && p.text[pos] <= '9' {
			pos++
		}
		if pos > start {
			n, err := strconv.Atoi(p.text[start:pos])
			if err == nil {
				p.pos = pos
				return IndexIdentifier(n)
			}
		}
	}
	if p.pos < len(p.text) && p.text[p.pos] == '@' {
		sub := &parser{text: p.text, pos: p.pos + 1}
		if name, ok := sub.attemptArgument(); ok {
			p.pos = sub.pos
			return NameIdentifier(name)
		}
	}
	return IndexIdentifier(0)
}

// attemptCondition parses an optional `?non_empty?:empty?` clause.
func (p *parser) attemptCondition() (*Condition, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '?' {
		return nil, nil
	}
	start := p.pos
	pos := p.pos + 1
	sub := &parser{text: p.text, pos: pos}

	var nonEmpty NonEmptyCase
	if prefix, ok := sub.attemptArgument(); ok {
		if sub.pos < len(sub.text) && sub.text[sub.pos] == ',' {
			sub.pos++
			postfix, ok := sub.attemptArgument()
			if !ok {
				p.pos = start
				return nil, parseErrorf("malformed condition surround at byte %d", start)
			}
			nonEmpty = Surround{Prefix: prefix, Postfix: postfix}
		} else {
			nonEmpty = NonEmptyLiteral(prefix)
		}
	}
	if sub.pos >= len(sub.text) || sub.text[sub.pos] != ':' {
		p.pos = start
		return nil, parseErrorf("condition missing ':' at byte %d", start)
	}
	sub.pos++
	var empty *EmptyCase
	if text, ok := sub.attemptArgument(); ok {
		e := EmptyCase(text)
		empty = &e
	}
	p.pos = sub.pos
	return &Condition{NonEmpty: nonEmpty, Empty: empty}, nil
}

// attemptFormatters parses an optional `|f,f,...` pipeline.
func (p *parser) attemptFormatters() ([]TextFormatter, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '|' {
		return nil, nil
	}
	pos := p.pos + 1
	sub := &parser{text: p.text, pos: pos}
	var formatters []TextFormatter
	for {
		f, err := sub.attemptFormatter()
		if err != nil {
			return nil, err
		}
		formatters = append(formatters, f)
		if sub.pos < len(sub.text) && sub.text[sub.pos] == ',' {
			sub.pos++
			continue
		}
		break
	}
	p.pos = sub.pos
	return formatters, nil
}

func hasFold(text string, pos int, word string) bool {
	if pos+len(word) > len(text) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := text[pos+i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

func (p *parser) attemptFormatter() (TextFormatter, error) {
	if p.pos < len(p.text) {
		switch p.text[p.pos] {
		case '%':
			return p.attemptCoalesceFormatter()
		case '<', '^', '>':
			return p.attemptPadFormatter()
		}
	}
	for _, kw := range []struct {
		word string
		f    TextFormatter
	}{
		{"lower", Lower{}},
		{"title", Title{}},
		{"upper", Upper{}},
	} {
		if hasFold(p.text, p.pos, kw.word) {
			p.pos += len(kw.word)
			return kw.f, nil
		}
	}
	return nil, parseErrorf("unrecognized formatter at byte %d", p.pos)
}

func (p *parser) attemptCoalesceFormatter() (TextFormatter, error) {
	pos := p.pos + 1
	sub := &parser{text: p.text, pos: pos}
	from, ok := sub.attemptArgument()
	if !ok {
		return nil, parseErrorf("malformed coalesce formatter at byte %d", p.pos)
	}
	to, ok := sub.attemptArgument()
	if !ok || len([]rune(to)) != 1 {
		return nil, parseErrorf("coalesce formatter target must be exactly one character, at byte %d", p.pos)
	}
	p.pos = sub.pos
	return Coalesce{From: []rune(from), To: []rune(to)[0]}, nil
}

func (p *parser) attemptPadFormatter() (TextFormatter, error) {
	var alignment Alignment
	switch p.text[p.pos] {
	case '<':
		alignment = AlignLeft
	case '^':
		alignment = AlignCenter
	case '>':
		alignment = AlignRight
	}
	pos := p.pos + 1
	start := pos
	for pos < len(p.text) && p.text[pos] >= '0' && p.text[pos] <= '9' {
		pos++
	}
	if pos == start {
		return nil, parseErrorf("pad formatter missing width at byte %d", p.pos)
	}
	width, err := strconv.Atoi(p.text[start:pos])
	if err != nil {
		return nil, parseErrorf("pad formatter width invalid at byte %d", p.pos)
	}
	sub := &parser{text: p.text, pos: pos}
	shim, ok := sub.attemptArgument()
	if !ok || len([]rune(shim)) != 1 {
		return nil, parseErrorf("pad formatter shim must be exactly one character, at byte %d", p.pos)
	}
	p.pos = sub.pos
	return Pad{Shim: []rune(shim)[0], Alignment: alignment, Width: width}, nil
}

// attemptProperty parses `{!kind[:format]formatters?}`.
func (p *parser) attemptProperty() (Token, bool, error) {
	start := p.pos
	pos := p.pos + 1
	if pos >= len(p.text) || p.text[pos] != '!' {
		return nil, false, nil
	}
	pos++
	sub := &parser{text: p.text, pos: pos}
	property, err := sub.attemptPropertyKind()
	if err != nil {
		return nil, false, err
	}
	formatters, err := sub.attemptFormatters()
	if err != nil {
		return nil, false, err
	}
	if sub.pos >= len(sub.text) || sub.text[sub.pos] != '}' {
		return nil, false, parseErrorf("property substitution missing closing '}' at byte %d", start)
	}
	p.pos = sub.pos + 1
	return Substitution{Subject: property, Formatters: formatters}, true, nil
}

func (p *parser) attemptPropertyKind() (Property, error) {
	switch {
	case hasFold(p.text, p.pos, "b3sum"):
		p.pos += len("b3sum")
		return B3SumProperty{Format: DigestHexadecimal}, nil
	case hasFold(p.text, p.pos, "md5sum"):
		p.pos += len("md5sum")
		return Md5SumProperty{Format: DigestHexadecimal}, nil
	case hasFold(p.text, p.pos, "ctime"):
		p.pos += len("ctime")
		format, err := p.attemptTimeFormatArg()
		if err != nil {
			return nil, err
		}
		return CTimeProperty{Format: format}, nil
	case hasFold(p.text, p.pos, "mtime"):
		p.pos += len("mtime")
		format, err := p.attemptTimeFormatArg()
		if err != nil {
			return nil, err
		}
		return MTimeProperty{Format: format}, nil
	}
	return nil, parseErrorf("unrecognized property at byte %d", p.pos)
}

func (p *parser) attemptTimeFormatArg() (DateTimeFormat, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != ':' {
		return DefaultDateTimeFormat, nil
	}
	pos := p.pos + 1
	sub := &parser{text: p.text, pos: pos}
	arg, ok := sub.attemptArgument()
	if !ok {
		return "", parseErrorf("property format argument malformed at byte %d", p.pos)
	}
	p.pos = sub.pos
	return DateTimeFormat(arg), nil
}
