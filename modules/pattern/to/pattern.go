package to

import (
	"strings"
	"time"

	"github.com/antgroup/hugemv/modules/digest"
	"github.com/antgroup/hugemv/modules/glob"
	"github.com/antgroup/hugemv/modules/memoize"
	"github.com/antgroup/hugemv/modules/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPattern is a parsed to-pattern template.
type ToPattern struct {
	tokens []Token
}

// New parses text into a ToPattern.
func New(text string) (*ToPattern, error) {
	tokens, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &ToPattern{tokens: tokens}, nil
}

// properties memoizes a source file's digest/timestamp reads for the
// duration of one Resolve call, so a to-pattern referencing `{!b3sum}` (or
// any other property) more than once only touches the file system once.
type properties struct {
	b3sum  *memoize.Memoized[string]
	md5sum *memoize.Memoized[string]
	mtime  *memoize.Memoized[time.Time]
	ctime  *memoize.Memoized[time.Time]
}

func newProperties(source string) *properties {
	return &properties{
		b3sum:  memoize.From(func() (string, error) { return digest.B3Sum(source) }),
		md5sum: memoize.From(func() (string, error) { return digest.Md5Sum(source) }),
		mtime:  memoize.From(func() (time.Time, error) { return digest.MTime(source) }),
		ctime:  memoize.From(func() (time.Time, error) { return digest.CTime(source) }),
	}
}

// Resolve synthesizes the destination string for source, given its
// from-pattern match captures.
func (t *ToPattern) Resolve(source string, captures *glob.Captures) (string, error) {
	props := newProperties(source)
	var b strings.Builder
	for _, token := range t.tokens {
		switch tok := token.(type) {
		case Literal:
			b.WriteString(string(tok))
		case Substitution:
			value, err := resolveSubject(tok.Subject, captures, props)
			if err != nil {
				return "", err
			}
			b.WriteString(substitute(value, tok.Condition, tok.Formatters))
		}
	}
	return b.String(), nil
}

func resolveSubject(subject Subject, captures *glob.Captures, props *properties) (string, error) {
	switch s := subject.(type) {
	case Capture:
		if s.Identifier.Named() {
			return "", nil
		}
		value, ok := captures.Get(s.Identifier.Index)
		if !ok {
			return "", nil
		}
		return value, nil
	case B3SumProperty:
		return props.b3sum.Get()
	case Md5SumProperty:
		return props.md5sum.Get()
	case MTimeProperty:
		t, err := props.mtime.Get()
		if err != nil {
			return "", err
		}
		return digest.FormatTime(t, timeFormatOrDefault(s.Format)), nil
	case CTimeProperty:
		t, err := props.ctime.Get()
		if err != nil {
			return "", err
		}
		return digest.FormatTime(t, timeFormatOrDefault(s.Format)), nil
	}
	return "", nil
}

func timeFormatOrDefault(format DateTimeFormat) string {
	if format == "" {
		return string(DefaultDateTimeFormat)
	}
	return string(format)
}

func substitute(value string, condition *Condition, formatters []TextFormatter) string {
	out := value
	if condition != nil {
		switch {
		case value == "" && condition.Empty != nil:
			out = string(*condition.Empty)
		case value == "":
			out = ""
		case value != "" && condition.NonEmpty != nil:
			switch nonEmpty := condition.NonEmpty.(type) {
			case Surround:
				out = nonEmpty.Prefix + value + nonEmpty.Postfix
			case NonEmptyLiteral:
				out = string(nonEmpty)
			}
		default:
			out = value
		}
	}
	for _, formatter := range formatters {
		out = applyFormatter(out, formatter)
	}
	return out
}

func applyFormatter(value string, formatter TextFormatter) string {
	switch f := formatter.(type) {
	case Pad:
		return text.Pad(value, f.Shim, text.Alignment(f.Alignment), f.Width)
	case Lower:
		return strings.ToLower(value)
	case Upper:
		return strings.ToUpper(value)
	case Title:
		return cases.Title(language.Und).String(value)
	case Coalesce:
		return text.Coalesce(value, f.From, f.To)
	}
	return value
}
