// Package to implements the to-pattern engine: a small substitution
// template language that synthesizes a destination path from a from-pattern
// match's captures and a source file's properties.
package to

// Token is a single node of a parsed to-pattern. The concrete types are
// Literal and Substitution.
type Token interface {
	isToToken()
}

// Literal is a run of ordinary, unescaped text.
type Literal string

func (Literal) isToToken() {}

// Substitution is a `{...}` template slot.
type Substitution struct {
	Subject    Subject
	Condition  *Condition
	Formatters []TextFormatter
}

func (Substitution) isToToken() {}

// Identifier names a from-pattern capture, by position or (always-empty,
// since the glob engine only emits positional captures) by name.
type Identifier struct {
	Name  string
	Index int
	named bool
}

// IndexIdentifier builds a positional Identifier.
func IndexIdentifier(index int) Identifier { return Identifier{Index: index} }

// NameIdentifier builds a named Identifier.
func NameIdentifier(name string) Identifier { return Identifier{Name: name, named: true} }

// Named reports whether the identifier names a capture instead of indexing one.
func (id Identifier) Named() bool { return id.named }

// NonEmptyCase is the branch of a Condition applied when the subject's text
// is non-empty.
type NonEmptyCase interface {
	isNonEmptyCase()
}

// Surround wraps non-empty text in a prefix and postfix.
type Surround struct {
	Prefix, Postfix string
}

func (Surround) isNonEmptyCase() {}

// NonEmptyLiteral replaces non-empty text outright.
type NonEmptyLiteral string

func (NonEmptyLiteral) isNonEmptyCase() {}

// EmptyCase replaces empty text outright.
type EmptyCase string

// Condition is the optional `?non_empty:empty` clause of a Substitution.
type Condition struct {
	NonEmpty NonEmptyCase
	Empty    *EmptyCase
}

// Subject is what a Substitution resolves before conditions/formatters run.
type Subject interface {
	isSubject()
}

// Capture resolves to a from-pattern match group.
type Capture struct {
	Identifier Identifier
}

func (Capture) isSubject() {}

// Property resolves to a derived attribute of the source file.
type Property interface {
	isSubject()
	isProperty()
}

// DigestFormat selects how a digest property renders.
type DigestFormat int

const (
	DigestHexadecimal DigestFormat = iota
)

// B3SumProperty is the `{!b3sum}` BLAKE3 content digest.
type B3SumProperty struct{ Format DigestFormat }

func (B3SumProperty) isSubject()  {}
func (B3SumProperty) isProperty() {}

// Md5SumProperty is the `{!md5sum}` MD5 content digest.
type Md5SumProperty struct{ Format DigestFormat }

func (Md5SumProperty) isSubject()  {}
func (Md5SumProperty) isProperty() {}

// DateTimeFormat is a strftime-style format string, defaulting to "%F-%X".
type DateTimeFormat string

// DefaultDateTimeFormat is used when a timestamp property omits `:FMT`.
const DefaultDateTimeFormat DateTimeFormat = "%F-%X"

// MTimeProperty is the `{!mtime[:FMT]}` last-modification timestamp.
type MTimeProperty struct{ Format DateTimeFormat }

func (MTimeProperty) isSubject()  {}
func (MTimeProperty) isProperty() {}

// CTimeProperty is the `{!ctime[:FMT]}` status-change timestamp.
type CTimeProperty struct{ Format DateTimeFormat }

func (CTimeProperty) isSubject()  {}
func (CTimeProperty) isProperty() {}

// TextFormatter is one stage of a Substitution's formatter pipeline.
type TextFormatter interface {
	isTextFormatter()
}

// Alignment selects which side of a Pad formatter absorbs the shim rune.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Pad widens a substitution's text to Width display columns.
type Pad struct {
	Shim      rune
	Alignment Alignment
	Width     int
}

func (Pad) isTextFormatter() {}

// Lower lowercases the text.
type Lower struct{}

func (Lower) isTextFormatter() {}

// Upper uppercases the text.
type Upper struct{}

func (Upper) isTextFormatter() {}

// Title title-cases the text.
type Title struct{}

func (Title) isTextFormatter() {}

// Coalesce collapses every rune in From to To.
type Coalesce struct {
	From []rune
	To   rune
}

func (Coalesce) isTextFormatter() {}
