package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceIdentity(t *testing.T) {
	assert.Equal(t, "the quick brown fox", Coalesce("the quick brown fox", []rune{' '}, ' '))
}

func TestCoalesceOneToOne(t *testing.T) {
	assert.Equal(t, "the-quick-brown-fox", Coalesce("the quick brown fox", []rune{' '}, '-'))
}

func TestCoalesceManyToOne(t *testing.T) {
	assert.Equal(t, "the quick brown fox", Coalesce("the_quick-brown\tfox", []rune{'_', '-', '\t'}, ' '))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "text    ", Pad("text", ' ', AlignLeft, 8))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "    text", Pad("text", ' ', AlignRight, 8))
}

func TestPadCenter(t *testing.T) {
	assert.Equal(t, "  text  ", Pad("text", ' ', AlignCenter, 8))
}

func TestPadLeftOverflow(t *testing.T) {
	assert.Equal(t, "too much text", Pad("too much text", ' ', AlignLeft, 8))
}
