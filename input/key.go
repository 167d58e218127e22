// Package input normalizes keyboard events into game actions
package input

import "fmt"

// Kind distinguishes the two key shapes a keyboard decoder yields
type Kind uint8

const (
	KindRaw Kind = iota
	KindChar
)

// RawKey is a named non-character key
type RawKey uint8

const (
	RawOther RawKey = iota
	RawUp
	RawDown
	RawLeft
	RawRight
)

func (k RawKey) String() string {
	switch k {
	case RawUp:
		return "Up"
	case RawDown:
		return "Down"
	case RawLeft:
		return "Left"
	case RawRight:
		return "Right"
	}
	return "Other"
}

// Key is either a raw key or a decoded character, never both
type Key struct {
	kind Kind
	raw  RawKey
	ch   rune
}

// Raw creates a raw-key variant
func Raw(k RawKey) Key {
	return Key{kind: KindRaw, raw: k}
}

// Char creates a character variant
func Char(r rune) Key {
	return Key{kind: KindChar, ch: r}
}

// Kind returns the variant tag
func (k Key) Kind() Kind {
	return k.kind
}

// RawKey returns the raw key if k is the raw variant
func (k Key) RawKey() (RawKey, bool) {
	return k.raw, k.kind == KindRaw
}

// Rune returns the character if k is the character variant
func (k Key) Rune() (rune, bool) {
	return k.ch, k.kind == KindChar
}

func (k Key) String() string {
	if k.kind == KindChar {
		return fmt.Sprintf("Char(%q)", k.ch)
	}
	return "Raw(" + k.raw.String() + ")"
}
