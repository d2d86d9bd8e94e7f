// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package natsort orders file names so that embedded digit runs compare by
// numeric value ("page_2" before "page_10") and the text around them compares
// case-insensitively.
package natsort

import (
	"slices"
	"strings"
)

// Segment is one run of a Key: either text or a decimal number. Numbers keep
// their digits as written so values of any length compare exactly.
type Segment struct {
	Text     string
	Digits   string
	IsNumber bool
}

// Key is the comparison key of a name. Even positions hold text (possibly
// empty) and odd positions hold numbers, so two keys always line up by type.
type Key []Segment

// KeyOf lower-cases name and splits it on maximal runs of ASCII digits.
func KeyOf(name string) Key {
	name = strings.ToLower(name)
	key := Key{}
	start := 0
	inDigits := false
	for i := 0; i < len(name); i++ {
		d := isDigit(name[i])
		if d == inDigits {
			continue
		}
		key = append(key, segment(name[start:i], inDigits))
		start = i
		inDigits = d
	}
	key = append(key, segment(name[start:], inDigits))
	if inDigits {
		key = append(key, Segment{})
	}
	return key
}

func segment(s string, number bool) Segment {
	if number {
		return Segment{Digits: s, IsNumber: true}
	}
	return Segment{Text: s}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Compare returns -1, 0 or +1 comparing a and b element-wise. When one key
// is a prefix of the other, the shorter key sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// compareSegment orders text before numbers if the types ever diverge, which
// cannot happen for keys built by KeyOf.
func compareSegment(a, b Segment) int {
	switch {
	case a.IsNumber && b.IsNumber:
		return compareDigits(a.Digits, b.Digits)
	case !a.IsNumber && !b.IsNumber:
		return strings.Compare(a.Text, b.Text)
	case !a.IsNumber:
		return -1
	default:
		return 1
	}
}

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// CompareNames compares two names by their keys and falls back to a plain
// string comparison when the keys are equal ("p01" vs "p1"), giving a total
// order.
func CompareNames(a, b string) int {
	if c := Compare(KeyOf(a), KeyOf(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return CompareNames(a, b) < 0
}

// Sort sorts names in natural order.
func Sort(names []string) {
	SortFunc(names, func(s string) string { return s })
}

// SortFunc sorts items in natural order of the name returned by name. Keys
// are computed once per item.
func SortFunc[T any](items []T, name func(T) string) {
	type keyed struct {
		item T
		name string
		key  Key
	}
	tmp := make([]keyed, len(items))
	for i, it := range items {
		n := name(it)
		tmp[i] = keyed{item: it, name: n, key: KeyOf(n)}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int {
		if c := Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for i := range tmp {
		items[i] = tmp[i].item
	}
}
