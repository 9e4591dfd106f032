package db

import (
	"strings"
	"unicode/utf8"
)

const (
	// PreviewBytes is how much of an upload is kept as its preview.
	PreviewBytes = 500
	// SummaryPreviewChars is the preview length in list projections.
	SummaryPreviewChars = 100
)

// ContentPreview decodes at most the first PreviewBytes of content as UTF-8.
// Each maximal invalid subsequence becomes a single U+FFFD, so a multi-byte
// character cut by the limit decodes as one replacement character.
func ContentPreview(content []byte) string {
	if len(content) > PreviewBytes {
		content = content[:PreviewBytes]
	}

	var b strings.Builder
	b.Grow(len(content))
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		// A literal U+FFFD in the input decodes with size 3 and is kept as is.
		if r == utf8.RuneError && size == 1 {
			size = invalidPrefixLen(content)
		}
		b.WriteRune(r)
		content = content[size:]
	}
	return b.String()
}

// invalidPrefixLen returns the length of the maximal subpart of an ill-formed
// sequence at the start of p: the lead byte plus any continuation bytes that
// could still have completed it. It is at least 1.
func invalidPrefixLen(p []byte) int {
	want, lo, hi := 1, byte(0x80), byte(0xbf)
	switch c := p[0]; {
	case c >= 0xc2 && c <= 0xdf:
		want = 2
	case c == 0xe0:
		want, lo = 3, 0xa0
	case c == 0xed:
		want, hi = 3, 0x9f
	case c >= 0xe1 && c <= 0xef:
		want = 3
	case c == 0xf0:
		want, lo = 4, 0x90
	case c == 0xf4:
		want, hi = 4, 0x8f
	case c >= 0xf1 && c <= 0xf3:
		want = 4
	}

	n := 1
	if n < want && n < len(p) && p[n] >= lo && p[n] <= hi {
		n++
		for n < want && n < len(p) && p[n] >= 0x80 && p[n] <= 0xbf {
			n++
		}
	}
	return n
}

// truncateChars returns the first n characters (runes) of s.
func truncateChars(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
