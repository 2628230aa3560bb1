// Package textpack packs and merges text chunks to a character budget.  Text
// extracted from document layout regions arrives in arbitrary sized pieces,
// these routines regroup the pieces into chunks close to the limit a
// downstream language model prompt can carry.
package textpack

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTerminator is the sentence terminator chunks are split on, the
// CJK full stop
const DefaultTerminator = '。'

// Packer regroups text segments into chunks bounded by a character limit
type Packer struct {
	// Terminator is the sentence terminator character used to split
	// segments that are over the limit
	Terminator rune
}

// NewPacker returns a Packer using the default sentence terminator
func NewPacker() *Packer {
	return &Packer{
		Terminator: DefaultTerminator,
	}
}

// Pack greedily concatenates segments into buffers of at least limit
// characters.  Segments shorter than the limit accumulate in a buffer which
// is flushed once its character count reaches the limit.  Segments at or
// over the limit are split into sentences on the terminator and each
// sentence is packed the same way, or emitted standalone when a single
// sentence is itself at or over the limit.  Any non empty leftover buffer
// is flushed at the end.
//
// Character counts are in runes, not bytes.
func (p *Packer) Pack(segments []string, limit int) []string {

	result := make([]string, 0, len(segments))
	buffer := ""

	for _, segment := range segments {

		if utf8.RuneCountInString(segment) < limit {
			buffer += segment

			if utf8.RuneCountInString(buffer) >= limit {
				result = append(result, trimTrailingSpace(buffer))
				buffer = ""
			}

			continue
		}

		// split the over limit segment into sentences, restoring the
		// terminator on all but the trailing piece
		sentences := strings.Split(segment, string(p.Terminator))

		for i, sentence := range sentences {
			current := sentence

			if i < len(sentences)-1 {
				current += string(p.Terminator)
			}

			if utf8.RuneCountInString(current) < limit {
				buffer += current

				if utf8.RuneCountInString(buffer) >= limit {
					result = append(result, buffer)
					buffer = ""
				}
			} else {
				result = append(result, current)
			}
		}
	}

	if buffer != "" {
		result = append(result, buffer)
	}

	return result
}

// Merge splits all texts into sentences, drops empty fragments, terminates
// every fragment, then greedily accumulates fragments into chunks:
//
//   - strictly under the limit the fragment appends in place
//   - exactly at the limit the fragment appends and the chunk is flushed
//   - over the limit the first exceeding fragment is still force appended
//     to the current chunk, the next exceeding fragment starts a new chunk
//     instead
//
// The force append keeps a chunk from being flushed nearly empty when a
// long sentence follows a short remainder.
func (p *Packer) Merge(texts []string, limit int) []string {

	result := make([]string, 0, len(texts))

	terminator := string(p.Terminator)

	// split and collect all sentence fragments
	chunks := make([]string, 0, len(texts))

	for _, text := range texts {
		for _, piece := range strings.Split(text, terminator) {
			piece = strings.TrimSpace(piece)

			if piece == "" {
				continue
			}

			if !strings.HasSuffix(piece, terminator) {
				piece += terminator
			}

			chunks = append(chunks, piece)
		}
	}

	current := ""
	isFirstExceed := true

	for _, chunk := range chunks {

		currentLen := utf8.RuneCountInString(current)
		chunkLen := utf8.RuneCountInString(chunk)

		switch {
		case currentLen+chunkLen < limit:
			current += chunk

		case currentLen+chunkLen == limit:
			current += chunk
			result = append(result, current)
			current = ""
			isFirstExceed = true

		default:
			if isFirstExceed {
				isFirstExceed = false
				current += chunk
			} else {
				if current != "" {
					result = append(result, current)
				}
				current = chunk
				isFirstExceed = true
			}
		}
	}

	if current != "" {
		result = append(result, current)
	}

	return result
}

// trimTrailingSpace removes trailing whitespace from s
func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
