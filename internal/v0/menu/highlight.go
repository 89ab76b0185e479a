package menu

import (
	"strings"
	"unicode/utf8"
)

// Segment is a piece of text, Match marks an occurrence of the keyword
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// containsKeyword is the match rule of the filter. Highlight marks exactly the
// occurrences it finds.
func containsKeyword(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

// Highlight splits text at every case-insensitive occurrence of keyword.
// Joining the segment texts gives back text unchanged.
func Highlight(text, keyword string) []Segment {
	if text == "" {
		return nil
	}
	width := utf8.RuneCountInString(keyword)
	if width == 0 {
		return []Segment{{Text: text}}
	}

	// ToLower maps rune by rune, so a match spans as many runes as the keyword
	needle := strings.ToLower(keyword)
	var segments []Segment
	plain := 0
	for i := 0; i < len(text); {
		if end := runeOffset(text, i, width); end > 0 && strings.ToLower(text[i:end]) == needle {
			if plain < i {
				segments = append(segments, Segment{Text: text[plain:i]})
			}
			segments = append(segments, Segment{Text: text[i:end], Match: true})
			i, plain = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if plain < len(text) {
		segments = append(segments, Segment{Text: text[plain:]})
	}
	return segments
}

// runeOffset returns the byte offset n runes after start, or -1 when text is too short
func runeOffset(text string, start, n int) int {
	i := start
	for ; n > 0; n-- {
		if i >= len(text) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}
