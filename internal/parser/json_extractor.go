// Package parser extracts structured payloads from free-form model output.
//
// Models asked for JSON or code frequently wrap the answer in a fenced
// markdown block or surround it with prose. The helpers here try a fenced
// block first and fall back to bracket matching.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoJSON is returned when text contains no candidate JSON value.
var ErrNoJSON = errors.New("no JSON value found in text")

const fence = "```"

// languageTags are fence tags recognized even when code follows on the same
// line, as in "```javascript function f() {}```".
var languageTags = map[string]bool{
	"javascript": true, "js": true, "jsx": true,
	"typescript": true, "ts": true, "tsx": true,
	"json": true,
}

// StripCodeFences returns the body of the first markdown code fence in text,
// trimmed. Prose before the fence and anything after its closing marker are
// dropped, as is the fence's language tag. An unclosed fence runs to the end
// of text. Text without a fence is returned trimmed.
func StripCodeFences(text string) string {
	open := strings.Index(text, fence)
	if open == -1 {
		return strings.TrimSpace(text)
	}

	body := dropLanguageTag(text[open+len(fence):])
	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// dropLanguageTag removes the tag that directly follows an opening fence.
// A tag ends at a line break; a known language tag may also end at a space.
func dropLanguageTag(s string) string {
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end == -1 {
		end = len(s)
	}
	if f := strings.Index(s[:end], fence); f >= 0 {
		end = f
	}

	tag := s[:end]
	if tag == "" || !isTag(tag) {
		return s
	}
	if end == len(s) || s[end] == '\n' || s[end] == '\r' || languageTags[strings.ToLower(tag)] {
		return s[end:]
	}
	return s
}

func isTag(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-#._", r) {
			return false
		}
	}
	return true
}

// DecodeJSON locates a JSON value whose top level starts with open ('[' or
// '{') and decodes it into a value of type T.
//
// Strategy:
//  1. Parse the whole text after stripping a surrounding fence.
//  2. Parse the first ```json fenced block found anywhere in text.
//  3. Fall back to bracket matching from the first open character.
func DecodeJSON[T any](text string, open byte) (T, error) {
	var zero T
	if open != '[' && open != '{' {
		return zero, fmt.Errorf("unsupported opening character %q", open)
	}

	candidates := []string{StripCodeFences(text)}
	if block, ok := firstCodeBlock(text, "json"); ok {
		candidates = append(candidates, block)
	}

	var lastErr error
	for _, c := range candidates {
		if len(c) == 0 || c[0] != open {
			continue
		}
		var v T
		if err := json.Unmarshal([]byte(c), &v); err != nil {
			lastErr = err
			continue
		}
		return v, nil
	}

	start := strings.IndexByte(text, open)
	if start == -1 {
		if lastErr != nil {
			return zero, fmt.Errorf("json in code block: %w", lastErr)
		}
		return zero, ErrNoJSON
	}

	raw := text[start:]
	end, ok := matchBrackets(raw)
	if !ok {
		return zero, fmt.Errorf("unmatched %q in model output", open)
	}

	var v T
	if err := json.Unmarshal([]byte(raw[:end+1]), &v); err != nil {
		return zero, fmt.Errorf("bracket-matched json: %w", err)
	}
	return v, nil
}

// firstCodeBlock returns the body of the first ```<lang> fenced block.
func firstCodeBlock(text, lang string) (string, bool) {
	openIdx := strings.Index(text, fence+lang)
	if openIdx == -1 {
		return "", false
	}

	blockStart := openIdx + len(fence+lang)
	if blockStart < len(text) && text[blockStart] == '\n' {
		blockStart++
	}

	closeIdx := strings.Index(text[blockStart:], fence)
	if closeIdx == -1 {
		return "", false
	}
	return strings.TrimSpace(text[blockStart : blockStart+closeIdx]), true
}

// matchBrackets returns the index of the character closing the '{' or '['
// at position 0. String literals (including escaped quotes) are skipped.
// Returns (0, false) if s does not start with an opener or never closes.
func matchBrackets(s string) (int, bool) {
	if len(s) == 0 || (s[0] != '{' && s[0] != '[') {
		return 0, false
	}

	depth := 0
	inString := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch ch {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
