package corpus

import (
	"strings"
	"unicode"
)

// TokenKind classifies a line of a corpus document
type TokenKind int

const (
	// TokenLine is a parameter line
	TokenLine TokenKind = iota
	// TokenHeader opens a block, e.g. __Race__ or ==MaleElfName==
	TokenHeader
	// TokenEnd closes the innermost open block
	TokenEnd
)

const endMarker = "/end"

var delimiters = []string{GroupDelimiter, SubgroupDelimiter}

// Token is one classified line. Blank lines produce no token.
type Token struct {
	Kind      TokenKind
	Value     string
	Delimiter string
	Line      int
}

// Tokenize splits a document into tokens
func Tokenize(text string) []Token {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, 0, len(lines))

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if line == endMarker {
			tokens = append(tokens, Token{Kind: TokenEnd, Line: i + 1})
			continue
		}

		if name, delim, ok := parseHeader(line); ok {
			tokens = append(tokens, Token{Kind: TokenHeader, Value: name, Delimiter: delim, Line: i + 1})
			continue
		}

		tokens = append(tokens, Token{Kind: TokenLine, Value: line, Line: i + 1})
	}

	return tokens
}

func parseHeader(line string) (name, delimiter string, ok bool) {
	for _, d := range delimiters {
		if len(line) <= 2*len(d) || !strings.HasPrefix(line, d) || !strings.HasSuffix(line, d) {
			continue
		}

		inner := strings.TrimSpace(line[len(d) : len(line)-len(d)])
		if isName(inner) {
			return inner, d, true
		}
	}
	return "", "", false
}

// isName accepts word characters and inner spaces
func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type blockKey struct {
	delimiter string
	name      string
}

// document is the parsed block structure of one text body
type document struct {
	top    []string
	blocks map[blockKey][]string
	names  map[string][]string
}

type frame struct {
	key       blockKey
	duplicate bool
}

// parseDocument builds the block structure from tokens. Headers nest, lines
// belong to the innermost open block, the first block of a given name wins
// and unclosed blocks end with the document.
func parseDocument(text string) *document {
	doc := &document{
		blocks: make(map[blockKey][]string),
		names:  make(map[string][]string),
	}

	var stack []frame
	for _, tok := range Tokenize(text) {
		switch tok.Kind {
		case TokenHeader:
			key := blockKey{delimiter: tok.Delimiter, name: tok.Value}
			_, seen := doc.blocks[key]
			if !seen {
				doc.blocks[key] = []string{}
				doc.names[key.delimiter] = append(doc.names[key.delimiter], key.name)
			}
			stack = append(stack, frame{key: key, duplicate: seen})
		case TokenEnd:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case TokenLine:
			if len(stack) == 0 {
				doc.top = append(doc.top, tok.Value)
				continue
			}
			current := stack[len(stack)-1]
			if current.duplicate {
				continue
			}
			doc.blocks[current.key] = append(doc.blocks[current.key], tok.Value)
		}
	}

	return doc
}

func (d *document) block(delimiter, name string) ([]string, bool) {
	lines, ok := d.blocks[blockKey{delimiter: delimiter, name: name}]
	if !ok {
		return nil, false
	}
	return append([]string(nil), lines...), true
}

func (d *document) groupNames(delimiter string) []string {
	return append([]string(nil), d.names[delimiter]...)
}
