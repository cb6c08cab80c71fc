package scan

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/chidiwilliams/tinyexpr/ast"
)

// DefaultKeywords are the reserved words recognised when no other set is
// injected.
var DefaultKeywords = []string{"print", "sum"}

// IdentifierPattern is the shape of identifiers, and therefore of keywords.
const IdentifierPattern = `[A-Za-z_]\w*`

var identifierRe = regexp.MustCompile(`^` + IdentifierPattern + `$`)

// Rule names. Whitespace and Mismatch never produce tokens.
const (
	ruleKeyword    = "Keyword"
	ruleIdentifier = "Identifier"
	ruleString     = "String"
	ruleNumber     = "Number"
	ruleOperator   = "Operator"
	ruleOpenParen  = "OpenParen"
	ruleCloseParen = "CloseParen"
	ruleComma      = "Comma"
	ruleNewline    = "Newline"
	ruleWhitespace = "Whitespace"
	ruleMismatch   = "Mismatch"
)

var ruleTypes = map[string]ast.TokenType{
	ruleKeyword:    ast.TokenKeyword,
	ruleIdentifier: ast.TokenIdentifier,
	ruleString:     ast.TokenString,
	ruleNumber:     ast.TokenNumber,
	ruleOperator:   ast.TokenOperator,
	ruleOpenParen:  ast.TokenOpenParen,
	ruleCloseParen: ast.TokenCloseParen,
	ruleComma:      ast.TokenComma,
	ruleNewline:    ast.TokenNewline,
}

// Scanner converts source text into a slice of ast.Token-s.
// The rules are tried in order at every position and the first one that
// matches wins, so keywords always take priority over identifiers.
//
// A Scanner is immutable once built and may be shared between goroutines.
type Scanner struct {
	keywords []string
	def      *lexer.StatefulDefinition
	names    map[lexer.TokenType]string
}

// New returns a Scanner that treats the given words as keywords.
func New(keywords []string) (*Scanner, error) {
	words, err := normalizeKeywords(keywords)
	if err != nil {
		return nil, err
	}

	var rules []lexer.SimpleRule
	if len(words) > 0 {
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		rules = append(rules, lexer.SimpleRule{
			Name:    ruleKeyword,
			Pattern: `\b(?:` + strings.Join(quoted, "|") + `)\b`,
		})
	}
	rules = append(rules,
		lexer.SimpleRule{Name: ruleIdentifier, Pattern: IdentifierPattern},
		lexer.SimpleRule{Name: ruleString, Pattern: `"(?:\\.|[^\\"])*"|'(?:\\.|[^\\'])*'`},
		lexer.SimpleRule{Name: ruleNumber, Pattern: `\d+`},
		lexer.SimpleRule{Name: ruleOperator, Pattern: `&&|\|\||[-+*/%^=]`},
		lexer.SimpleRule{Name: ruleOpenParen, Pattern: `\(`},
		lexer.SimpleRule{Name: ruleCloseParen, Pattern: `\)`},
		lexer.SimpleRule{Name: ruleComma, Pattern: `,`},
		lexer.SimpleRule{Name: ruleNewline, Pattern: `\n`},
		lexer.SimpleRule{Name: ruleWhitespace, Pattern: `[^\S\n]+`},
		lexer.SimpleRule{Name: ruleMismatch, Pattern: `.`},
	)

	def, err := lexer.NewSimple(rules)
	if err != nil {
		return nil, errors.Wrap(err, "building lexer rules")
	}

	names := make(map[lexer.TokenType]string)
	for name, typ := range def.Symbols() {
		names[typ] = name
	}

	return &Scanner{keywords: words, def: def, names: names}, nil
}

// MustNew is like New but panics on an invalid keyword set.
func MustNew(keywords []string) *Scanner {
	s, err := New(keywords)
	if err != nil {
		panic(err)
	}
	return s
}

// Keywords returns the scanner's keyword set, sorted.
func (s *Scanner) Keywords() []string {
	return append([]string(nil), s.keywords...)
}

// ScanTokens returns the tokens of source. Whitespace is dropped but
// newlines are kept since they separate statements. The first character
// that no rule accepts aborts the scan with a *LexicalError.
func (s *Scanner) ScanTokens(filename, source string) ([]ast.Token, error) {
	lex, err := s.def.LexString(filename, source)
	if err != nil {
		return nil, errors.Wrap(err, "starting lexer")
	}

	tokens := make([]ast.Token, 0)
	for {
		lt, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "lexing")
		}
		if lt.EOF() {
			break
		}

		pos := ast.Position{
			Filename: lt.Pos.Filename,
			Offset:   lt.Pos.Offset,
			Line:     lt.Pos.Line,
			Column:   lt.Pos.Column,
		}

		name := s.names[lt.Type]
		switch name {
		case ruleWhitespace:
			continue
		case ruleMismatch:
			return nil, &LexicalError{Text: lt.Value, Pos: pos, Reason: reasonNoCategory}
		}

		tokenType, ok := ruleTypes[name]
		if !ok {
			return nil, &LexicalError{Text: lt.Value, Pos: pos, Reason: reasonNoCategory}
		}

		// A keyword glued to the end of a number is not at a word boundary.
		if tokenType == ast.TokenKeyword && len(tokens) > 0 {
			prev := tokens[len(tokens)-1]
			if prev.TokenType == ast.TokenNumber && prev.Pos.Offset+len(prev.Lexeme) == pos.Offset {
				tokenType = ast.TokenIdentifier
			}
		}

		token := ast.Token{TokenType: tokenType, Lexeme: lt.Value, Pos: pos}
		value, err := token.Value()
		if err != nil {
			return nil, &LexicalError{Text: lt.Value, Pos: pos, Reason: "number out of range"}
		}
		token.Literal = value
		tokens = append(tokens, token)
	}

	return tokens, nil
}

var defaultScanner = MustNew(DefaultKeywords)

// Tokenize scans source with the default keyword set.
func Tokenize(source string) ([]ast.Token, error) {
	return defaultScanner.ScanTokens("", source)
}

// CheckKeyword reports whether word can be used as a keyword.
func CheckKeyword(word string) error {
	if !identifierRe.MatchString(word) {
		return errors.Errorf("keyword %q is not a valid identifier", word)
	}
	return nil
}

func normalizeKeywords(keywords []string) ([]string, error) {
	seen := make(map[string]bool, len(keywords))
	words := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if err := CheckKeyword(kw); err != nil {
			return nil, err
		}
		if seen[kw] {
			return nil, errors.Errorf("keyword %q listed more than once", kw)
		}
		seen[kw] = true
		words = append(words, kw)
	}
	sort.Strings(words)
	return words, nil
}
