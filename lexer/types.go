package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid      TokenType = iota
	TokenOpenBracket            // Open square bracket: "["
	TokenCloseBracket           // Close square bracket: "]"
	TokenOpenParen              // Open parenthesis: "("
	TokenCloseParen             // Close parenthesis: ")"
	TokenOpenBrace              // Open curly bracket: "{"
	TokenCloseBrace             // Close curly bracket: "}"
	TokenComma                  // Element separator: ","
	TokenSemicolon              // Repeat-count separator: ";"
	TokenBang                   // Invocation marker: "!"
	TokenQuote                  // Double quote: '"'
	TokenNewLine                // Newline: "\n"
	TokenWhitespace             // Space, tab, linefeed or carriage return
	TokenWord                   // Letters ([a-zA-Z]) and underscore
	TokenInteger                // Integers
	TokenOperator               // Expression operator characters
	TokenDot                    // Single dot: "."
	TokenEllipsis               // Spread marker: "..."
	TokenEOF                    // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenBracket:  []rune{'['},
	TokenCloseBracket: []rune{']'},
	TokenOpenParen:    []rune{'('},
	TokenCloseParen:   []rune{')'},
	TokenOpenBrace:    []rune{'{'},
	TokenCloseBrace:   []rune{'}'},
	TokenComma:        []rune{','},
	TokenSemicolon:    []rune{';'},
	TokenBang:         []rune{'!'},
	TokenQuote:        []rune{'"'},
	TokenNewLine:      []rune{'\n'},
	TokenWhitespace:   []rune(" \f\t\r"),
	TokenWord:         []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"),
	TokenInteger:      []rune("0123456789"),
	TokenOperator:     []rune("+-*/%<>=&|^?~:"),
	TokenDot:          []rune{'.'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenOpenBracket:  "open_bracket",
	TokenCloseBracket: "close_bracket",
	TokenOpenParen:    "open_paren",
	TokenCloseParen:   "close_paren",
	TokenOpenBrace:    "open_brace",
	TokenCloseBrace:   "close_brace",
	TokenComma:        "comma",
	TokenSemicolon:    "semicolon",
	TokenBang:         "bang",
	TokenQuote:        "quote",
	TokenNewLine:      "newline",
	TokenWhitespace:   "separator",
	TokenWord:         "word",
	TokenInteger:      "integer",
	TokenOperator:     "operator",
	TokenDot:          "dot",
	TokenEllipsis:     "ellipsis",
	TokenEOF:          "EOF",
}

func tokenName(tt TokenType) string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func (tt TokenType) String() string {
	return tokenName(tt)
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
