package ssql

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType 词法单元类型
type TokenType int

const (
	TokenField    TokenType = iota // 字段名
	TokenOperator                  // 比较操作符
	TokenValue                     // 字面值
	TokenLogicAnd                  // &&
	TokenLogicOr                   // ||
	TokenLParen                    // (
	TokenRParen                    // )
	TokenLBracket                  // [
	TokenRBracket                  // ]
	TokenComma                     // ,
	TokenEOF                       // 结束
)

// Token 词法单元
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// operatorLexemes 按长度降序排列，扫描时取最长匹配
var operatorLexemes = []string{
	"?!null", "?null", "?!=", "?=", "!~", "!=", ">=", "<=", "><", "=", ">", "<", "~",
}

// Lexer 过滤表达式词法分析器
type Lexer struct {
	input string
	pos   int
}

// NewLexer 创建词法分析器
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize 扫描全部词法单元，结尾追加EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		l.skipWhitespace()
		if l.eof() {
			tokens = append(tokens, Token{Type: TokenEOF, Pos: l.pos})
			return tokens, nil
		}
		token, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) ch() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for !l.eof() {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) next() (Token, error) {
	pos := l.pos
	ch := l.ch()

	switch ch {
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: pos}, nil
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: pos}, nil
	case '[':
		l.pos++
		return Token{Type: TokenLBracket, Value: "[", Pos: pos}, nil
	case ']':
		l.pos++
		return Token{Type: TokenRBracket, Value: "]", Pos: pos}, nil
	case ',':
		l.pos++
		return Token{Type: TokenComma, Value: ",", Pos: pos}, nil
	case '&':
		if l.peek() == '&' {
			l.pos += 2
			return Token{Type: TokenLogicAnd, Value: "&&", Pos: pos}, nil
		}
		return Token{}, fmt.Errorf("unexpected character '&' at position %d", pos)
	case '|':
		if l.peek() == '|' {
			l.pos += 2
			return Token{Type: TokenLogicOr, Value: "||", Pos: pos}, nil
		}
		return Token{}, fmt.Errorf("unexpected character '|' at position %d", pos)
	case '\'', '"':
		return l.readString()
	}

	if ch == '-' && isDigit(l.peek()) || isDigit(ch) {
		return l.readNumber(), nil
	}
	if isLetter(ch) || ch == '_' {
		return l.readIdentifier(), nil
	}
	if op, ok := l.matchOperator(); ok {
		return Token{Type: TokenOperator, Value: op, Pos: pos}, nil
	}
	return Token{}, fmt.Errorf("unexpected character '%c' at position %d", ch, pos)
}

// matchOperator 在当前位置做最长匹配
func (l *Lexer) matchOperator() (string, bool) {
	rest := l.input[l.pos:]
	for _, op := range operatorLexemes {
		if strings.HasPrefix(rest, op) {
			l.pos += len(op)
			return op, true
		}
	}
	return "", false
}

// readIdentifier 读取字段名，true/false/null按字面值处理
func (l *Lexer) readIdentifier() Token {
	pos := l.pos
	for !l.eof() {
		ch := l.ch()
		if isLetter(ch) || isDigit(ch) || ch == '_' || ch == '.' {
			l.pos++
			continue
		}
		break
	}

	value := l.input[pos:l.pos]
	switch strings.ToLower(value) {
	case "true", "false", "null":
		return Token{Type: TokenValue, Value: value, Pos: pos}
	}
	return Token{Type: TokenField, Value: value, Pos: pos}
}

// readString 读取引号字符串，支持反斜杠转义
func (l *Lexer) readString() (Token, error) {
	pos := l.pos
	quote := l.ch()
	l.pos++

	var sb strings.Builder
	for !l.eof() && l.ch() != quote {
		ch := l.ch()
		if ch == '\\' {
			l.pos++
			switch l.ch() {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 0:
				return Token{}, fmt.Errorf("unterminated string at position %d", pos)
			default:
				sb.WriteByte(l.ch())
			}
		} else {
			sb.WriteByte(ch)
		}
		l.pos++
	}

	if l.eof() {
		return Token{}, fmt.Errorf("unterminated string at position %d", pos)
	}
	l.pos++ // 收尾引号

	return Token{Type: TokenValue, Value: sb.String(), Pos: pos}, nil
}

// readNumber 读取数字，支持负号和小数
func (l *Lexer) readNumber() Token {
	pos := l.pos
	if l.ch() == '-' {
		l.pos++
	}
	for isDigit(l.ch()) {
		l.pos++
	}
	if l.ch() == '.' && isDigit(l.peek()) {
		l.pos++
		for isDigit(l.ch()) {
			l.pos++
		}
	}
	return Token{Type: TokenValue, Value: l.input[pos:l.pos], Pos: pos}
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
