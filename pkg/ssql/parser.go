package ssql

import (
	"fmt"
	"strconv"
	"strings"
)

// operators 词法单元到操作符的映射，不在表里的一律报错
var operators = map[string]Operator{
	"=":      OpEq,
	"!=":     OpNeq,
	">":      OpGt,
	">=":     OpGte,
	"<":      OpLt,
	"<=":     OpLte,
	"~":      OpLike,
	"!~":     OpNotLike,
	"?=":     OpIn,
	"?!=":    OpNotIn,
	"?null":  OpIsNull,
	"?!null": OpNotNull,
	"><":     OpBetween,
}

// Parser 过滤表达式语法分析器
type Parser struct {
	tokens []Token
	pos    int
}

// Parse 解析过滤表达式，空串返回 nil, nil
func Parse(input string) (Expression, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: tokens}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token '%s' at position %d", tok.Value, tok.Pos)
	}
	return expr, nil
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	token := p.current()
	p.pos++
	return token
}

// parseOr 解析||层，左结合且同级拍平
func (p *Parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenLogicOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = mergeLogic(left, right, LogicOr)
	}
	return left, nil
}

// parseAnd 解析&&层，优先级高于||
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenLogicAnd {
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = mergeLogic(left, right, LogicAnd)
	}
	return left, nil
}

// mergeLogic 同逻辑符的节点合并，避免长链嵌套
func mergeLogic(left, right Expression, logic LogicOperator) Expression {
	if node, ok := left.(*LogicExpression); ok && node.Logic == logic {
		node.Expressions = append(node.Expressions, right)
		return node
	}
	return &LogicExpression{Logic: logic, Expressions: []Expression{left, right}}
}

func (p *Parser) parsePrimary() (Expression, error) {
	token := p.current()
	switch token.Type {
	case TokenLParen:
		return p.parseGroup()
	case TokenField:
		return p.parseField()
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected token '%s' at position %d", token.Value, token.Pos)
	}
}

func (p *Parser) parseGroup() (Expression, error) {
	p.advance() // (
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenRParen {
		return nil, fmt.Errorf("expected ')' to close group")
	}
	p.advance()
	return &GroupExpression{Inner: expr}, nil
}

func (p *Parser) parseField() (Expression, error) {
	fieldToken := p.advance()

	opToken := p.current()
	if opToken.Type != TokenOperator {
		return nil, fmt.Errorf("expected operator after field '%s'", fieldToken.Value)
	}
	p.advance()

	operator, ok := operators[opToken.Value]
	if !ok {
		return nil, fmt.Errorf("unknown operator '%s' at position %d", opToken.Value, opToken.Pos)
	}

	// NULL判断不带值
	if operator == OpIsNull || operator == OpNotNull {
		return &FieldExpression{Field: fieldToken.Value, Operator: operator}, nil
	}

	value, err := p.parseValue(operator)
	if err != nil {
		return nil, err
	}
	return &FieldExpression{Field: fieldToken.Value, Operator: operator, Value: value}, nil
}

func (p *Parser) parseValue(operator Operator) (interface{}, error) {
	if operator == OpIn || operator == OpNotIn || operator == OpBetween {
		return p.parseArray()
	}

	token := p.current()
	if token.Type != TokenValue {
		return nil, fmt.Errorf("expected value at position %d, got '%s'", token.Pos, token.Value)
	}
	p.advance()
	return convertValue(token.Value), nil
}

func (p *Parser) parseArray() ([]interface{}, error) {
	if p.current().Type != TokenLBracket {
		return nil, fmt.Errorf("expected '[' for array value")
	}
	p.advance()

	var values []interface{}
	for {
		switch p.current().Type {
		case TokenRBracket:
			p.advance()
			return values, nil
		case TokenValue:
			values = append(values, convertValue(p.advance().Value))
		case TokenComma:
			p.advance()
		default:
			return nil, fmt.Errorf("expected ']' to close array")
		}
	}
}

// convertValue 字面值转Go类型，转不动的按字符串
func convertValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
