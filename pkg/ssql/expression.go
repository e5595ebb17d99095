package ssql

import (
	"fmt"
	"strings"
)

// Operator 比较操作符，字面值即过滤语法里的写法
type Operator string

const (
	OpEq      Operator = "="
	OpNeq     Operator = "!="
	OpGt      Operator = ">"
	OpGte     Operator = ">="
	OpLt      Operator = "<"
	OpLte     Operator = "<="
	OpLike    Operator = "~"
	OpNotLike Operator = "!~"
	OpIn      Operator = "?="
	OpNotIn   Operator = "?!="
	OpIsNull  Operator = "?null"
	OpNotNull Operator = "?!null"
	OpBetween Operator = "><"
)

// LogicOperator 逻辑操作符
type LogicOperator string

const (
	LogicAnd LogicOperator = "&&"
	LogicOr  LogicOperator = "||"
)

// Expression 过滤表达式节点，渲染成带?占位符的条件片段
type Expression interface {
	ToSQL(d Dialect) (string, []interface{})
}

// FieldExpression 单字段条件
type FieldExpression struct {
	Field    string
	Operator Operator
	Value    interface{}
}

func (e *FieldExpression) ToSQL(d Dialect) (string, []interface{}) {
	field := d.Quote(e.Field)

	switch e.Operator {
	case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte:
		return fmt.Sprintf("%s %s ?", field, e.Operator), []interface{}{e.Value}
	case OpLike:
		return fmt.Sprintf("%s %s ?", field, d.Like), []interface{}{"%" + fmt.Sprint(e.Value) + "%"}
	case OpNotLike:
		return fmt.Sprintf("%s %s ?", field, d.NotLike), []interface{}{"%" + fmt.Sprint(e.Value) + "%"}
	case OpIn, OpNotIn:
		values := toSlice(e.Value)
		if len(values) == 0 {
			// 空数组无法生成合法的IN，整个条件跳过
			return "", nil
		}
		keyword := "IN"
		if e.Operator == OpNotIn {
			keyword = "NOT IN"
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		return fmt.Sprintf("%s %s (%s)", field, keyword, marks), values
	case OpIsNull:
		return field + " IS NULL", nil
	case OpNotNull:
		return field + " IS NOT NULL", nil
	case OpBetween:
		values := toSlice(e.Value)
		if len(values) < 2 {
			return "", nil
		}
		return field + " BETWEEN ? AND ?", values[:2]
	}
	return "", nil
}

// LogicExpression 逻辑连接，同级的&&或||拍平在一个节点里
type LogicExpression struct {
	Logic       LogicOperator
	Expressions []Expression
}

func (e *LogicExpression) ToSQL(d Dialect) (string, []interface{}) {
	parts := make([]string, 0, len(e.Expressions))
	var args []interface{}

	for _, expr := range e.Expressions {
		sql, exprArgs := expr.ToSQL(d)
		if sql != "" {
			parts = append(parts, sql)
			args = append(args, exprArgs...)
		}
	}

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	}

	connector := " AND "
	if e.Logic == LogicOr {
		connector = " OR "
	}
	return "(" + strings.Join(parts, connector) + ")", args
}

// GroupExpression 括号分组
type GroupExpression struct {
	Inner Expression
}

func (e *GroupExpression) ToSQL(d Dialect) (string, []interface{}) {
	if e.Inner == nil {
		return "", nil
	}
	sql, args := e.Inner.ToSQL(d)
	if sql == "" {
		return "", nil
	}
	return "(" + sql + ")", args
}

// toSlice 数组值归一化为[]interface{}
func toSlice(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []string:
		result := make([]interface{}, len(v))
		for i, s := range v {
			result[i] = s
		}
		return result
	case []int64:
		result := make([]interface{}, len(v))
		for i, n := range v {
			result[i] = n
		}
		return result
	case []float64:
		result := make([]interface{}, len(v))
		for i, n := range v {
			result[i] = n
		}
		return result
	case nil:
		return nil
	default:
		return []interface{}{value}
	}
}
