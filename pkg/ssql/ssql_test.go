package ssql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) Expression {
	t.Helper()
	expr, err := Parse(input)
	require.NoError(t, err)
	require.NotNil(t, expr)
	return expr
}

func TestParseToSQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sql   string
		args  []interface{}
	}{
		{"eq string", `name = 'tom'`, "`name` = ?", []interface{}{"tom"}},
		{"neq", `status != "D"`, "`status` != ?", []interface{}{"D"}},
		{"gte int", `age >= 18`, "`age` >= ?", []interface{}{int64(18)}},
		{"lt float", `score < 9.5`, "`score` < ?", []interface{}{9.5}},
		{"bool value", `enabled = true`, "`enabled` = ?", []interface{}{true}},
		{"like", `name ~ 'to'`, "`name` LIKE ?", []interface{}{"%to%"}},
		{"not like", `name !~ 'to'`, "`name` NOT LIKE ?", []interface{}{"%to%"}},
		{"in", `role_id ?= [1, 2, 3]`, "`role_id` IN (?, ?, ?)", []interface{}{int64(1), int64(2), int64(3)}},
		{"not in", `status ?!= ['A', 'P']`, "`status` NOT IN (?, ?)", []interface{}{"A", "P"}},
		{"is null", `deleted_at ?null`, "`deleted_at` IS NULL", nil},
		{"not null", `deleted_at ?!null`, "`deleted_at` IS NOT NULL", nil},
		{"between", `age >< [18, 30]`, "`age` BETWEEN ? AND ?", []interface{}{int64(18), int64(30)}},
		{"negative number", `delta > -5`, "`delta` > ?", []interface{}{int64(-5)}},
		{"and chain flattened", `a = 1 && b = 2 && c = 3`, "(`a` = ? AND `b` = ? AND `c` = ?)", []interface{}{int64(1), int64(2), int64(3)}},
		{"or chain flattened", `a = 1 || b = 2 || c = 3`, "(`a` = ? OR `b` = ? OR `c` = ?)", []interface{}{int64(1), int64(2), int64(3)}},
		{"and binds tighter than or", `a = 1 || b = 2 && c = 3`, "(`a` = ? OR (`b` = ? AND `c` = ?))", []interface{}{int64(1), int64(2), int64(3)}},
		{"group", `(a = 1 || b = 2) && c = 3`, "(((`a` = ? OR `b` = ?)) AND `c` = ?)", []interface{}{int64(1), int64(2), int64(3)}},
		{"qualified field", `u.name = 'x'`, "`u`.`name` = ?", []interface{}{"x"}},
		{"escaped string", `name = 'o\'brien'`, "`name` = ?", []interface{}{"o'brien"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := mustParse(t, tt.input).ToSQL(MySQL)
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		expr, err := Parse(input)
		assert.NoError(t, err)
		assert.Nil(t, expr)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		`name =`,          // 缺少值
		`= 1`,             // 缺少字段
		`(a = 1`,          // 括号未闭合
		`a = 1 &&`,        // 逻辑符后为空
		`a = 1 b = 2`,     // 条件之间缺少逻辑符
		`role_id ?= [1,`,  // 数组未闭合
		`name @ 1`,        // 非法字符
		`name = 'abc`,     // 字符串未闭合
		`a = 1 & b = 2`,   // 单个&
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestEmptyInSkipped(t *testing.T) {
	sql, args := mustParse(t, `id ?= []`).ToSQL(MySQL)
	assert.Empty(t, sql)
	assert.Nil(t, args)

	// 逻辑节点里空IN被剔除，剩下的条件照常生成
	sql, args = mustParse(t, `id ?= [] && name = 'x'`).ToSQL(MySQL)
	assert.Equal(t, "`name` = ?", sql)
	assert.Equal(t, []interface{}{"x"}, args)
}

func TestDialects(t *testing.T) {
	expr := mustParse(t, `name ~ 'to'`)

	sql, _ := expr.ToSQL(MySQL)
	assert.Equal(t, "`name` LIKE ?", sql)

	sql, _ = expr.ToSQL(Postgres)
	assert.Equal(t, `"name" ILIKE ?`, sql)

	sql, _ = expr.ToSQL(SQLite)
	assert.Equal(t, `"name" LIKE ?`, sql)

	sql, _ = mustParse(t, `name !~ 'to'`).ToSQL(Postgres)
	assert.Equal(t, `"name" NOT ILIKE ?`, sql)

	assert.Equal(t, `"u"."name"`, Postgres.Quote("u.name"))
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, MySQL, DialectFor("mysql"))
	assert.Equal(t, Postgres, DialectFor("postgres"))
	assert.Equal(t, SQLite, DialectFor("sqlite"))
	assert.Equal(t, MySQL, DialectFor("unknown"))
}

func TestConvertValue(t *testing.T) {
	assert.Equal(t, true, convertValue("true"))
	assert.Equal(t, false, convertValue("False"))
	assert.Nil(t, convertValue("null"))
	assert.Equal(t, int64(42), convertValue("42"))
	assert.Equal(t, 3.14, convertValue("3.14"))
	assert.Equal(t, "hello", convertValue("hello"))
}
