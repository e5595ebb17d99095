package ssql

import "strings"

// Dialect SQL方言，只处理标识符引用和LIKE差异。
// 占位符统一用?，gorm拿到条件串后会按驱动自行改写，这里不做$N编号。
type Dialect struct {
	QuoteChar string
	Like      string
	NotLike   string
}

var (
	MySQL    = Dialect{QuoteChar: "`", Like: "LIKE", NotLike: "NOT LIKE"}
	Postgres = Dialect{QuoteChar: `"`, Like: "ILIKE", NotLike: "NOT ILIKE"}
	SQLite   = Dialect{QuoteChar: `"`, Like: "LIKE", NotLike: "NOT LIKE"}
)

// Quote 引用字段名，带点的限定名逐段引用
func (d Dialect) Quote(field string) string {
	parts := strings.Split(field, ".")
	for i, p := range parts {
		parts[i] = d.QuoteChar + p + d.QuoteChar
	}
	return strings.Join(parts, ".")
}

// DialectFor 按gorm驱动名选方言，未知驱动按MySQL处理
func DialectFor(driver string) Dialect {
	switch driver {
	case "postgres", "postgresql":
		return Postgres
	case "sqlite", "sqlite3":
		return SQLite
	default:
		return MySQL
	}
}
