package dal

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adminboard/pkg/ssql"
)

// QueryBuilder 查询构建器
type QueryBuilder[T any] struct {
	db         *gorm.DB
	conditions []interface{}
	args       []interface{}
	orders     []string
}

// NewQueryBuilder 创建查询构建器
func NewQueryBuilder[T any](db *gorm.DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where 添加条件
func (qb *QueryBuilder[T]) Where(query interface{}, args ...interface{}) *QueryBuilder[T] {
	qb.conditions = append(qb.conditions, query)
	qb.args = append(qb.args, args...)
	return qb
}

// WhereSSql 使用SSQL过滤表达式添加条件，表达式非法或为空时忽略
func (qb *QueryBuilder[T]) WhereSSql(ssqlStr string) *QueryBuilder[T] {
	expr, err := ssql.Parse(ssqlStr)
	if err != nil || expr == nil {
		return qb
	}

	sql, args := expr.ToSQL(ssql.DialectFor(qb.db.Dialector.Name()))
	if sql != "" {
		qb.conditions = append(qb.conditions, sql)
		qb.args = append(qb.args, args...)
	}
	return qb
}

// Order 添加排序
func (qb *QueryBuilder[T]) Order(order string) *QueryBuilder[T] {
	if order != "" {
		qb.orders = append(qb.orders, order)
	}
	return qb
}

// Build 构建查询
func (qb *QueryBuilder[T]) Build(ctx context.Context) *gorm.DB {
	var entity T
	db := qb.db.WithContext(ctx).Model(&entity)

	argIndex := 0
	for _, cond := range qb.conditions {
		switch c := cond.(type) {
		case string:
			argsNeeded := countPlaceholders(c)
			if argIndex+argsNeeded <= len(qb.args) {
				db = db.Where(c, qb.args[argIndex:argIndex+argsNeeded]...)
				argIndex += argsNeeded
			} else {
				db = db.Where(c)
			}
		default:
			db = db.Where(cond)
		}
	}

	for _, order := range qb.orders {
		db = db.Order(order)
	}
	return db
}

// countPlaceholders 计算SQL中的占位符数量
func countPlaceholders(sql string) int {
	count := 0
	for _, c := range sql {
		if c == '?' {
			count++
		}
	}
	return count
}

// First 查询第一条，未找到返回 nil, nil
func (qb *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	var entity T
	if err := qb.Build(ctx).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Paged 分页查询
func (qb *QueryBuilder[T]) Paged(ctx context.Context, pagination *Pagination) (*PagedResult[T], error) {
	var entities []T
	var total int64

	pagination.Normalize()
	db := qb.Build(ctx)

	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}
	if err := db.Offset(pagination.Offset()).Limit(pagination.PageSize).Find(&entities).Error; err != nil {
		return nil, err
	}
	return NewPagedResult(entities, total, pagination), nil
}

// Delete 按条件删除
func (qb *QueryBuilder[T]) Delete(ctx context.Context) error {
	var entity T
	return qb.Build(ctx).Delete(&entity).Error
}
