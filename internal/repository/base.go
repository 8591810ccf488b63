package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Op 条件运算符
type Op string

const (
	OpEq        Op = "="
	OpNe        Op = "<>"
	OpGt        Op = ">"
	OpGte       Op = ">="
	OpLt        Op = "<"
	OpLte       Op = "<="
	OpIn        Op = "IN"
	OpNotIn     Op = "NOT IN"
	OpIsNull    Op = "IS NULL"
	OpIsNotNull Op = "IS NOT NULL"
	OpLike      Op = "LIKE"
	OpNotLike   Op = "NOT LIKE"
)

var columnPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Condition 单个过滤条件，纯数据描述
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Eq column = value
func Eq(column string, value any) Condition {
	return Condition{Column: column, Op: OpEq, Value: value}
}

// Ne column <> value
func Ne(column string, value any) Condition {
	return Condition{Column: column, Op: OpNe, Value: value}
}

// Gte column >= value
func Gte(column string, value any) Condition {
	return Condition{Column: column, Op: OpGte, Value: value}
}

// Lt column < value
func Lt(column string, value any) Condition {
	return Condition{Column: column, Op: OpLt, Value: value}
}

// Lte column <= value
func Lte(column string, value any) Condition {
	return Condition{Column: column, Op: OpLte, Value: value}
}

// In column IN (values)
func In(column string, values any) Condition {
	return Condition{Column: column, Op: OpIn, Value: values}
}

// Like column LIKE value
func Like(column string, value any) Condition {
	return Condition{Column: column, Op: OpLike, Value: value}
}

// NotLike column NOT LIKE value
func NotLike(column string, value any) Condition {
	return Condition{Column: column, Op: OpNotLike, Value: value}
}

// IsNull column IS NULL
func IsNull(column string) Condition {
	return Condition{Column: column, Op: OpIsNull}
}

// Order 排序
type Order struct {
	Column string
	Desc   bool
}

// Page 分页参数，Number 从 1 开始
type Page struct {
	Number int
	Size   int
}

// NewPage 规范化分页参数
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset skip = (pageNumber-1)*pageSize
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit take = pageSize
func (p Page) Limit() int {
	return p.Size
}

// Query 过滤 + 排序 + 分页 + 预加载的组合描述
type Query struct {
	Conditions []Condition
	Orders     []Order
	Page       *Page
	Preloads   []string
}

// Where 以条件构造查询
func Where(conds ...Condition) Query {
	return Query{Conditions: conds}
}

// And 追加条件
func (q Query) And(conds ...Condition) Query {
	q.Conditions = append(append([]Condition{}, q.Conditions...), conds...)
	return q
}

// OrderBy 追加排序
func (q Query) OrderBy(column string, desc bool) Query {
	q.Orders = append(append([]Order{}, q.Orders...), Order{Column: column, Desc: desc})
	return q
}

// Paged 设置分页
func (q Query) Paged(p Page) Query {
	q.Page = &p
	return q
}

// With 设置预加载关联
func (q Query) With(preloads ...string) Query {
	q.Preloads = append(append([]string{}, q.Preloads...), preloads...)
	return q
}

// Repository 单表通用仓库
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository 创建通用仓库
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Add 新增记录（不级联写入关联）
func (r *Repository[T]) Add(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Update 整行保存（不级联写入关联）
func (r *Repository[T]) Update(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Remove 按主键删除
func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}

// RemoveRange 按条件批量删除，条件不能为空
func (r *Repository[T]) RemoveRange(ctx context.Context, q Query) (int64, error) {
	if len(q.Conditions) == 0 {
		return 0, errors.New("RemoveRange 需要至少一个条件")
	}
	res := r.BaseQuery(ctx, Query{Conditions: q.Conditions}).Delete(new(T))
	return res.RowsAffected, res.Error
}

// GetByID 根据主键查找，不存在返回 nil, nil
func (r *Repository[T]) GetByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetAll 获取全部记录
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

// Count 统计满足条件的记录数
func (r *Repository[T]) Count(ctx context.Context, q Query) (int64, error) {
	var count int64
	err := r.BaseQuery(ctx, Query{Conditions: q.Conditions}).Count(&count).Error
	return count, err
}

// FindAll 按条件查询，支持排序与分页
func (r *Repository[T]) FindAll(ctx context.Context, q Query) ([]T, error) {
	tx := r.BaseQuery(ctx, q)
	tx = applyOrderAndPage(tx, q)
	entities := []T{}
	err := tx.Find(&entities).Error
	return entities, err
}

// FindPaged 同时返回当前页数据与总数
func (r *Repository[T]) FindPaged(ctx context.Context, q Query) ([]T, int64, error) {
	total, err := r.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	items, err := r.FindAll(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// BaseQuery 返回只带条件与预加载的查询，调用方可继续追加 Joins 等
func (r *Repository[T]) BaseQuery(ctx context.Context, q Query) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(T))
	for _, c := range q.Conditions {
		if !columnPattern.MatchString(c.Column) {
			_ = tx.AddError(fmt.Errorf("非法列名: %q", c.Column))
			return tx
		}
		switch c.Op {
		case OpIsNull, OpIsNotNull:
			tx = tx.Where(fmt.Sprintf("%s %s", c.Column, c.Op))
		case OpIn, OpNotIn:
			tx = tx.Where(fmt.Sprintf("%s %s ?", c.Column, c.Op), c.Value)
		case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpLike, OpNotLike:
			tx = tx.Where(fmt.Sprintf("%s %s ?", c.Column, c.Op), c.Value)
		default:
			_ = tx.AddError(fmt.Errorf("不支持的运算符: %q", c.Op))
			return tx
		}
	}
	for _, p := range q.Preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// DB 暴露底层连接，供实体仓库组合事务
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func applyOrderAndPage(tx *gorm.DB, q Query) *gorm.DB {
	for _, o := range q.Orders {
		if !columnPattern.MatchString(o.Column) {
			_ = tx.AddError(fmt.Errorf("非法排序列: %q", o.Column))
			return tx
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column, Raw: true}, Desc: o.Desc})
	}
	if q.Page != nil {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Limit())
	}
	return tx
}

// uniqueIDs 去重并保持顺序
func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
