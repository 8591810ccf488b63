// Package dto 定义接口层的请求与响应结构
package dto

import "io"

// PageQuery 分页参数，pageNumber 从 1 开始；IncludeHidden 仅由管理员请求设置
type PageQuery struct {
	PageNumber    int  `form:"pageNumber" json:"pageNumber"`
	PageSize      int  `form:"pageSize" json:"pageSize"`
	IncludeHidden bool `form:"-" json:"-"`
}

// PagedResponse 分页响应
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResponse 组装分页响应
func NewPagedResponse[T any](items []T, pageNumber, pageSize int, total int64) PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PagedResponse[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: pages,
	}
}

// File 上传的文件内容
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}
