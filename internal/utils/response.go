package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一API响应结构
type Response struct {
	Success bool   `json:"success"` // 是否成功
	Data    any    `json:"data"`    // 数据
	Message string `json:"message"` // 消息
}

// Success 返回成功响应
func Success(c *gin.Context, data any) {
	SuccessWithMessage(c, http.StatusOK, "success", data)
}

// Created 返回 201
func Created(c *gin.Context, message string, data any) {
	SuccessWithMessage(c, http.StatusCreated, message, data)
}

// SuccessWithMessage 返回成功响应并自定义状态码和消息
func SuccessWithMessage(c *gin.Context, code int, message string, data any) {
	if message == "" {
		message = "success"
	}
	c.JSON(code, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Data:    nil,
		Message: message,
	})
}

// AbortWithError 返回错误响应并中断后续处理
func AbortWithError(c *gin.Context, code int, message string) {
	Error(c, code, message)
	c.Abort()
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 返回401错误
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "未登录"
	}
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 返回403错误
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "无权访问"
	}
	Error(c, http.StatusForbidden, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, http.StatusNotFound, message)
}

// Conflict 返回409错误
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError 返回500错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	Error(c, http.StatusInternalServerError, message)
}
