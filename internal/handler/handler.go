// Package handler 把 HTTP 请求转换为服务调用，并把 Result 映射为统一响应
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/service"
	"github.com/user/filmhub/internal/utils"
)

// Services 处理器依赖的全部服务
type Services struct {
	Movie        *service.MovieService
	Episode      *service.EpisodeService
	Genre        *service.GenreService
	BlogPost     *service.BlogPostService
	BlogTag      *service.BlogTagService
	Post         *service.PostService
	Tag          *service.TagService
	Comment      *service.CommentService
	WatchHistory *service.WatchHistoryService
	User         *service.UserService
	Notification *service.NotificationService
	Order        *service.OrderService
	Statistic    *service.StatisticService
}

// WebSocketServer 实时推送连接入口
type WebSocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// Handler HTTP 处理器
type Handler struct {
	Services
	ws     WebSocketServer
	logger hclog.Logger
}

// NewHandler 创建处理器
func NewHandler(services Services, ws WebSocketServer, logger hclog.Logger) *Handler {
	return &Handler{Services: services, ws: ws, logger: logger.Named("handler")}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// WebSocket 升级为 WebSocket 连接并接收广播
func (h *Handler) WebSocket(c *gin.Context) {
	h.ws.ServeWS(c.Writer, c.Request)
}

// ok 以 200 返回 Result
func ok[T any](h *Handler, c *gin.Context, res *service.Result[T], err error) {
	reply(h, c, http.StatusOK, res, err)
}

// created 以 201 返回 Result
func created[T any](h *Handler, c *gin.Context, res *service.Result[T], err error) {
	reply(h, c, http.StatusCreated, res, err)
}

// reply 非预期错误只记录日志，客户端拿到通用的 500 消息
func reply[T any](h *Handler, c *gin.Context, status int, res *service.Result[T], err error) {
	if err != nil {
		h.logger.Error("请求处理失败", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		utils.InternalServerError(c, "")
		return
	}
	if !res.Success {
		switch res.Kind {
		case service.KindNotFound:
			utils.NotFound(c, res.Message)
		case service.KindConflict:
			utils.Conflict(c, res.Message)
		case service.KindForbidden:
			utils.Forbidden(c, res.Message)
		default:
			utils.BadRequest(c, res.Message)
		}
		return
	}
	utils.SuccessWithMessage(c, status, res.Message, res.Data)
}

// paramID 解析路径中的整数 ID，失败时直接返回 400
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}

// queryID 解析可选的查询参数 ID，未提供时返回 0
func queryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的 "+name)
		return 0, false
	}
	return id, true
}

// pageQuery 读取分页参数；管理员可以看到隐藏内容
func pageQuery(c *gin.Context) (dto.PageQuery, bool) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.BadRequest(c, "无效的分页参数")
		return page, false
	}
	page.IncludeHidden = middleware.IsAdmin(c)
	return page, true
}

// bindJSON 解析 JSON 请求体，字段校验由服务层完成
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return false
	}
	return true
}

// bindForm 解析 multipart 表单中的普通字段
func bindForm(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		utils.BadRequest(c, "无效的表单数据")
		return false
	}
	return true
}

// currentUser 取登录用户 ID，未登录时返回 401
func currentUser(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		utils.Unauthorized(c, "")
		return "", false
	}
	return userID, true
}

// formFiles 收集请求中的上传文件，处理结束后统一关闭
type formFiles struct {
	c       *gin.Context
	closers []io.Closer
}

func newFormFiles(c *gin.Context) *formFiles {
	return &formFiles{c: c}
}

// get 读取文件字段，字段不存在或请求不是 multipart 时返回 nil
func (f *formFiles) get(field string) (*dto.File, error) {
	header, err := f.c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, file)
	return &dto.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, nil
}

// bind 依次读取字段并写入目标
func (f *formFiles) bind(targets map[string]**dto.File) bool {
	for field, dst := range targets {
		file, err := f.get(field)
		if err != nil {
			utils.BadRequest(f.c, "无效的上传文件: "+field)
			return false
		}
		*dst = file
	}
	return true
}

func (f *formFiles) Close() {
	for _, c := range f.closers {
		c.Close()
	}
}
