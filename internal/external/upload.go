// Package external 封装文件上传、对象存储、身份服务、支付与实时推送等外部依赖
package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/utils"
)

var (
	// ErrUploadFailed 上传服务返回非成功状态
	ErrUploadFailed = errors.New("上传服务请求失败")
	// ErrMissingField 上传服务响应中缺少地址字段
	ErrMissingField = errors.New("上传服务响应缺少地址字段")
)

// UploadClient 文件上传微服务客户端
type UploadClient struct {
	baseURL string
	client  *utils.HTTPClient
}

// NewUploadClient 创建上传客户端
func NewUploadClient(baseURL string, timeout time.Duration) *UploadClient {
	return &UploadClient{baseURL: baseURL, client: utils.NewHTTPClient(timeout)}
}

// UploadImage 上传图片，返回 photoUrl
func (c *UploadClient) UploadImage(ctx context.Context, file dto.File) (string, error) {
	return c.upload(ctx, "/upload-image", "photoUrl", file)
}

// UploadVideo 上传视频，返回 videoUrl
func (c *UploadClient) UploadVideo(ctx context.Context, file dto.File) (string, error) {
	return c.upload(ctx, "/upload-video", "videoUrl", file)
}

func (c *UploadClient) upload(ctx context.Context, path, field string, file dto.File) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeFilePart(mw, file))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		pr.Close()
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var body map[string]any
	if err := c.client.DoJSON(req, &body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	url, _ := body[field].(string)
	if url == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return url, nil
}

func writeFilePart(mw *multipart.Writer, file dto.File) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "file",
		"filename": file.Name,
	}))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return err
	}
	return mw.Close()
}
