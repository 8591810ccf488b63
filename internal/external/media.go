package external

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
)

var errNoStorage = errors.New("未配置文件存储")

// MediaStore 组合上传服务与 S3：配置了上传服务时通过它上传，否则直接写入 S3；删除统一走 S3
type MediaStore struct {
	uploader *UploadClient
	objects  *S3Store
	logger   hclog.Logger
}

// NewMediaStore uploader 与 objects 均可为 nil
func NewMediaStore(uploader *UploadClient, objects *S3Store, logger hclog.Logger) *MediaStore {
	return &MediaStore{uploader: uploader, objects: objects, logger: logger.Named("media")}
}

// UploadImage 上传图片
func (m *MediaStore) UploadImage(ctx context.Context, file dto.File) (string, error) {
	if m.uploader != nil {
		return m.uploader.UploadImage(ctx, file)
	}
	return m.put(ctx, "images", file)
}

// UploadVideo 上传视频
func (m *MediaStore) UploadVideo(ctx context.Context, file dto.File) (string, error) {
	if m.uploader != nil {
		return m.uploader.UploadVideo(ctx, file)
	}
	return m.put(ctx, "videos", file)
}

// Delete 按公开地址删除对象；不属于本存储的地址只记录日志
func (m *MediaStore) Delete(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	if m.objects == nil {
		m.logger.Warn("未配置对象存储，跳过删除", "url", url)
		return nil
	}
	key, ok := m.objects.KeyFromURL(url)
	if !ok {
		m.logger.Warn("地址不属于对象存储，跳过删除", "url", url)
		return nil
	}
	return m.objects.Delete(ctx, key)
}

func (m *MediaStore) put(ctx context.Context, prefix string, file dto.File) (string, error) {
	if m.objects == nil {
		return "", errNoStorage
	}
	key := prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(file.Name))
	return m.objects.Put(ctx, key, file.Content, file.Size, file.ContentType)
}
