package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"golang.org/x/sync/errgroup"
)

// upload 一次上传任务，成功后地址写入 dst
type upload struct {
	file  *dto.File
	video bool
	dst   *string
}

// media 封装上传与清理，任一上传失败时回收已成功的文件
type media struct {
	store  MediaStore
	logger hclog.Logger
}

// uploadAll 并发上传；全部成功才写回地址，返回新地址列表
func (m *media) uploadAll(ctx context.Context, uploads ...upload) ([]string, error) {
	urls := make([]string, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range uploads {
		if u.file == nil {
			continue
		}
		g.Go(func() error {
			var (
				url string
				err error
			)
			if u.video {
				url, err = m.store.UploadVideo(gctx, *u.file)
			} else {
				url, err = m.store.UploadImage(gctx, *u.file)
			}
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.discard(context.WithoutCancel(ctx), urls...)
		return nil, err
	}

	var uploaded []string
	for i, u := range uploads {
		if u.file != nil {
			*u.dst = urls[i]
			uploaded = append(uploaded, urls[i])
		}
	}
	return uploaded, nil
}

// discard 尽力删除文件，失败只记录日志
func (m *media) discard(ctx context.Context, urls ...string) {
	g, gctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		if url == "" {
			continue
		}
		g.Go(func() error {
			if err := m.store.Delete(gctx, url); err != nil {
				m.logger.Warn("删除文件失败", "url", url, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
