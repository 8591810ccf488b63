package external

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
)

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string]string
	deleted []string
	failPut bool
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string]string)}
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, errors.New("put failed")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := aws.ToString(in.Key)
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutAndKeyFromURL(t *testing.T) {
	api := newFakeObjects()
	store := newS3Store(api, "bucket", "https://d1.cloudfront.net/")

	url, err := store.Put(context.Background(), "images/a.jpg", strings.NewReader("data"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://d1.cloudfront.net/images/a.jpg", url)
	assert.Equal(t, "data", api.objects["images/a.jpg"])

	key, ok := store.KeyFromURL(url + "?v=2")
	assert.True(t, ok)
	assert.Equal(t, "images/a.jpg", key)

	_, ok = store.KeyFromURL("https://elsewhere.com/images/a.jpg")
	assert.False(t, ok)
	_, ok = store.KeyFromURL("https://d1.cloudfront.net/")
	assert.False(t, ok)
}

func TestS3Store_PutError(t *testing.T) {
	api := newFakeObjects()
	api.failPut = true
	store := newS3Store(api, "bucket", "https://cdn")

	_, err := store.Put(context.Background(), "k", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorContains(t, err, "上传对象 k 失败")
}

func TestMediaStore_FallsBackToS3(t *testing.T) {
	api := newFakeObjects()
	store := NewMediaStore(nil, newS3Store(api, "bucket", "https://cdn"), hclog.NewNullLogger())
	ctx := context.Background()

	img, err := store.UploadImage(ctx, dto.File{Name: "Poster.JPG", Content: strings.NewReader("img")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img, "https://cdn/images/"))
	assert.True(t, strings.HasSuffix(img, ".jpg"))

	vid, err := store.UploadVideo(ctx, dto.File{Name: "movie.mp4", Content: strings.NewReader("vid")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(vid, "https://cdn/videos/"))
	assert.Len(t, api.objects, 2)

	require.NoError(t, store.Delete(ctx, img))
	require.NoError(t, store.Delete(ctx, "https://other.example.com/x.jpg"))
	require.NoError(t, store.Delete(ctx, ""))
	assert.Len(t, api.deleted, 1)
	assert.Len(t, api.objects, 1)
}

func TestMediaStore_NoStorage(t *testing.T) {
	store := NewMediaStore(nil, nil, hclog.NewNullLogger())

	_, err := store.UploadImage(context.Background(), poster())
	assert.ErrorIs(t, err, errNoStorage)
	assert.NoError(t, store.Delete(context.Background(), "https://cdn/images/a.jpg"))
}
