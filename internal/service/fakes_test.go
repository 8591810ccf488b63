package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/testutil"
)

var errUpload = errors.New("upload failed")

type fakeStore struct {
	mu       sync.Mutex
	seq      int
	uploaded []string
	deleted  []string
	failOn   string // 文件名匹配时上传失败
}

func (f *fakeStore) put(kind string, file dto.File) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && file.Name == f.failOn {
		return "", errUpload
	}
	f.seq++
	url := fmt.Sprintf("https://cdn.test/%s/%d-%s", kind, f.seq, file.Name)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeStore) UploadImage(_ context.Context, file dto.File) (string, error) {
	return f.put("images", file)
}

func (f *fakeStore) UploadVideo(_ context.Context, file dto.File) (string, error) {
	return f.put("videos", file)
}

func (f *fakeStore) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStore) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func (f *fakeStore) Uploaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploaded...)
}

type fakeUsers struct {
	users    map[string]model.UserProfile
	err      error
	getCalls int
	allCalls int
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (*model.UserProfile, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) GetUsers(_ context.Context) ([]model.UserProfile, error) {
	f.allCalls++
	if f.err != nil {
		return nil, f.err
	}
	res := make([]model.UserProfile, 0, len(f.users))
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, nil
}

type fakeGateway struct {
	created  []CheckoutParams
	sessions map[string]*PaymentSession
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, p CheckoutParams) (*CheckoutSession, error) {
	f.created = append(f.created, p)
	id := fmt.Sprintf("cs_test_%d", len(f.created))
	return &CheckoutSession{ID: id, URL: "https://checkout.test/" + id}, nil
}

func (f *fakeGateway) GetSession(_ context.Context, id string) (*PaymentSession, error) {
	return f.sessions[id], nil
}

type fakeBroadcaster struct {
	events []Event
	err    error
}

func (f *fakeBroadcaster) Broadcast(event any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event.(Event))
	return nil
}

func file(name string) *dto.File {
	return &dto.File{Name: name, ContentType: "application/octet-stream", Size: 4, Content: bytes.NewReader([]byte("data"))}
}

func testLogger() hclog.Logger {
	return hclog.NewNullLogger()
}

type fixture struct {
	repos    *repository.Repositories
	store    *fakeStore
	episodes *EpisodeService
	history  *WatchHistoryService
	movies   *MovieService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := testutil.NewRepos(t)
	store := &fakeStore{}
	episodes := NewEpisodeService(repos, store, testLogger())
	history := NewWatchHistoryService(repos, testLogger())
	return &fixture{
		repos:    repos,
		store:    store,
		episodes: episodes,
		history:  history,
		movies:   NewMovieService(repos, episodes, history, store, testLogger()),
	}
}

func (f *fixture) genre(t *testing.T, name string) int {
	t.Helper()
	g := model.Genre{Name: name, IsShow: true}
	if _, err := f.repos.Genre.Add(context.Background(), &g); err != nil {
		t.Fatal(err)
	}
	return g.ID
}

func movieRequest(title string, genreIDs ...int) dto.CreateMovieRequest {
	return dto.CreateMovieRequest{
		Title:    title,
		Director: "Michael Mann",
		Actors:   []string{"Al Pacino", "Robert De Niro"},
		IsShow:   true,
		GenreIDs: genreIDs,
		Poster:   file("poster.jpg"),
		Banner:   file("banner.jpg"),
	}
}

func byViewer(id string) repository.Query {
	return repository.Where(repository.Eq("user_id", id))
}
