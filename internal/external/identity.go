package external

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	usersPerPage = 100
	maxUserPages = 10
)

// IdentityClient Auth0 管理接口客户端，令牌由 client credentials 流程获取并自动续期
type IdentityClient struct {
	baseURL string
	client  *utils.HTTPClient
}

// NewIdentityClient 创建身份服务客户端；Domain 可带协议前缀
func NewIdentityClient(cfg config.IdentityConfig) *IdentityClient {
	origin := cfg.Domain
	if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		origin = "https://" + origin
	}
	origin = strings.TrimRight(origin, "/")

	audience := cfg.Audience
	if audience == "" {
		audience = origin + "/api/v2/"
	}
	cc := &clientcredentials.Config{
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		TokenURL:       origin + "/oauth/token",
		EndpointParams: url.Values{"audience": {audience}},
		AuthStyle:      oauth2.AuthStyleInParams,
	}
	base := &http.Client{Timeout: cfg.Timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := cc.Client(ctx)
	httpClient.Timeout = cfg.Timeout

	return &IdentityClient{
		baseURL: origin + "/api/v2",
		client:  utils.NewHTTPClientWith(httpClient),
	}
}

// GetUser 获取单个用户，不存在时返回 nil, nil
func (c *IdentityClient) GetUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	var user model.UserProfile
	if err := c.client.DoJSON(req, &user); err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("获取用户 %s 失败: %w", userID, err)
	}
	return &user, nil
}

// GetUsers 分页拉取全部用户
func (c *IdentityClient) GetUsers(ctx context.Context) ([]model.UserProfile, error) {
	var all []model.UserProfile
	for page := 0; page < maxUserPages; page++ {
		query := url.Values{
			"page":     {fmt.Sprint(page)},
			"per_page": {fmt.Sprint(usersPerPage)},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users?"+query.Encode(), nil)
		if err != nil {
			return nil, err
		}
		var batch []model.UserProfile
		if err := c.client.DoJSON(req, &batch); err != nil {
			return nil, fmt.Errorf("获取用户列表失败: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < usersPerPage {
			break
		}
	}
	return all, nil
}
