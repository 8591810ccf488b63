package service

import (
	"context"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

// MediaStore 文件存储
type MediaStore interface {
	UploadImage(ctx context.Context, file dto.File) (string, error)
	UploadVideo(ctx context.Context, file dto.File) (string, error)
	Delete(ctx context.Context, url string) error
}

// UserDirectory 身份提供方中的用户资料；不存在时返回 nil, nil
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*model.UserProfile, error)
	GetUsers(ctx context.Context) ([]model.UserProfile, error)
}

// CheckoutParams 创建支付会话的参数
type CheckoutParams struct {
	UserID   string
	MovieID  int
	Title    string
	ImageURL string
	Amount   int64
}

// CheckoutSession 托管支付页
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentSession 支付会话状态
type PaymentSession struct {
	ID      string
	Paid    bool
	UserID  string
	MovieID int
	Amount  int64
}

// PaymentGateway 支付网关
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*PaymentSession, error)
}

// Broadcaster 实时推送给所有在线客户端
type Broadcaster interface {
	Broadcast(event any) error
}
