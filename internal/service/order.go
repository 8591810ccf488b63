package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// MinCheckoutAmount 支付网关允许的最小金额（最小货币单位）
const MinCheckoutAmount int64 = 19000

// OrderService 购买影片
type OrderService struct {
	orders  *repository.OrderRepository
	movies  *repository.MovieRepository
	gateway PaymentGateway
	logger  hclog.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(repos *repository.Repositories, gateway PaymentGateway, logger hclog.Logger) *OrderService {
	return &OrderService{
		orders:  repos.Order,
		movies:  repos.Movie,
		gateway: gateway,
		logger:  logger.Named("order"),
	}
}

// CreateCheckoutSession 为付费影片创建托管支付页
func (s *OrderService) CreateCheckoutSession(ctx context.Context, userID string, req dto.CheckoutRequest) (*Result[dto.CheckoutResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.CheckoutResponse]("%s", msg), nil
	}
	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.CheckoutResponse]("影片 %d 不存在", req.MovieID), nil
	}
	if !movie.IsPaid {
		return Invalid[dto.CheckoutResponse]("影片 %d 无需购买", req.MovieID), nil
	}
	if movie.Price < MinCheckoutAmount {
		return Invalid[dto.CheckoutResponse]("支付金额不能低于 %d", MinCheckoutAmount), nil
	}
	purchased, err := s.orders.HasPurchased(ctx, userID, req.MovieID)
	if err != nil {
		return nil, err
	}
	if purchased {
		return Conflict[dto.CheckoutResponse]("已购买影片 %d", req.MovieID), nil
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, CheckoutParams{
		UserID:   userID,
		MovieID:  movie.ID,
		Title:    movie.Title,
		ImageURL: movie.PosterURL,
		Amount:   movie.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("创建支付会话失败: %w", err)
	}
	return Ok(dto.CheckoutResponse{SessionID: session.ID, URL: session.URL}, ""), nil
}

// CompleteOrder 校验支付结果并记录订单，同一会话重复调用返回同一订单
func (s *OrderService) CompleteOrder(ctx context.Context, userID string, req dto.CompleteOrderRequest) (*Result[dto.OrderResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.OrderResponse]("%s", msg), nil
	}
	session, err := s.gateway.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("查询支付会话失败: %w", err)
	}
	if session == nil {
		return NotFound[dto.OrderResponse]("支付会话不存在"), nil
	}
	if session.UserID != userID {
		return Forbidden[dto.OrderResponse]("支付会话不属于当前用户"), nil
	}
	if !session.Paid {
		return Invalid[dto.OrderResponse]("支付尚未完成"), nil
	}

	order, err := s.orders.CreateIfAbsent(ctx, &model.Order{
		SessionID: session.ID,
		UserID:    session.UserID,
		MovieID:   session.MovieID,
		Amount:    session.Amount,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("订单已完成", "session", session.ID, "user", userID, "movie_id", session.MovieID)
	return Ok(mapper.ToOrderResponse(*order), "支付成功"), nil
}

// HasPurchased 是否已购买
func (s *OrderService) HasPurchased(ctx context.Context, userID string, movieID int) (*Result[bool], error) {
	purchased, err := s.orders.HasPurchased(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return Ok(purchased, ""), nil
}

// GetUserOrders 用户订单
func (s *OrderService) GetUserOrders(ctx context.Context, userID string, page dto.PageQuery) (*Result[dto.PagedResponse[dto.OrderResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	orders, total, err := s.orders.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	items := mapper.Slice(orders, mapper.ToOrderResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}
