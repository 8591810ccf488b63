package external

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/service"
)

// StripeGateway 基于 Stripe Checkout 的支付网关
type StripeGateway struct {
	api *client.API
	cfg config.StripeConfig
}

// NewStripeGateway 创建支付网关
func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{api: api, cfg: cfg}
}

// CreateCheckoutSession 创建托管支付页
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p service.CheckoutParams) (*service.CheckoutSession, error) {
	params := checkoutParams(g.cfg, p)
	params.Context = ctx
	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("创建支付会话失败: %w", err)
	}
	return &service.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// GetSession 查询支付会话，不存在时返回 nil, nil
func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*service.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, nil
		}
		return nil, fmt.Errorf("查询支付会话失败: %w", err)
	}
	return toPaymentSession(s), nil
}

func checkoutParams(cfg config.StripeConfig, p service.CheckoutParams) *stripe.CheckoutSessionParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(p.Title),
	}
	if p.ImageURL != "" {
		product.Images = stripe.StringSlice([]string{p.ImageURL})
	}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(cfg.SuccessURL),
		CancelURL:         stripe.String(cfg.CancelURL),
		ClientReferenceID: stripe.String(p.UserID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(cfg.Currency),
				UnitAmount:  stripe.Int64(p.Amount),
				ProductData: product,
			},
		}},
	}
	params.AddMetadata("user_id", p.UserID)
	params.AddMetadata("movie_id", strconv.Itoa(p.MovieID))
	return params
}

func toPaymentSession(s *stripe.CheckoutSession) *service.PaymentSession {
	userID := s.Metadata["user_id"]
	if userID == "" {
		userID = s.ClientReferenceID
	}
	movieID, _ := strconv.Atoi(s.Metadata["movie_id"])
	return &service.PaymentSession{
		ID:      s.ID,
		Paid:    s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		UserID:  userID,
		MovieID: movieID,
		Amount:  s.AmountTotal,
	}
}
