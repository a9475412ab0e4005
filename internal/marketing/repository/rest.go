package repository

import (
	"context"
	"net/http"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/upstream"
)

type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FetchCoupons(ctx context.Context) ([]model.Coupon, error) {
	return upstream.GetList[model.Coupon](ctx, r.client, "/coupons")
}

func (r *RESTRepository) CreateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	return upstream.PostOne[model.Coupon](ctx, r.client, http.MethodPost, "/coupons", c)
}

func (r *RESTRepository) UpdateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	return upstream.PostOne[model.Coupon](ctx, r.client, http.MethodPut, "/coupons/"+c.ID, c)
}

func (r *RESTRepository) DeleteCoupon(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/coupons/"+id)
}

func (r *RESTRepository) FetchReferrals(ctx context.Context) ([]model.Referral, error) {
	return upstream.GetList[model.Referral](ctx, r.client, "/referrals")
}

func (r *RESTRepository) CreateReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error) {
	return upstream.PostOne[model.Referral](ctx, r.client, http.MethodPost, "/referrals", ref)
}

func (r *RESTRepository) UpdateReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error) {
	return upstream.PostOne[model.Referral](ctx, r.client, http.MethodPut, "/referrals/"+ref.ID, ref)
}

func (r *RESTRepository) DeleteReferral(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/referrals/"+id)
}

func (r *RESTRepository) FetchReferralOrders(ctx context.Context, id string) ([]model.Order, error) {
	return upstream.GetList[model.Order](ctx, r.client, "/referrals/"+id+"/orders")
}

func (r *RESTRepository) RecordPayout(ctx context.Context, id string, amount float64) (*model.Referral, error) {
	body := map[string]float64{"amount": amount}
	return upstream.PostOne[model.Referral](ctx, r.client, http.MethodPost, "/referrals/"+id+"/payout", body)
}
