package http

import (
	"math/big"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/delivery"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
	authMiddleware "github.com/playerself/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction    auction.UseCase
	activities auction.ActivityRepo
}

// New wires the auction endpoints. Reads are public, everything that moves
// tokens or funds requires an authenticated caller.
func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, uc auction.UseCase, activities auction.ActivityRepo) {
	h := &handler{auction: uc, activities: activities}

	g := e.Group("/auctions")
	g.POST("", h.createAuction, am.Auth())
	g.GET("/:hash", h.getAuction)
	g.GET("/:hash/tokensAndFees", h.getTokensAndFees)
	g.GET("/:hash/activities", h.getActivities)
	g.POST("/:hash/bids", h.makeBid, am.Auth())
	g.POST("/:hash/accept", h.takeHighestBid, am.Auth())
	g.POST("/:hash/settle", h.settleAuction, am.Auth())
	g.POST("/:hash/withdraw", h.withdrawAuction, am.Auth())
	g.PUT("/:hash/minPrice", h.updateMinimumPrice, am.Auth())
	g.PUT("/:hash/buyNowPrice", h.updateBuyNowPrice, am.Auth())
	g.PUT("/:hash/whitelistedBuyer", h.updateWhitelistedBuyer, am.Auth())

	e.POST("/sales", h.createSale, am.Auth())
	e.PUT("/collections/:nftAddress/feeRecipient", h.setFeeRecipient, am.Auth())
}

func statusFor(err error) int {
	switch err {
	case domain.ErrAuctionNotFound, domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnauthorized:
		return http.StatusForbidden
	case domain.ErrAuctionStillGoing, domain.ErrAuctionEnded, domain.ErrNotAnAuction, domain.ErrNoBids:
		return http.StatusConflict
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return v, nil
}

func (h *handler) createAuction(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type params struct {
		NftAddress            domain.Address   `json:"nftAddress" validate:"required"`
		TokenIds              []domain.TokenId `json:"tokenIds" validate:"required"`
		MinPrice              string           `json:"minPrice"`
		BuyNowPrice           string           `json:"buyNowPrice"`
		DurationSec           int64            `json:"durationSec" validate:"required"`
		BidPeriodSec          int64            `json:"bidPeriodSec" validate:"required"`
		BidIncreasePercentage string           `json:"bidIncreasePercentage"`
		FeeRecipients         []domain.Address `json:"feeRecipients"`
		FeePercentages        []string         `json:"feePercentages"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	minPrice, err := parseAmount(p.MinPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	buyNowPrice, err := parseAmount(p.BuyNowPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	increase, err := parseAmount(p.BidIncreasePercentage)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	percentages, err := parseAmounts(p.FeePercentages)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	hash, err := h.auction.CreateAuction(context, &auction.CreateAuctionReq{
		Seller:                seller,
		NftAddress:            p.NftAddress,
		TokenIds:              p.TokenIds,
		MinPrice:              minPrice,
		BuyNowPrice:           buyNowPrice,
		Duration:              time.Duration(p.DurationSec) * time.Second,
		AuctionBidPeriod:      time.Duration(p.BidPeriodSec) * time.Second,
		BidIncreasePercentage: increase,
		FeeRecipients:         p.FeeRecipients,
		FeePercentages:        percentages,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

func (h *handler) createSale(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type params struct {
		NftAddress       domain.Address   `json:"nftAddress" validate:"required"`
		TokenIds         []domain.TokenId `json:"tokenIds" validate:"required"`
		BuyNowPrice      string           `json:"buyNowPrice" validate:"required"`
		WhitelistedBuyer domain.Address   `json:"whitelistedBuyer"`
		FeeRecipients    []domain.Address `json:"feeRecipients"`
		FeePercentages   []string         `json:"feePercentages"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	buyNowPrice, err := parseAmount(p.BuyNowPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	percentages, err := parseAmounts(p.FeePercentages)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	hash, err := h.auction.CreateSale(context, &auction.CreateSaleReq{
		Seller:           seller,
		NftAddress:       p.NftAddress,
		TokenIds:         p.TokenIds,
		BuyNowPrice:      buyNowPrice,
		WhitelistedBuyer: p.WhitelistedBuyer,
		FeeRecipients:    p.FeeRecipients,
		FeePercentages:   percentages,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

func (h *handler) getAuction(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	hash := domain.AuctionHash(c.Param("hash"))

	l, err := h.auction.GetAuction(context, hash)
	if err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) getTokensAndFees(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	hash := domain.AuctionHash(c.Param("hash"))

	res, err := h.auction.GetTokensAndFees(context, hash)
	if err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getActivities(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	hash := domain.AuctionHash(c.Param("hash"))

	type params struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}
	p := &params{Limit: 50}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.activities.FindActivities(context,
		auction.ActivityWithAuctionHash(hash),
		auction.ActivityWithPagination(p.Offset, p.Limit),
	)
	if err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) makeBid(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	type params struct {
		Payment string `json:"payment" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payment, err := parseAmount(p.Payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.MakeBid(context, bidder, hash, payment); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) takeHighestBid(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	if err := h.auction.TakeHighestBid(context, caller, hash); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) settleAuction(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	if err := h.auction.SettleAuction(context, caller, hash); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdrawAuction(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	if err := h.auction.WithdrawAuction(context, caller, hash); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateMinimumPrice(c echo.Context) error {
	return h.updateAmount(c, h.auction.UpdateMinimumPrice)
}

func (h *handler) updateBuyNowPrice(c echo.Context) error {
	return h.updateAmount(c, h.auction.UpdateBuyNowPrice)
}

func (h *handler) updateAmount(c echo.Context, update func(ctx.Ctx, domain.Address, domain.AuctionHash, *big.Int) error) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	type params struct {
		Price string `json:"price" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := parseAmount(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := update(context, caller, hash, price); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateWhitelistedBuyer(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	hash := domain.AuctionHash(c.Param("hash"))

	type params struct {
		Buyer domain.Address `json:"buyer"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.UpdateWhitelistedBuyer(context, caller, hash, p.Buyer); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setFeeRecipient(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	nftAddress := domain.Address(c.Param("nftAddress"))

	type params struct {
		Recipient domain.Address `json:"recipient" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetFeeRecipient(context, caller, nftAddress, p.Recipient); err != nil {
		return delivery.MakeJsonResp(c, statusFor(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func parseAmounts(values []string) ([]*big.Int, error) {
	res := make([]*big.Int, 0, len(values))
	for _, v := range values {
		amount, err := parseAmount(v)
		if err != nil {
			return nil, err
		}
		if amount == nil {
			amount = new(big.Int)
		}
		res = append(res, amount)
	}
	return res, nil
}
