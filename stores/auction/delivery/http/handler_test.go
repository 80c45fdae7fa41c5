package http

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/validator"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
	"github.com/playerself/goauction/domain/auction/mocks"
)

const (
	testSeller = domain.Address("0x1000000000000000000000000000000000000001")
	testBidder = domain.Address("0x1000000000000000000000000000000000000002")
	testHash   = domain.AuctionHash("0x59225a8d0c4b1d3c2e8f1f6f0d9c7b5a3e1d0f9e8d7c6b5a493827160f0e0d0c")
)

type handlerSuite struct {
	suite.Suite
	e       *echo.Echo
	uc      *mocks.UseCase
	handler *handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.uc = &mocks.UseCase{}
	s.handler = &handler{auction: s.uc}
}

func (s *handlerSuite) newContext(method, body string, caller domain.Address) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	if !caller.IsEmpty() {
		c.Set("address", caller)
	}
	return c, rec
}

func (s *handlerSuite) TestMakeBid() {
	s.uc.On("MakeBid", mock.Anything, testBidder, testHash, big.NewInt(1000)).Return(nil)

	c, rec := s.newContext(http.MethodPost, `{"payment":"1000"}`, testBidder)
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.makeBid(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"ok","status":"success"}`, rec.Body.String())
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) TestMakeBidUnknownAuction() {
	s.uc.On("MakeBid", mock.Anything, testBidder, testHash, mock.Anything).
		Return(domain.ErrAuctionNotFound)

	c, rec := s.newContext(http.MethodPost, `{"payment":"1000"}`, testBidder)
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.makeBid(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Auction does not exist.")
}

func (s *handlerSuite) TestMakeBidRejectsMalformedAmount() {
	c, rec := s.newContext(http.MethodPost, `{"payment":"1.5e18"}`, testBidder)
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.makeBid(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.uc.AssertNotCalled(s.T(), "MakeBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestCreateAuction() {
	s.uc.On("CreateAuction", mock.Anything, &auction.CreateAuctionReq{
		Seller:           testSeller,
		NftAddress:       "0xc000000000000000000000000000000000000001",
		TokenIds:         []domain.TokenId{"1"},
		MinPrice:         big.NewInt(100),
		Duration:         24 * time.Hour,
		AuctionBidPeriod: 600 * time.Second,
		FeePercentages:   []*big.Int{},
	}).Return(testHash, nil)

	body := `{
		"nftAddress": "0xc000000000000000000000000000000000000001",
		"tokenIds": ["1"],
		"minPrice": "100",
		"durationSec": 86400,
		"bidPeriodSec": 600
	}`
	c, rec := s.newContext(http.MethodPost, body, testSeller)

	s.Require().NoError(s.handler.createAuction(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), string(testHash))
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) TestCreateAuctionRequiresParams() {
	c, rec := s.newContext(http.MethodPost, `{"tokenIds":["1"]}`, testSeller)

	s.Require().NoError(s.handler.createAuction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.uc.AssertNotCalled(s.T(), "CreateAuction", mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestCreateSale() {
	s.uc.On("CreateSale", mock.Anything, &auction.CreateSaleReq{
		Seller:         testSeller,
		NftAddress:     "0xc000000000000000000000000000000000000001",
		TokenIds:       []domain.TokenId{"1", "2"},
		BuyNowPrice:    big.NewInt(500),
		FeePercentages: []*big.Int{},
	}).Return(testHash, nil)

	body := `{
		"nftAddress": "0xc000000000000000000000000000000000000001",
		"tokenIds": ["1", "2"],
		"buyNowPrice": "500"
	}`
	c, rec := s.newContext(http.MethodPost, body, testSeller)

	s.Require().NoError(s.handler.createSale(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) TestGetAuction() {
	s.uc.On("GetAuction", mock.Anything, testHash).Return(&auction.Listing{
		NftAddress: "0xc000000000000000000000000000000000000001",
		NftSeller:  testSeller,
	}, nil)

	c, rec := s.newContext(http.MethodGet, "", "")
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.getAuction(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "0xc000000000000000000000000000000000000001")
}

func (s *handlerSuite) TestSettleAuctionConflict() {
	s.uc.On("SettleAuction", mock.Anything, testSeller, testHash).
		Return(domain.ErrAuctionStillGoing)

	c, rec := s.newContext(http.MethodPost, "", testSeller)
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.settleAuction(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *handlerSuite) TestUpdateBuyNowPrice() {
	s.uc.On("UpdateBuyNowPrice", mock.Anything, testSeller, testHash, big.NewInt(2000)).
		Return(nil)

	c, rec := s.newContext(http.MethodPut, `{"price":"2000"}`, testSeller)
	c.SetParamNames("hash")
	c.SetParamValues(string(testHash))

	s.Require().NoError(s.handler.updateBuyNowPrice(c))
	s.Equal(http.StatusOK, rec.Code)
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) TestSetFeeRecipientForbidden() {
	s.uc.On("SetFeeRecipient", mock.Anything, testBidder, domain.Address("0xc000000000000000000000000000000000000001"), testSeller).
		Return(domain.ErrUnauthorized)

	c, rec := s.newContext(http.MethodPut, `{"recipient":"`+string(testSeller)+`"}`, testBidder)
	c.SetParamNames("nftAddress")
	c.SetParamValues("0xc000000000000000000000000000000000000001")

	s.Require().NoError(s.handler.setFeeRecipient(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		domain.ErrAuctionNotFound:     http.StatusNotFound,
		domain.ErrUnauthorized:        http.StatusForbidden,
		domain.ErrAuctionStillGoing:   http.StatusConflict,
		domain.ErrAuctionEnded:        http.StatusConflict,
		domain.ErrNoBids:              http.StatusConflict,
		domain.ErrInternalServerError: http.StatusInternalServerError,
		domain.ErrInvalidPayment:      http.StatusBadRequest,
	}
	for err, want := range cases {
		if got := statusFor(err); got != want {
			t.Errorf("statusFor(%v) = %d, want %d", err, got, want)
		}
	}
}
