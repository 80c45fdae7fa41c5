package auction

import (
	"math/big"
	"time"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

// PercentageBase is the denominator for every percentage carried by a
// listing. 1e18 equals 100%, so a 5% platform cut is 5e16.
var PercentageBase = new(big.Int).SetUint64(1_000_000_000_000_000_000)

// Listing is one escrowed bundle of tokens, either a time-boxed auction or a
// fixed-price sale. A zero AuctionBidPeriod marks the fixed-price flavor.
type Listing struct {
	NftAddress            domain.Address   `json:"nftAddress"`
	TokenIds              []domain.TokenId `json:"tokenIds"`
	NftSeller             domain.Address   `json:"nftSeller"`
	MinPrice              *big.Int         `json:"minPrice"`
	BuyNowPrice           *big.Int         `json:"buyNowPrice"`
	NftHighestBid         *big.Int         `json:"nftHighestBid"`
	NftHighestBidder      domain.Address   `json:"nftHighestBidder"`
	WhitelistedBuyer      domain.Address   `json:"whitelistedBuyer"`
	AuctionBidPeriod      time.Duration    `json:"auctionBidPeriod"`
	BidIncreasePercentage *big.Int         `json:"bidIncreasePercentage"`
	AuctionEnd            time.Time        `json:"auctionEnd"`
	FeeRecipients         []domain.Address `json:"feeRecipients"`
	FeePercentages        []*big.Int       `json:"feePercentages"`
}

func (l *Listing) IsZero() bool {
	return l.NftAddress.IsEmpty() && len(l.TokenIds) == 0
}

func (l *Listing) IsSale() bool {
	return l.AuctionBidPeriod == 0
}

func (l *Listing) HasBid() bool {
	return !l.NftHighestBidder.IsEmpty()
}

func (l *Listing) Clone() *Listing {
	c := *l
	c.TokenIds = append([]domain.TokenId(nil), l.TokenIds...)
	c.FeeRecipients = append([]domain.Address(nil), l.FeeRecipients...)
	c.MinPrice = cloneBig(l.MinPrice)
	c.BuyNowPrice = cloneBig(l.BuyNowPrice)
	c.NftHighestBid = cloneBig(l.NftHighestBid)
	c.BidIncreasePercentage = cloneBig(l.BidIncreasePercentage)
	c.FeePercentages = nil
	for _, p := range l.FeePercentages {
		c.FeePercentages = append(c.FeePercentages, cloneBig(p))
	}
	return &c
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// TokensAndFees mirrors the token bundle and fee schedule of a listing. All
// slices are empty once the listing has been settled or withdrawn.
type TokensAndFees struct {
	TokenIds       []domain.TokenId `json:"tokenIds"`
	FeeRecipients  []domain.Address `json:"feeRecipients"`
	FeePercentages []*big.Int       `json:"feePercentages"`
}

type CreateAuctionReq struct {
	Seller                domain.Address
	NftAddress            domain.Address
	TokenIds              []domain.TokenId
	MinPrice              *big.Int
	BuyNowPrice           *big.Int
	Duration              time.Duration
	AuctionBidPeriod      time.Duration
	BidIncreasePercentage *big.Int
	FeeRecipients         []domain.Address
	FeePercentages        []*big.Int
}

type CreateSaleReq struct {
	Seller           domain.Address
	NftAddress       domain.Address
	TokenIds         []domain.TokenId
	BuyNowPrice      *big.Int
	WhitelistedBuyer domain.Address
	FeeRecipients    []domain.Address
	FeePercentages   []*big.Int
}

// Ledger owns the listing records. Reads against an unknown hash yield a
// zero record rather than an error, and Reset leaves the same zero record
// behind, so callers cannot tell a settled listing from one that never was.
type Ledger interface {
	Get(ctx.Ctx, domain.AuctionHash) (*Listing, error)
	Put(ctx.Ctx, domain.AuctionHash, *Listing) error
	Reset(ctx.Ctx, domain.AuctionHash) error
}

// FeeRecipientRepo keeps per-collection overrides that halve the platform
// cut with the configured default recipient.
type FeeRecipientRepo interface {
	Get(c ctx.Ctx, nftAddress domain.Address) (domain.Address, error)
	Set(c ctx.Ctx, nftAddress, recipient domain.Address) error
}

type UseCase interface {
	CreateAuction(c ctx.Ctx, req *CreateAuctionReq) (domain.AuctionHash, error)
	CreateSale(c ctx.Ctx, req *CreateSaleReq) (domain.AuctionHash, error)
	MakeBid(c ctx.Ctx, bidder domain.Address, hash domain.AuctionHash, payment *big.Int) error
	TakeHighestBid(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error
	SettleAuction(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error
	WithdrawAuction(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error
	UpdateMinimumPrice(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, price *big.Int) error
	UpdateBuyNowPrice(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, price *big.Int) error
	UpdateWhitelistedBuyer(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, buyer domain.Address) error
	SetFeeRecipient(c ctx.Ctx, caller, nftAddress, recipient domain.Address) error
	GetAuction(c ctx.Ctx, hash domain.AuctionHash) (*Listing, error)
	GetTokensAndFees(c ctx.Ctx, hash domain.AuctionHash) (*TokensAndFees, error)
}
