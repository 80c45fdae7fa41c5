package auction

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

type ActivityType string

const (
	ActivityTypeCreateAuction   ActivityType = "createAuction"
	ActivityTypeCreateSale      ActivityType = "createSale"
	ActivityTypePlaceBid        ActivityType = "placeBid"
	ActivityTypeBidRefunded     ActivityType = "bidRefunded"
	ActivityTypeSettled         ActivityType = "settled"
	ActivityTypeWithdrawn       ActivityType = "withdrawn"
	ActivityTypeExpired         ActivityType = "expired"
	ActivityTypeUpdateListing   ActivityType = "updateListing"
	ActivityTypeSetFeeRecipient ActivityType = "setFeeRecipient"
)

// Activity is one journal entry emitted by the engine. External indexers
// read these instead of tailing engine logs.
type Activity struct {
	AuctionHash  domain.AuctionHash `json:"auctionHash" bson:"auctionHash"`
	Type         ActivityType       `json:"type" bson:"type"`
	NftAddress   domain.Address     `json:"nftAddress" bson:"nftAddress"`
	TokenIds     []domain.TokenId   `json:"tokenIds" bson:"tokenIds"`
	Account      domain.Address     `json:"account" bson:"account"`
	To           domain.Address     `json:"to" bson:"to"`
	Price        string             `json:"price" bson:"price"`
	DisplayPrice string             `json:"displayPrice" bson:"displayPrice"`
	Time         time.Time          `json:"time" bson:"time"`
}

// DisplayPrice renders a wei amount in whole-coin units for the journal.
func DisplayPrice(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -18).String()
}

type findActivityOptions struct {
	Offset      *int
	Limit       *int
	AuctionHash *domain.AuctionHash
	NftAddress  *domain.Address
	Account     *domain.Address
	Types       []ActivityType
	TimeGTE     *time.Time
}

type FindActivityOptions func(*findActivityOptions) error

func GetFindActivityOptions(opts ...FindActivityOptions) (*findActivityOptions, error) {
	res := &findActivityOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func ActivityWithPagination(offset, limit int) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func ActivityWithAuctionHash(hash domain.AuctionHash) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		h := hash.ToLower()
		opts.AuctionHash = &h
		return nil
	}
}

func ActivityWithNftAddress(nftAddress domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.NftAddress = nftAddress.ToLowerPtr()
		return nil
	}
}

func ActivityWithAccount(account domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Account = account.ToLowerPtr()
		return nil
	}
}

func ActivityWithTypes(types ...ActivityType) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Types = types
		return nil
	}
}

func ActivityWithTimeGTE(t time.Time) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.TimeGTE = &t
		return nil
	}
}

type ActivityRepo interface {
	Insert(ctx.Ctx, *Activity) error
	FindActivities(c ctx.Ctx, opts ...FindActivityOptions) ([]Activity, error)
	CountActivities(c ctx.Ctx, opts ...FindActivityOptions) (int, error)
}
