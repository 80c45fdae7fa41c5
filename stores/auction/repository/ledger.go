package repository

import (
	"math/big"
	"sync"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
)

// ledgerRepo keeps listing records in process memory. The engine serializes
// all mutations, so a single lock around the arena is enough.
type ledgerRepo struct {
	mu       sync.RWMutex
	listings map[domain.AuctionHash]*auction.Listing
}

func NewLedger() auction.Ledger {
	return &ledgerRepo{
		listings: map[domain.AuctionHash]*auction.Listing{},
	}
}

// Get returns a zero record for unknown hashes. Settled, withdrawn and
// never-created listings are indistinguishable to the caller.
func (r *ledgerRepo) Get(c ctx.Ctx, hash domain.AuctionHash) (*auction.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[hash.ToLower()]
	if !ok {
		return zeroListing(), nil
	}
	return l.Clone(), nil
}

// zeroListing carries zero amounts and zero addresses rather than nils, so a
// tombstoned record renders the same shape as a live one.
func zeroListing() *auction.Listing {
	return &auction.Listing{
		NftAddress:            domain.EmptyAddress,
		TokenIds:              []domain.TokenId{},
		NftSeller:             domain.EmptyAddress,
		MinPrice:              new(big.Int),
		BuyNowPrice:           new(big.Int),
		NftHighestBid:         new(big.Int),
		NftHighestBidder:      domain.EmptyAddress,
		WhitelistedBuyer:      domain.EmptyAddress,
		BidIncreasePercentage: new(big.Int),
		FeeRecipients:         []domain.Address{},
		FeePercentages:        []*big.Int{},
	}
}

func (r *ledgerRepo) Put(c ctx.Ctx, hash domain.AuctionHash, l *auction.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listings[hash.ToLower()] = l.Clone()
	return nil
}

func (r *ledgerRepo) Reset(c ctx.Ctx, hash domain.AuctionHash) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listings, hash.ToLower())
	return nil
}
