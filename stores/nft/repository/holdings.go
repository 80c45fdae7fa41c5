package repository

import (
	"sync"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/log"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/nft"
)

type holdingKey struct {
	nftAddress domain.Address
	tokenId    domain.TokenId
	owner      domain.Address
}

// HoldingsBook tracks token ownership per collection in process memory. It
// backs both standards; erc721 collections simply never hold more than one
// unit per token.
type HoldingsBook struct {
	mu       sync.Mutex
	balances map[holdingKey]int64
}

var _ nft.Token = (*HoldingsBook)(nil)

func NewHoldingsBook() *HoldingsBook {
	return &HoldingsBook{
		balances: map[holdingKey]int64{},
	}
}

func makeHoldingKey(nftAddress domain.Address, tokenId domain.TokenId, owner domain.Address) holdingKey {
	return holdingKey{
		nftAddress: nftAddress.ToLower(),
		tokenId:    tokenId,
		owner:      owner.ToLower(),
	}
}

// Mint credits freshly issued tokens to an owner.
func (b *HoldingsBook) Mint(c ctx.Ctx, nftAddress, to domain.Address, tokenId domain.TokenId, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrBadParamInput
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[makeHoldingKey(nftAddress, tokenId, to)] += quantity
	return nil
}

func (b *HoldingsBook) Transfer(c ctx.Ctx, nftAddress, from, to domain.Address, tokenId domain.TokenId, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrBadParamInput
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fromKey := makeHoldingKey(nftAddress, tokenId, from)
	if b.balances[fromKey] < quantity {
		c.WithFields(log.Fields{
			"nftAddress": nftAddress,
			"tokenId":    tokenId,
			"from":       from,
		}).Warn("transfer exceeds balance")
		return domain.ErrNotTokenOwner
	}

	b.balances[fromKey] -= quantity
	if b.balances[fromKey] == 0 {
		delete(b.balances, fromKey)
	}
	b.balances[makeHoldingKey(nftAddress, tokenId, to)] += quantity
	return nil
}

func (b *HoldingsBook) BalanceOf(c ctx.Ctx, nftAddress, owner domain.Address, tokenId domain.TokenId) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.balances[makeHoldingKey(nftAddress, tokenId, owner)], nil
}
