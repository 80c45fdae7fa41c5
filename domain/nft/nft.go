package nft

import (
	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

// Token moves and inspects tokens across every registered collection. The
// erc721 flavor is the unit-quantity special case of the erc1155 surface.
type Token interface {
	Transfer(c ctx.Ctx, nftAddress, from, to domain.Address, tokenId domain.TokenId, quantity int64) error
	BalanceOf(c ctx.Ctx, nftAddress, owner domain.Address, tokenId domain.TokenId) (int64, error)
}
