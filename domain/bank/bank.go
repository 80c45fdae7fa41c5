package bank

import (
	"math/big"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

// Bank is the funds rail under the engine. The engine's own account acts as
// the escrow for standing bids.
type Bank interface {
	// Transfer returns domain.ErrInsufficientFunds when the sender cannot
	// cover the amount. No partial moves.
	Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
}
