package repository

import (
	"math/big"
	"sync"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/log"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/bank"
)

// Vault is an in-process funds rail. Every account balance lives in one map
// guarded by a single lock so a transfer is atomic.
type Vault struct {
	mu       sync.Mutex
	balances map[domain.Address]*big.Int
}

var _ bank.Bank = (*Vault)(nil)

func NewVault() *Vault {
	return &Vault{
		balances: map[domain.Address]*big.Int{},
	}
}

// Deposit credits an account with external funds.
func (v *Vault) Deposit(c ctx.Ctx, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.credit(to, amount)
	return nil
}

func (v *Vault) Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if amount.Sign() == 0 {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	balance, ok := v.balances[from.ToLower()]
	if !ok || balance.Cmp(amount) < 0 {
		c.WithFields(log.Fields{
			"from":   from,
			"amount": amount.String(),
		}).Warn("transfer exceeds balance")
		return domain.ErrInsufficientFunds
	}

	balance.Sub(balance, amount)
	v.credit(to, amount)
	return nil
}

func (v *Vault) BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	balance, ok := v.balances[owner.ToLower()]
	if !ok {
		return new(big.Int), nil
	}
	return new(big.Int).Set(balance), nil
}

func (v *Vault) credit(to domain.Address, amount *big.Int) {
	key := to.ToLower()
	balance, ok := v.balances[key]
	if !ok {
		balance = new(big.Int)
		v.balances[key] = balance
	}
	balance.Add(balance, amount)
}
