package repository

import (
	"sync"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
)

type feeRecipientRepo struct {
	mu        sync.RWMutex
	overrides map[domain.Address]domain.Address
}

func NewFeeRecipientRepo() auction.FeeRecipientRepo {
	return &feeRecipientRepo{
		overrides: map[domain.Address]domain.Address{},
	}
}

func (r *feeRecipientRepo) Get(c ctx.Ctx, nftAddress domain.Address) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipient, ok := r.overrides[nftAddress.ToLower()]
	if !ok {
		return domain.EmptyAddress, nil
	}
	return recipient, nil
}

func (r *feeRecipientRepo) Set(c ctx.Ctx, nftAddress, recipient domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[nftAddress.ToLower()] = recipient.ToLower()
	return nil
}
