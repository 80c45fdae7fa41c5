package repository

import (
	"sort"
	"sync"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/registry"
)

type registryRepo struct {
	mu          sync.RWMutex
	collections map[domain.Address]registry.CollectionInfo
}

func New() registry.Repo {
	return &registryRepo{
		collections: map[domain.Address]registry.CollectionInfo{},
	}
}

func (r *registryRepo) FindOne(c ctx.Ctx, address domain.Address) (*registry.CollectionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.collections[address.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &info, nil
}

func (r *registryRepo) FindAll(c ctx.Ctx) ([]registry.CollectionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]registry.CollectionInfo, 0, len(r.collections))
	for _, info := range r.collections {
		res = append(res, info)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Address < res[j].Address })
	return res, nil
}

func (r *registryRepo) Upsert(c ctx.Ctx, info *registry.CollectionInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *info
	stored.Address = info.Address.ToLower()
	r.collections[stored.Address] = stored
	return nil
}
