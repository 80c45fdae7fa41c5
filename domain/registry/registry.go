package registry

import (
	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

// CollectionInfo declares a collection the engine accepts for escrow,
// together with its token standard.
type CollectionInfo struct {
	Address   domain.Address   `json:"address"`
	TokenType domain.TokenType `json:"tokenType"`
	Enabled   bool             `json:"enabled"`
}

type Repo interface {
	// FindOne returns domain.ErrNotFound for an unknown collection.
	FindOne(c ctx.Ctx, address domain.Address) (*CollectionInfo, error)
	FindAll(c ctx.Ctx) ([]CollectionInfo, error)
	Upsert(c ctx.Ctx, info *CollectionInfo) error
}

type UseCase interface {
	IsSupported(c ctx.Ctx, address domain.Address) (bool, error)
	Get(c ctx.Ctx, address domain.Address) (*CollectionInfo, error)
	List(c ctx.Ctx) ([]CollectionInfo, error)
	// Register enables a collection. Registering an already known
	// collection updates it in place.
	Register(c ctx.Ctx, address domain.Address, tokenType domain.TokenType) error
	SetEnabled(c ctx.Ctx, address domain.Address, enabled bool) error
}
