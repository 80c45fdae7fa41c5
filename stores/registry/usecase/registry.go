package usecase

import (
	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/validator"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/registry"
)

type impl struct {
	repo registry.Repo
}

func New(repo registry.Repo) registry.UseCase {
	return &impl{repo: repo}
}

func (im *impl) IsSupported(c ctx.Ctx, address domain.Address) (bool, error) {
	info, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return false, err
	}
	return info.Enabled, nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*registry.CollectionInfo, error) {
	return im.repo.FindOne(c, address)
}

func (im *impl) List(c ctx.Ctx) ([]registry.CollectionInfo, error) {
	return im.repo.FindAll(c)
}

func (im *impl) Register(c ctx.Ctx, address domain.Address, tokenType domain.TokenType) error {
	if address.IsEmpty() || !validator.IsValidAddress(string(address)) {
		return domain.ErrInvalidAddress
	}
	if tokenType != domain.TokenType721 && tokenType != domain.TokenType1155 {
		return domain.ErrBadParamInput
	}
	if err := im.repo.Upsert(c, &registry.CollectionInfo{
		Address:   address,
		TokenType: tokenType,
		Enabled:   true,
	}); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) SetEnabled(c ctx.Ctx, address domain.Address, enabled bool) error {
	info, err := im.repo.FindOne(c, address)
	if err != nil {
		return err
	}
	info.Enabled = enabled
	if err := im.repo.Upsert(c, info); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	return nil
}
