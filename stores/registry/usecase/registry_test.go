package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/registry"
	"github.com/playerself/goauction/stores/registry/repository"
)

type registrySuite struct {
	suite.Suite
	c  ctx.Ctx
	uc registry.UseCase
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(registrySuite))
}

func (s *registrySuite) SetupTest() {
	s.c = ctx.Background()
	s.uc = New(repository.New())
}

func (s *registrySuite) TestRegisterEnablesCollection() {
	collection := domain.Address("0xC000000000000000000000000000000000000001")

	ok, err := s.uc.IsSupported(s.c, collection)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.uc.Register(s.c, collection, domain.TokenType721))

	ok, err = s.uc.IsSupported(s.c, collection)
	s.Require().NoError(err)
	s.True(ok)

	info, err := s.uc.Get(s.c, collection)
	s.Require().NoError(err)
	s.Equal(domain.TokenType721, info.TokenType)
	s.True(info.Enabled)
}

func (s *registrySuite) TestRegisterValidation() {
	s.ErrorIs(s.uc.Register(s.c, "", domain.TokenType721), domain.ErrInvalidAddress)
	s.ErrorIs(s.uc.Register(s.c, "not-an-address", domain.TokenType721), domain.ErrInvalidAddress)
	s.ErrorIs(s.uc.Register(s.c, "0xC000000000000000000000000000000000000001", domain.TokenType(20)), domain.ErrBadParamInput)
}

func (s *registrySuite) TestSetEnabled() {
	collection := domain.Address("0xc000000000000000000000000000000000000001")
	s.Require().NoError(s.uc.Register(s.c, collection, domain.TokenType1155))

	s.Require().NoError(s.uc.SetEnabled(s.c, collection, false))
	ok, err := s.uc.IsSupported(s.c, collection)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.uc.SetEnabled(s.c, collection, true))
	ok, err = s.uc.IsSupported(s.c, collection)
	s.Require().NoError(err)
	s.True(ok)

	s.ErrorIs(s.uc.SetEnabled(s.c, "0xc000000000000000000000000000000000000999", true), domain.ErrNotFound)
}

func (s *registrySuite) TestListIsSortedByAddress() {
	a := domain.Address("0xc000000000000000000000000000000000000002")
	b := domain.Address("0xc000000000000000000000000000000000000001")
	s.Require().NoError(s.uc.Register(s.c, a, domain.TokenType721))
	s.Require().NoError(s.uc.Register(s.c, b, domain.TokenType1155))

	infos, err := s.uc.List(s.c)
	s.Require().NoError(err)
	s.Require().Len(infos, 2)
	s.Equal(b, infos[0].Address)
	s.Equal(a, infos[1].Address)
}
