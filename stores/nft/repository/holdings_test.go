package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

type holdingsSuite struct {
	suite.Suite
	c    ctx.Ctx
	book *HoldingsBook
}

func TestHoldingsSuite(t *testing.T) {
	suite.Run(t, new(holdingsSuite))
}

func (s *holdingsSuite) SetupTest() {
	s.c = ctx.Background()
	s.book = NewHoldingsBook()
}

func (s *holdingsSuite) balance(nftAddress, owner domain.Address, tokenId domain.TokenId) int64 {
	b, err := s.book.BalanceOf(s.c, nftAddress, owner, tokenId)
	s.Require().NoError(err)
	return b
}

func (s *holdingsSuite) TestMintAndTransfer() {
	collection := domain.Address("0xC000000000000000000000000000000000000001")
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.Require().NoError(s.book.Mint(s.c, collection, alice, "1", 3))
	s.Require().NoError(s.book.Transfer(s.c, collection, alice, bob, "1", 2))

	s.EqualValues(1, s.balance(collection, alice, "1"))
	s.EqualValues(2, s.balance(collection, bob, "1"))

	// addresses are case insensitive
	s.EqualValues(2, s.balance(collection.ToLower(), bob, "1"))
}

func (s *holdingsSuite) TestTransferExceedingBalanceMovesNothing() {
	collection := domain.Address("0xc000000000000000000000000000000000000001")
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.Require().NoError(s.book.Mint(s.c, collection, alice, "1", 1))

	err := s.book.Transfer(s.c, collection, alice, bob, "1", 2)
	s.Require().ErrorIs(err, domain.ErrNotTokenOwner)
	s.EqualValues(1, s.balance(collection, alice, "1"))
	s.Zero(s.balance(collection, bob, "1"))
}

func (s *holdingsSuite) TestHoldingsAreScopedPerToken() {
	collection := domain.Address("0xc000000000000000000000000000000000000001")
	other := domain.Address("0xc000000000000000000000000000000000000002")
	alice := domain.Address("0x1000000000000000000000000000000000000001")

	s.Require().NoError(s.book.Mint(s.c, collection, alice, "1", 1))

	s.Zero(s.balance(collection, alice, "2"))
	s.Zero(s.balance(other, alice, "1"))
}

func (s *holdingsSuite) TestRejectsNonPositiveQuantities() {
	collection := domain.Address("0xc000000000000000000000000000000000000001")
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.ErrorIs(s.book.Mint(s.c, collection, alice, "1", 0), domain.ErrBadParamInput)
	s.ErrorIs(s.book.Transfer(s.c, collection, alice, bob, "1", -1), domain.ErrBadParamInput)
}
