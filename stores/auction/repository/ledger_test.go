package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
)

type ledgerSuite struct {
	suite.Suite
	c      ctx.Ctx
	ledger auction.Ledger
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupTest() {
	s.c = ctx.Background()
	s.ledger = NewLedger()
}

func (s *ledgerSuite) listing() *auction.Listing {
	return &auction.Listing{
		NftAddress:            "0xc000000000000000000000000000000000000001",
		TokenIds:              []domain.TokenId{"1"},
		NftSeller:             "0x1000000000000000000000000000000000000001",
		MinPrice:              big.NewInt(10),
		BuyNowPrice:           new(big.Int),
		NftHighestBid:         new(big.Int),
		NftHighestBidder:      domain.EmptyAddress,
		WhitelistedBuyer:      domain.EmptyAddress,
		AuctionBidPeriod:      time.Hour,
		BidIncreasePercentage: big.NewInt(1),
		AuctionEnd:            time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ledgerSuite) TestGetUnknownHashYieldsZeroRecord() {
	l, err := s.ledger.Get(s.c, "0xunknown")
	s.Require().NoError(err)
	s.True(l.IsZero())

	// amounts are zero, not nil, so the record renders zeros like a live one
	s.Require().NotNil(l.MinPrice)
	s.Zero(l.MinPrice.Sign())
	s.Zero(l.BuyNowPrice.Sign())
	s.Zero(l.NftHighestBid.Sign())
	s.Zero(l.BidIncreasePercentage.Sign())
	s.Equal(domain.EmptyAddress, l.NftSeller)
	s.Equal(domain.EmptyAddress, l.NftHighestBidder)
	s.NotNil(l.TokenIds)
	s.NotNil(l.FeeRecipients)
	s.NotNil(l.FeePercentages)
}

func (s *ledgerSuite) TestPutAndGet() {
	s.Require().NoError(s.ledger.Put(s.c, "0xABC", s.listing()))

	// hashes are case insensitive
	l, err := s.ledger.Get(s.c, "0xabc")
	s.Require().NoError(err)
	s.Equal(s.listing(), l)
}

func (s *ledgerSuite) TestGetReturnsIndependentCopy() {
	s.Require().NoError(s.ledger.Put(s.c, "0xabc", s.listing()))

	l, err := s.ledger.Get(s.c, "0xabc")
	s.Require().NoError(err)
	l.MinPrice.SetInt64(999)
	l.TokenIds[0] = "tampered"

	fresh, err := s.ledger.Get(s.c, "0xabc")
	s.Require().NoError(err)
	s.Equal(big.NewInt(10), fresh.MinPrice)
	s.Equal(domain.TokenId("1"), fresh.TokenIds[0])
}

func (s *ledgerSuite) TestResetLeavesZeroRecord() {
	s.Require().NoError(s.ledger.Put(s.c, "0xabc", s.listing()))
	s.Require().NoError(s.ledger.Reset(s.c, "0xabc"))

	l, err := s.ledger.Get(s.c, "0xabc")
	s.Require().NoError(err)
	s.True(l.IsZero())
	s.Require().NotNil(l.NftHighestBid)
	s.Zero(l.NftHighestBid.Sign())

	// resetting an unknown hash is a no-op
	s.NoError(s.ledger.Reset(s.c, "0xother"))
}

func (s *ledgerSuite) TestFeeRecipientOverrides() {
	repo := NewFeeRecipientRepo()

	got, err := repo.Get(s.c, "0xc000000000000000000000000000000000000001")
	s.Require().NoError(err)
	s.Equal(domain.EmptyAddress, got)

	s.Require().NoError(repo.Set(s.c, "0xC000000000000000000000000000000000000001", "0x1000000000000000000000000000000000000009"))
	got, err = repo.Get(s.c, "0xc000000000000000000000000000000000000001")
	s.Require().NoError(err)
	s.Equal(domain.Address("0x1000000000000000000000000000000000000009"), got)
}
