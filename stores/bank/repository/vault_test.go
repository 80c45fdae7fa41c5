package repository

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/domain"
)

type vaultSuite struct {
	suite.Suite
	c     ctx.Ctx
	vault *Vault
}

func TestVaultSuite(t *testing.T) {
	suite.Run(t, new(vaultSuite))
}

func (s *vaultSuite) SetupTest() {
	s.c = ctx.Background()
	s.vault = NewVault()
}

func (s *vaultSuite) balance(owner domain.Address) *big.Int {
	b, err := s.vault.BalanceOf(s.c, owner)
	s.Require().NoError(err)
	return b
}

func (s *vaultSuite) TestDepositAndTransfer() {
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.Require().NoError(s.vault.Deposit(s.c, alice, big.NewInt(100)))
	s.Require().NoError(s.vault.Transfer(s.c, alice, bob, big.NewInt(30)))

	s.Equal(big.NewInt(70), s.balance(alice))
	s.Equal(big.NewInt(30), s.balance(bob))

	// addresses are case insensitive
	s.Equal(big.NewInt(70), s.balance("0x1000000000000000000000000000000000000001"))
}

func (s *vaultSuite) TestTransferExceedingBalanceMovesNothing() {
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")
	s.Require().NoError(s.vault.Deposit(s.c, alice, big.NewInt(10)))

	err := s.vault.Transfer(s.c, alice, bob, big.NewInt(11))
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.Equal(big.NewInt(10), s.balance(alice))
	s.Zero(s.balance(bob).Sign())

	err = s.vault.Transfer(s.c, bob, alice, big.NewInt(1))
	s.ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *vaultSuite) TestZeroTransferIsNoop() {
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.NoError(s.vault.Transfer(s.c, alice, bob, new(big.Int)))
	s.Zero(s.balance(bob).Sign())
}

func (s *vaultSuite) TestRejectsNilAndNegativeAmounts() {
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	bob := domain.Address("0x1000000000000000000000000000000000000002")

	s.ErrorIs(s.vault.Deposit(s.c, alice, nil), domain.ErrBadParamInput)
	s.ErrorIs(s.vault.Deposit(s.c, alice, big.NewInt(-1)), domain.ErrBadParamInput)
	s.ErrorIs(s.vault.Transfer(s.c, alice, bob, big.NewInt(-1)), domain.ErrBadParamInput)
}

func (s *vaultSuite) TestBalanceOfReturnsCopy() {
	alice := domain.Address("0x1000000000000000000000000000000000000001")
	s.Require().NoError(s.vault.Deposit(s.c, alice, big.NewInt(5)))

	s.balance(alice).SetInt64(999)
	s.Equal(big.NewInt(5), s.balance(alice))
}
