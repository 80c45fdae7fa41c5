package domain

import (
	"math/big"
	"strings"
)

type Address string

const EmptyAddress Address = "0x0000000000000000000000000000000000000000"

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) ToLowerPtr() *Address {
	l := a.ToLower()
	return &l
}

func (a Address) Equals(b Address) bool {
	return a.ToLower() == b.ToLower()
}

type TokenId string

func (t TokenId) ToBig() (*big.Int, bool) {
	return new(big.Int).SetString(string(t), 10)
}

// AuctionHash identifies one escrowed listing, auction and fixed-price sale
// alike. It is a keccak256 digest in 0x-prefixed hex form.
type AuctionHash string

func (h AuctionHash) ToLower() AuctionHash {
	return AuctionHash(strings.ToLower(string(h)))
}

func (h AuctionHash) IsEmpty() bool {
	return len(h) == 0
}

type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)
