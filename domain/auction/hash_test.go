package auction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playerself/goauction/domain"
)

func TestNewAuctionHash(t *testing.T) {
	req := require.New(t)

	collection := domain.Address("0xC000000000000000000000000000000000000001")
	seller := domain.Address("0x1000000000000000000000000000000000000001")
	ids := []domain.TokenId{"1", "2"}

	h1 := NewAuctionHash(collection, seller, ids, "salt-a")
	req.Len(string(h1), 66)
	req.Equal("0x", string(h1)[:2])

	// same inputs and salt derive the same hash
	req.Equal(h1, NewAuctionHash(collection, seller, ids, "salt-a"))

	// address case does not matter
	req.Equal(h1, NewAuctionHash(collection.ToLower(), seller, ids, "salt-a"))

	// a fresh salt separates relistings of the same bundle
	req.NotEqual(h1, NewAuctionHash(collection, seller, ids, "salt-b"))

	req.NotEqual(h1, NewAuctionHash(collection, seller, []domain.TokenId{"2", "1"}, "salt-a"))
}
