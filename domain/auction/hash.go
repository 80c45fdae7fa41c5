package auction

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/playerself/goauction/domain"
)

// NewAuctionHash derives the identity of a listing from the escrowed bundle
// plus a caller-supplied salt. The salt keeps relistings of the same bundle
// from colliding with a settled record.
func NewAuctionHash(nftAddress, seller domain.Address, tokenIds []domain.TokenId, salt string) domain.AuctionHash {
	var buf bytes.Buffer
	buf.WriteString(nftAddress.ToLowerStr())
	buf.WriteString(seller.ToLowerStr())
	for _, id := range tokenIds {
		buf.WriteString(string(id))
	}
	buf.WriteString(salt)
	return domain.AuctionHash(hexutil.Encode(crypto.Keccak256(buf.Bytes())))
}
