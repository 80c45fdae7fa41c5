package usecase_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/ethereum"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/stores/auth/usecase"
)

const signingMsgTemplate = "Sign this message to log in.\n\nWallet address:\n%s"

func TestSignAndParseToken(t *testing.T) {
	privateKey, publicKey, err := ethereum.GenerateKey()
	assert.NoError(t, err)
	address := strings.ToLower(crypto.PubkeyToAddress(*publicKey).Hex())

	msg := []byte(fmt.Sprintf(signingMsgTemplate, address))
	signature, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	assert.NoError(t, err)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signingMsgTemplate)
	tkn, err := u.SignToken(ctx, domain.Address(address), hexutil.Encode(signature))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address, ads)
}

func TestSignTokenRejectsWrongSigner(t *testing.T) {
	privateKey, _, err := ethereum.GenerateKey()
	assert.NoError(t, err)
	_, otherPub, err := ethereum.GenerateKey()
	assert.NoError(t, err)
	claimed := strings.ToLower(crypto.PubkeyToAddress(*otherPub).Hex())

	msg := []byte(fmt.Sprintf(signingMsgTemplate, claimed))
	signature, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	assert.NoError(t, err)

	u := usecase.New("jwt-secret", signingMsgTemplate)
	_, err = u.SignToken(ctx.Background(), domain.Address(claimed), hexutil.Encode(signature))
	assert.Equal(t, domain.ErrInvalidSignature, err)
}
