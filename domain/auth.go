package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/playerself/goauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues an access token after verifying the personal-sign
	// signature over the signing message.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
