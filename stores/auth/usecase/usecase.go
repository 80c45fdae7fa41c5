package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/ethereum"
	"github.com/playerself/goauction/domain"
)

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
}

func New(jwtSecret, signingMsgTemplate string) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(jwtSecret),
		signingMsgTemplate: signingMsgTemplate,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	msg := []byte(fmt.Sprintf(im.signingMsgTemplate, address.ToLowerStr()))
	if valid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithField("err", err).Error("ethereum.ValidateMsgSignature failed")
		return "", err
	} else if !valid {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", err
}
