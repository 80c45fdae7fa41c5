package main

import (
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/database/mongoclient"
	"github.com/playerself/goauction/base/delivery"
	"github.com/playerself/goauction/base/log"
	bValidator "github.com/playerself/goauction/base/validator"
	"github.com/playerself/goauction/domain"
	mmiddleware "github.com/playerself/goauction/middleware"
	"github.com/playerself/goauction/service/query"
	auction_delivery "github.com/playerself/goauction/stores/auction/delivery/http"
	auction_repository "github.com/playerself/goauction/stores/auction/repository"
	auction_usecase "github.com/playerself/goauction/stores/auction/usecase"
	auth_delivery "github.com/playerself/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/playerself/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/playerself/goauction/stores/auth/usecase"
	bank_repository "github.com/playerself/goauction/stores/bank/repository"
	nft_repository "github.com/playerself/goauction/stores/nft/repository"
	registry_delivery "github.com/playerself/goauction/stores/registry/delivery/http"
	registry_repository "github.com/playerself/goauction/stores/registry/repository"
	registry_usecase "github.com/playerself/goauction/stores/registry/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// repositories
	ledger := auction_repository.NewLedger()
	feeRecipients := auction_repository.NewFeeRecipientRepo()
	activities := auction_repository.NewActivityRepo(q)
	registryRepo := registry_repository.New()
	holdings := nft_repository.NewHoldingsBook()
	vault := bank_repository.NewVault()

	// usecases
	registryUC := registry_usecase.New(registryRepo)

	platformFee, ok := new(big.Int).SetString(viper.GetString("auction.platformFeePercentage"), 10)
	if !ok {
		log.Log().Panic("invalid auction.platformFeePercentage")
	}
	auctionUC := auction_usecase.NewAuctionUseCase(&auction_usecase.AuctionUseCaseCfg{
		Ledger:                ledger,
		FeeRecipients:         feeRecipients,
		Activities:            activities,
		Registry:              registryUC,
		Nft:                   holdings,
		Bank:                  vault,
		Owner:                 domain.Address(viper.GetString("auction.owner")),
		EscrowAccount:         domain.Address(viper.GetString("auction.escrowAccount")),
		DefaultFeeRecipient:   domain.Address(viper.GetString("auction.defaultFeeRecipient")),
		PlatformFeePercentage: platformFee,
	})

	signingMsgTemplate := viper.GetString("auth.signingMsgTemplate")
	authUC := auth_usecase.New(viper.GetString("auth.jwtSecret"), signingMsgTemplate)
	am := auth_middleware.New(authUC, viper.GetStringSlice("adminAddresses"))

	// delivery
	auth_delivery.New(e, authUC, signingMsgTemplate)
	auction_delivery.New(e, am, auctionUC, activities)
	registry_delivery.New(e, am, registryUC)

	e.GET("/healthcheck", func(c echo.Context) error {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	})

	// dev-only faucets to seed the in-process rails
	if viper.GetBool("debug") {
		e.POST("/dev/faucet", func(c echo.Context) error {
			cont := c.Get("ctx").(ctx.Ctx)
			type params struct {
				To     domain.Address `json:"to" validate:"required"`
				Amount string         `json:"amount" validate:"required"`
			}
			p := &params{}
			if err := c.Bind(p); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			amount, ok := new(big.Int).SetString(p.Amount, 10)
			if !ok {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
			}
			if err := vault.Deposit(cont, p.To, amount); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			return delivery.MakeJsonResp(c, http.StatusOK, "ok")
		})
		e.POST("/dev/mint", func(c echo.Context) error {
			cont := c.Get("ctx").(ctx.Ctx)
			type params struct {
				NftAddress domain.Address `json:"nftAddress" validate:"required"`
				To         domain.Address `json:"to" validate:"required"`
				TokenId    domain.TokenId `json:"tokenId" validate:"required"`
				Quantity   int64          `json:"quantity"`
			}
			p := &params{Quantity: 1}
			if err := c.Bind(p); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			if err := holdings.Mint(cont, p.NftAddress, p.To, p.TokenId, p.Quantity); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			return delivery.MakeJsonResp(c, http.StatusOK, "ok")
		})
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
