package usecase

import (
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/log"
	"github.com/playerself/goauction/base/validator"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
	"github.com/playerself/goauction/domain/bank"
	"github.com/playerself/goauction/domain/nft"
	"github.com/playerself/goauction/domain/registry"
)

var (
	timeNow = time.Now
	newSalt = uuid.NewString
)

type AuctionUseCaseCfg struct {
	Ledger        auction.Ledger
	FeeRecipients auction.FeeRecipientRepo
	Activities    auction.ActivityRepo
	Registry      registry.UseCase
	Nft           nft.Token
	Bank          bank.Bank

	// Owner may rebind per-collection fee recipients.
	Owner domain.Address
	// EscrowAccount holds escrowed tokens and standing bids.
	EscrowAccount       domain.Address
	DefaultFeeRecipient domain.Address
	// PlatformFeePercentage of the gross amount, over auction.PercentageBase.
	PlatformFeePercentage *big.Int
	// DefaultBidIncreasePercentage applies when a create request omits one.
	DefaultBidIncreasePercentage *big.Int
}

type impl struct {
	// one operation mutates the ledger at a time
	mu sync.Mutex

	ledger        auction.Ledger
	feeRecipients auction.FeeRecipientRepo
	activities    auction.ActivityRepo
	registry      registry.UseCase
	nft           nft.Token
	bank          bank.Bank

	owner                        domain.Address
	escrowAccount                domain.Address
	defaultFeeRecipient          domain.Address
	platformFeePercentage        *big.Int
	defaultBidIncreasePercentage *big.Int
}

func NewAuctionUseCase(cfg *AuctionUseCaseCfg) auction.UseCase {
	defaultIncrease := cfg.DefaultBidIncreasePercentage
	if defaultIncrease == nil {
		// 1%
		defaultIncrease = new(big.Int).Div(auction.PercentageBase, big.NewInt(100))
	}
	return &impl{
		ledger:                       cfg.Ledger,
		feeRecipients:                cfg.FeeRecipients,
		activities:                   cfg.Activities,
		registry:                     cfg.Registry,
		nft:                          cfg.Nft,
		bank:                         cfg.Bank,
		owner:                        cfg.Owner.ToLower(),
		escrowAccount:                cfg.EscrowAccount.ToLower(),
		defaultFeeRecipient:          cfg.DefaultFeeRecipient.ToLower(),
		platformFeePercentage:        cfg.PlatformFeePercentage,
		defaultBidIncreasePercentage: defaultIncrease,
	}
}

func (im *impl) CreateAuction(c ctx.Ctx, req *auction.CreateAuctionReq) (domain.AuctionHash, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.validateNewListing(c, req.Seller, req.NftAddress, req.TokenIds, req.FeeRecipients, req.FeePercentages); err != nil {
		return "", err
	}
	if req.AuctionBidPeriod <= 0 {
		return "", domain.ErrInvalidBidPeriod
	}
	if req.Duration <= 0 {
		return "", domain.ErrBadParamInput
	}

	increase := req.BidIncreasePercentage
	if increase == nil || increase.Sign() == 0 {
		increase = im.defaultBidIncreasePercentage
	}

	l := &auction.Listing{
		NftAddress:            req.NftAddress.ToLower(),
		TokenIds:              append([]domain.TokenId{}, req.TokenIds...),
		NftSeller:             req.Seller.ToLower(),
		MinPrice:              orZero(req.MinPrice),
		BuyNowPrice:           orZero(req.BuyNowPrice),
		NftHighestBid:         new(big.Int),
		NftHighestBidder:      domain.EmptyAddress,
		WhitelistedBuyer:      domain.EmptyAddress,
		AuctionBidPeriod:      req.AuctionBidPeriod,
		BidIncreasePercentage: new(big.Int).Set(increase),
		AuctionEnd:            timeNow().Add(req.Duration),
		FeeRecipients:         lowerAll(req.FeeRecipients),
		FeePercentages:        req.FeePercentages,
	}

	hash, err := im.escrowAndRecord(c, l)
	if err != nil {
		return "", err
	}

	im.journal(c, &auction.Activity{
		AuctionHash:  hash,
		Type:         auction.ActivityTypeCreateAuction,
		NftAddress:   l.NftAddress,
		TokenIds:     l.TokenIds,
		Account:      l.NftSeller,
		Price:        l.MinPrice.String(),
		DisplayPrice: auction.DisplayPrice(l.MinPrice),
	})
	c.WithFields(log.Fields{
		"auctionHash": hash,
		"nftAddress":  l.NftAddress,
		"seller":      l.NftSeller,
	}).Info("auction created")
	return hash, nil
}

func (im *impl) CreateSale(c ctx.Ctx, req *auction.CreateSaleReq) (domain.AuctionHash, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.validateNewListing(c, req.Seller, req.NftAddress, req.TokenIds, req.FeeRecipients, req.FeePercentages); err != nil {
		return "", err
	}
	if req.BuyNowPrice == nil || req.BuyNowPrice.Sign() <= 0 {
		return "", domain.ErrZeroBuyNowPrice
	}
	if !req.WhitelistedBuyer.IsEmpty() && req.WhitelistedBuyer.Equals(req.Seller) {
		return "", domain.ErrSelfWhitelistedBuyer
	}

	whitelisted := domain.EmptyAddress
	if !req.WhitelistedBuyer.IsEmpty() {
		whitelisted = req.WhitelistedBuyer.ToLower()
	}

	l := &auction.Listing{
		NftAddress:            req.NftAddress.ToLower(),
		TokenIds:              append([]domain.TokenId{}, req.TokenIds...),
		NftSeller:             req.Seller.ToLower(),
		MinPrice:              new(big.Int),
		BuyNowPrice:           new(big.Int).Set(req.BuyNowPrice),
		NftHighestBid:         new(big.Int),
		NftHighestBidder:      domain.EmptyAddress,
		WhitelistedBuyer:      whitelisted,
		BidIncreasePercentage: new(big.Int),
		FeeRecipients:         lowerAll(req.FeeRecipients),
		FeePercentages:        req.FeePercentages,
	}

	hash, err := im.escrowAndRecord(c, l)
	if err != nil {
		return "", err
	}

	im.journal(c, &auction.Activity{
		AuctionHash:  hash,
		Type:         auction.ActivityTypeCreateSale,
		NftAddress:   l.NftAddress,
		TokenIds:     l.TokenIds,
		Account:      l.NftSeller,
		Price:        l.BuyNowPrice.String(),
		DisplayPrice: auction.DisplayPrice(l.BuyNowPrice),
	})
	c.WithFields(log.Fields{
		"auctionHash": hash,
		"nftAddress":  l.NftAddress,
		"seller":      l.NftSeller,
	}).Info("sale created")
	return hash, nil
}

func (im *impl) MakeBid(c ctx.Ctx, bidder domain.Address, hash domain.AuctionHash, payment *big.Int) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if l.NftSeller.Equals(bidder) {
		return domain.ErrBidOnOwnAuction
	}
	if !l.WhitelistedBuyer.IsEmpty() && !l.WhitelistedBuyer.Equals(bidder) {
		return domain.ErrOnlyWhitelistedBuyer
	}
	if payment == nil || payment.Sign() <= 0 {
		return domain.ErrInvalidPayment
	}

	if l.IsSale() {
		if payment.Cmp(l.BuyNowPrice) != 0 {
			return domain.ErrInvalidPayment
		}
		if err := im.bank.Transfer(c, bidder, im.escrowAccount, payment); err != nil {
			return err
		}
		if err := im.settle(c, hash, l, bidder.ToLower(), payment); err != nil {
			im.returnPayment(c, bidder, payment)
			return err
		}
		return nil
	}

	if !timeNow().Before(l.AuctionEnd) {
		return domain.ErrAuctionEnded
	}

	if l.HasBid() {
		required := new(big.Int).Add(l.NftHighestBid, percentageOf(l.NftHighestBid, l.BidIncreasePercentage))
		if payment.Cmp(required) < 0 {
			return domain.ErrInvalidPayment
		}
	} else if l.MinPrice.Sign() > 0 && payment.Cmp(l.MinPrice) < 0 {
		return domain.ErrInvalidPayment
	}

	if err := im.bank.Transfer(c, bidder, im.escrowAccount, payment); err != nil {
		return err
	}

	prevBidder, prevBid := l.NftHighestBidder, l.NftHighestBid

	if l.BuyNowPrice.Sign() > 0 && payment.Cmp(l.BuyNowPrice) >= 0 {
		if err := im.settle(c, hash, l, bidder.ToLower(), payment); err != nil {
			im.returnPayment(c, bidder, payment)
			return err
		}
		im.refundBid(c, hash, l, prevBidder, prevBid)
		return nil
	}

	l.NftHighestBidder = bidder.ToLower()
	l.NftHighestBid = new(big.Int).Set(payment)
	if remaining := l.AuctionEnd.Sub(timeNow()); remaining < l.AuctionBidPeriod {
		l.AuctionEnd = timeNow().Add(l.AuctionBidPeriod)
	}
	if err := im.ledger.Put(c, hash, l); err != nil {
		return err
	}

	im.refundBid(c, hash, l, prevBidder, prevBid)
	im.journal(c, &auction.Activity{
		AuctionHash:  hash,
		Type:         auction.ActivityTypePlaceBid,
		NftAddress:   l.NftAddress,
		TokenIds:     l.TokenIds,
		Account:      l.NftHighestBidder,
		Price:        payment.String(),
		DisplayPrice: auction.DisplayPrice(payment),
	})
	c.WithFields(log.Fields{
		"auctionHash": hash,
		"bidder":      l.NftHighestBidder,
		"bid":         payment.String(),
	}).Info("bid placed")
	return nil
}

func (im *impl) TakeHighestBid(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if !l.NftSeller.Equals(caller) {
		return domain.ErrUnauthorized
	}
	if l.IsSale() {
		return domain.ErrNotAnAuction
	}
	if !l.HasBid() {
		return domain.ErrNoBids
	}
	return im.settle(c, hash, l, l.NftHighestBidder, l.NftHighestBid)
}

func (im *impl) SettleAuction(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if l.IsSale() {
		return domain.ErrNotAnAuction
	}
	if timeNow().Before(l.AuctionEnd) {
		return domain.ErrAuctionStillGoing
	}

	if !l.HasBid() {
		// nobody showed up, hand the bundle back
		if err := im.ledger.Reset(c, hash); err != nil {
			return err
		}
		if err := im.releaseTokens(c, l, l.NftSeller); err != nil {
			return err
		}
		im.journal(c, &auction.Activity{
			AuctionHash: hash,
			Type:        auction.ActivityTypeExpired,
			NftAddress:  l.NftAddress,
			TokenIds:    l.TokenIds,
			Account:     l.NftSeller,
		})
		c.WithField("auctionHash", hash).Info("auction expired without bids")
		return nil
	}
	return im.settle(c, hash, l, l.NftHighestBidder, l.NftHighestBid)
}

func (im *impl) WithdrawAuction(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if !l.NftSeller.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if err := im.ledger.Reset(c, hash); err != nil {
		return err
	}
	im.refundBid(c, hash, l, l.NftHighestBidder, l.NftHighestBid)
	if err := im.releaseTokens(c, l, l.NftSeller); err != nil {
		return err
	}

	im.journal(c, &auction.Activity{
		AuctionHash: hash,
		Type:        auction.ActivityTypeWithdrawn,
		NftAddress:  l.NftAddress,
		TokenIds:    l.TokenIds,
		Account:     l.NftSeller,
	})
	c.WithFields(log.Fields{
		"auctionHash": hash,
		"seller":      l.NftSeller,
	}).Info("listing withdrawn")
	return nil
}

func (im *impl) UpdateMinimumPrice(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, price *big.Int) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if !l.NftSeller.Equals(caller) {
		return domain.ErrUnauthorized
	}
	if l.IsSale() {
		return domain.ErrNotAnAuction
	}
	if price == nil || price.Sign() < 0 {
		return domain.ErrBadParamInput
	}

	l.MinPrice = new(big.Int).Set(price)
	if err := im.ledger.Put(c, hash, l); err != nil {
		return err
	}
	im.journalUpdate(c, hash, l, caller)
	return nil
}

func (im *impl) UpdateBuyNowPrice(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, price *big.Int) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if !l.NftSeller.Equals(caller) {
		return domain.ErrUnauthorized
	}
	if price == nil || price.Sign() <= 0 {
		return domain.ErrZeroBuyNowPrice
	}

	l.BuyNowPrice = new(big.Int).Set(price)

	// a standing bid meeting the new price wins immediately
	if !l.IsSale() && l.HasBid() && l.NftHighestBid.Cmp(l.BuyNowPrice) >= 0 {
		return im.settle(c, hash, l, l.NftHighestBidder, l.NftHighestBid)
	}

	if err := im.ledger.Put(c, hash, l); err != nil {
		return err
	}
	im.journalUpdate(c, hash, l, caller)
	return nil
}

func (im *impl) UpdateWhitelistedBuyer(c ctx.Ctx, caller domain.Address, hash domain.AuctionHash, buyer domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return err
	}
	if l.IsZero() {
		return domain.ErrAuctionNotFound
	}
	if !l.NftSeller.Equals(caller) {
		return domain.ErrUnauthorized
	}
	if !buyer.IsEmpty() && buyer.Equals(l.NftSeller) {
		return domain.ErrSelfWhitelistedBuyer
	}

	if buyer.IsEmpty() {
		l.WhitelistedBuyer = domain.EmptyAddress
	} else {
		l.WhitelistedBuyer = buyer.ToLower()
	}
	if err := im.ledger.Put(c, hash, l); err != nil {
		return err
	}
	im.journalUpdate(c, hash, l, caller)
	return nil
}

func (im *impl) SetFeeRecipient(c ctx.Ctx, caller, nftAddress, recipient domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if !caller.Equals(im.owner) {
		return domain.ErrUnauthorized
	}
	if nftAddress.IsEmpty() || !validator.IsValidAddress(string(nftAddress)) {
		return domain.ErrInvalidAddress
	}
	if recipient.IsEmpty() || !validator.IsValidAddress(string(recipient)) {
		return domain.ErrInvalidAddress
	}

	if err := im.feeRecipients.Set(c, nftAddress, recipient); err != nil {
		c.WithField("err", err).Error("feeRecipients.Set failed")
		return err
	}
	im.journal(c, &auction.Activity{
		Type:       auction.ActivityTypeSetFeeRecipient,
		NftAddress: nftAddress.ToLower(),
		Account:    caller.ToLower(),
		To:         recipient.ToLower(),
	})
	return nil
}

func (im *impl) GetAuction(c ctx.Ctx, hash domain.AuctionHash) (*auction.Listing, error) {
	return im.ledger.Get(c, hash)
}

func (im *impl) GetTokensAndFees(c ctx.Ctx, hash domain.AuctionHash) (*auction.TokensAndFees, error) {
	l, err := im.ledger.Get(c, hash)
	if err != nil {
		return nil, err
	}
	res := &auction.TokensAndFees{
		TokenIds:       []domain.TokenId{},
		FeeRecipients:  []domain.Address{},
		FeePercentages: []*big.Int{},
	}
	res.TokenIds = append(res.TokenIds, l.TokenIds...)
	res.FeeRecipients = append(res.FeeRecipients, l.FeeRecipients...)
	res.FeePercentages = append(res.FeePercentages, l.FeePercentages...)
	return res, nil
}

// validateNewListing runs the checks shared by auctions and sales.
func (im *impl) validateNewListing(c ctx.Ctx, seller, nftAddress domain.Address, tokenIds []domain.TokenId, feeRecipients []domain.Address, feePercentages []*big.Int) error {
	if nftAddress.IsEmpty() || !validator.IsValidAddress(string(nftAddress)) {
		return domain.ErrInvalidNftAddress
	}
	if supported, err := im.registry.IsSupported(c, nftAddress); err != nil {
		c.WithField("err", err).Error("registry.IsSupported failed")
		return err
	} else if !supported {
		return domain.ErrTokenNotSupported
	}
	if len(tokenIds) == 0 {
		return domain.ErrNoTokensProvided
	}
	for _, id := range tokenIds {
		balance, err := im.nft.BalanceOf(c, nftAddress, seller, id)
		if err != nil {
			c.WithField("err", err).Error("nft.BalanceOf failed")
			return err
		}
		if balance < 1 {
			return domain.ErrNotTokenOwner
		}
	}
	if len(feeRecipients) != len(feePercentages) {
		return domain.ErrInvalidFees
	}
	for _, recipient := range feeRecipients {
		if recipient.IsEmpty() {
			return domain.ErrInvalidFees
		}
	}
	return nil
}

// escrowAndRecord pulls the bundle into escrow and writes the record under a
// freshly derived hash.
func (im *impl) escrowAndRecord(c ctx.Ctx, l *auction.Listing) (domain.AuctionHash, error) {
	for _, id := range l.TokenIds {
		if err := im.nft.Transfer(c, l.NftAddress, l.NftSeller, im.escrowAccount, id, 1); err != nil {
			c.WithFields(log.Fields{
				"nftAddress": l.NftAddress,
				"tokenId":    id,
				"err":        err,
			}).Error("nft.Transfer to escrow failed")
			return "", err
		}
	}
	hash := auction.NewAuctionHash(l.NftAddress, l.NftSeller, l.TokenIds, newSalt())
	if err := im.ledger.Put(c, hash, l); err != nil {
		return "", err
	}
	return hash, nil
}

// settle tombstones the record, then pays everyone out and releases the
// bundle to the buyer. The record goes first so a reentrant read can never
// observe a live listing whose funds are already moving.
func (im *impl) settle(c ctx.Ctx, hash domain.AuctionHash, l *auction.Listing, buyer domain.Address, gross *big.Int) error {
	payouts, err := im.splitProceeds(c, l, gross)
	if err != nil {
		return err
	}
	if err := im.ledger.Reset(c, hash); err != nil {
		return err
	}
	for _, p := range payouts {
		if p.amount.Sign() == 0 {
			continue
		}
		if err := im.bank.Transfer(c, im.escrowAccount, p.to, p.amount); err != nil {
			c.WithFields(log.Fields{
				"auctionHash": hash,
				"to":          p.to,
				"amount":      p.amount.String(),
				"err":         err,
			}).Error("escrow payout failed")
			return xerrors.Errorf("escrow payout failed: %w", err)
		}
	}
	if err := im.releaseTokens(c, l, buyer); err != nil {
		return err
	}

	im.journal(c, &auction.Activity{
		AuctionHash:  hash,
		Type:         auction.ActivityTypeSettled,
		NftAddress:   l.NftAddress,
		TokenIds:     l.TokenIds,
		Account:      l.NftSeller,
		To:           buyer,
		Price:        gross.String(),
		DisplayPrice: auction.DisplayPrice(gross),
	})
	c.WithFields(log.Fields{
		"auctionHash": hash,
		"buyer":       buyer,
		"price":       gross.String(),
	}).Info("listing settled")
	return nil
}

func (im *impl) releaseTokens(c ctx.Ctx, l *auction.Listing, to domain.Address) error {
	for _, id := range l.TokenIds {
		if err := im.nft.Transfer(c, l.NftAddress, im.escrowAccount, to, id, 1); err != nil {
			c.WithFields(log.Fields{
				"nftAddress": l.NftAddress,
				"tokenId":    id,
				"to":         to,
				"err":        err,
			}).Error("nft.Transfer from escrow failed")
			return xerrors.Errorf("token release failed: %w", err)
		}
	}
	return nil
}

// returnPayment hands a payment back when a settlement is rejected after the
// funds already reached escrow.
func (im *impl) returnPayment(c ctx.Ctx, bidder domain.Address, payment *big.Int) {
	if err := im.bank.Transfer(c, im.escrowAccount, bidder, payment); err != nil {
		c.WithFields(log.Fields{
			"bidder": bidder,
			"amount": payment.String(),
			"err":    err,
		}).Error("payment return failed")
	}
}

// refundBid returns a superseded bid to its bidder. Escrow holds every
// standing bid, so a failure here is an invariant breach and only gets
// logged.
func (im *impl) refundBid(c ctx.Ctx, hash domain.AuctionHash, l *auction.Listing, bidder domain.Address, amount *big.Int) {
	if bidder.IsEmpty() || amount == nil || amount.Sign() == 0 {
		return
	}
	if err := im.bank.Transfer(c, im.escrowAccount, bidder, amount); err != nil {
		c.WithFields(log.Fields{
			"auctionHash": hash,
			"bidder":      bidder,
			"amount":      amount.String(),
			"err":         err,
		}).Error("bid refund failed")
		return
	}
	im.journal(c, &auction.Activity{
		AuctionHash:  hash,
		Type:         auction.ActivityTypeBidRefunded,
		NftAddress:   l.NftAddress,
		TokenIds:     l.TokenIds,
		Account:      bidder,
		Price:        amount.String(),
		DisplayPrice: auction.DisplayPrice(amount),
	})
}

func (im *impl) journal(c ctx.Ctx, a *auction.Activity) {
	a.Time = timeNow()
	if err := im.activities.Insert(c, a); err != nil {
		c.WithField("err", err).Warn("activities.Insert failed")
	}
}

func (im *impl) journalUpdate(c ctx.Ctx, hash domain.AuctionHash, l *auction.Listing, caller domain.Address) {
	im.journal(c, &auction.Activity{
		AuctionHash: hash,
		Type:        auction.ActivityTypeUpdateListing,
		NftAddress:  l.NftAddress,
		TokenIds:    l.TokenIds,
		Account:     caller.ToLower(),
	})
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func lowerAll(addresses []domain.Address) []domain.Address {
	res := make([]domain.Address, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, a.ToLower())
	}
	return res
}
