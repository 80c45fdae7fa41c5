package usecase

import (
	"math/big"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/log"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
)

// payout is one leg of a settlement.
type payout struct {
	to     domain.Address
	amount *big.Int
}

// splitProceeds carves the gross amount into the platform cut, the listing's
// extra fees and the seller remainder. Shares are truncated, so rounding
// dust always stays with the seller. When a collection has a fee recipient
// override, the platform cut is shared half and half with the default
// recipient.
func (im *impl) splitProceeds(c ctx.Ctx, l *auction.Listing, gross *big.Int) ([]payout, error) {
	payouts := []payout{}
	remaining := new(big.Int).Set(gross)

	platformCut := percentageOf(gross, im.platformFeePercentage)
	if platformCut.Sign() > 0 {
		override, err := im.feeRecipients.Get(c, l.NftAddress)
		if err != nil {
			c.WithField("err", err).Error("feeRecipients.Get failed")
			return nil, err
		}
		if override.IsEmpty() || override.Equals(im.defaultFeeRecipient) {
			payouts = append(payouts, payout{im.defaultFeeRecipient, platformCut})
		} else {
			half := new(big.Int).Rsh(platformCut, 1)
			payouts = append(payouts,
				payout{override, half},
				payout{im.defaultFeeRecipient, new(big.Int).Sub(platformCut, half)},
			)
		}
		remaining.Sub(remaining, platformCut)
	}

	for i, recipient := range l.FeeRecipients {
		share := percentageOf(gross, l.FeePercentages[i])
		remaining.Sub(remaining, share)
		if share.Sign() > 0 {
			payouts = append(payouts, payout{recipient, share})
		}
	}

	if remaining.Sign() < 0 {
		c.WithFields(log.Fields{
			"gross":          gross.String(),
			"feePercentages": l.FeePercentages,
		}).Warn("fee schedule exceeds gross amount")
		return nil, domain.ErrInvalidFees
	}
	payouts = append(payouts, payout{l.NftSeller, remaining})
	return payouts, nil
}

// percentageOf computes amount*percentage/PercentageBase, truncated.
func percentageOf(amount, percentage *big.Int) *big.Int {
	if amount == nil || percentage == nil || percentage.Sign() == 0 {
		return new(big.Int)
	}
	res := new(big.Int).Mul(amount, percentage)
	return res.Quo(res, auction.PercentageBase)
}
