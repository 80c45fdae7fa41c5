package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/log"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/auction"
	"github.com/playerself/goauction/service/query"
)

func makeFindActivityQuery(optFns ...auction.FindActivityOptions) (bson.M, error) {
	opts, err := auction.GetFindActivityOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.AuctionHash != nil {
		qry["auctionHash"] = *opts.AuctionHash
	}

	if opts.NftAddress != nil {
		qry["nftAddress"] = *opts.NftAddress
	}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"to": *opts.Account},
		}
	}

	if opts.TimeGTE != nil {
		qry["time"] = bson.M{"$gte": *opts.TimeGTE}
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	return qry, nil
}

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) auction.ActivityRepo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(c ctx.Ctx, a *auction.Activity) error {
	a.AuctionHash = a.AuctionHash.ToLower()
	a.NftAddress = a.NftAddress.ToLower()
	a.Account = a.Account.ToLower()
	a.To = a.To.ToLower()
	if err := r.q.Insert(c, domain.TableListingActivities, a); err != nil {
		c.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindActivities(c ctx.Ctx, optFns ...auction.FindActivityOptions) ([]auction.Activity, error) {
	opts, err := auction.GetFindActivityOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindActivityOptions failed")
		return nil, err
	}

	qry, err := makeFindActivityQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindActivityQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []auction.Activity{}

	err = r.q.Search(c, domain.TableListingActivities, offset, limit, "-time", qry, &res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityRepo) CountActivities(c ctx.Ctx, optFns ...auction.FindActivityOptions) (int, error) {
	qry, err := makeFindActivityQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindActivityQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableListingActivities, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}
