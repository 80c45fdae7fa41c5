package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrInvalidNumberFormat will throw if the given string cannot be parsed into number
	ErrInvalidNumberFormat = errors.New("invalid number format")
	// ErrInvalidSignature will throw if the personal-sign signature does not match the claimed address
	ErrInvalidSignature = errors.New("invalid signature")
)

// Listing lifecycle errors. The reason strings are part of the public
// contract and travel verbatim in responses and journal entries.
var (
	ErrInvalidNftAddress    = errors.New("Invalid NFT address.")
	ErrTokenNotSupported    = errors.New("Token not supported.")
	ErrNoTokensProvided     = errors.New("No tokens provided.")
	ErrNotTokenOwner        = errors.New("Sender does not own the NFT.")
	ErrInvalidBidPeriod     = errors.New("Invalid auction bid period.")
	ErrZeroBuyNowPrice      = errors.New("Buy now price must be greater than 0.")
	ErrInvalidFees          = errors.New("Invalid fees.")
	ErrSelfWhitelistedBuyer = errors.New("Whitelisted buyer matches the seller.")
	ErrAuctionNotFound      = errors.New("Auction does not exist.")
	ErrInvalidPayment       = errors.New("Invalid payment.")
	ErrBidOnOwnAuction      = errors.New("Bidding own auction?")
	ErrOnlyWhitelistedBuyer = errors.New("Only whitelisted buyer.")
	ErrUnauthorized         = errors.New("Unauthorized.")
	ErrAuctionStillGoing    = errors.New("Auction is still going.")
	ErrAuctionEnded         = errors.New("Auction has ended.")
	ErrNotAnAuction         = errors.New("Not an auction.")
	ErrInvalidAddress       = errors.New("Invalid address.")
	ErrNoBids               = errors.New("No bids to accept.")
	ErrInsufficientFunds    = errors.New("Insufficient funds.")
)
