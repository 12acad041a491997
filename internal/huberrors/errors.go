package huberrors

import "errors"

// Repository-level errors
var (
	ErrOfferNotFound    = errors.New("offer not found")
	ErrDuplicateOffer   = errors.New("offer already registered")
	ErrDuplicateRequest = errors.New("request already registered")
	ErrDuplicateDemand  = errors.New("service demand already registered")
)

// Coordinator errors
var (
	ErrAuctionNotFound = errors.New("no auction for offer")
	ErrInvalidMessage  = errors.New("invalid message")
	ErrUnknownService  = errors.New("unknown service option")
	ErrUnknownPriority = errors.New("unknown demand priority")
)
