package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrInvalidCategory balance path category is neither trading nor margin
	ErrInvalidCategory ErrorCode = 100100
	// ErrDegenerateAuction auction has no collateral left
	ErrDegenerateAuction ErrorCode = 100101
	// ErrEmptyBatch batch without actions
	ErrEmptyBatch ErrorCode = 100102
	// ErrUnknownActionType action type out of range
	ErrUnknownActionType ErrorCode = 100103
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100104
	// ErrMalformedEvent event data too short
	ErrMalformedEvent ErrorCode = 100105
	// ErrDecodeResult contract call result can not be decoded
	ErrDecodeResult ErrorCode = 100106
	// ErrSenderMismatch sender is not the signing account
	ErrSenderMismatch ErrorCode = 100107

	// ErrMarketNotFound no market
	ErrMarketNotFound ErrorCode = 100200
	// ErrAuctionNotFound no auction
	ErrAuctionNotFound ErrorCode = 100201
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:           "unknown",
	ErrInvalidCategory:   "invalid balance path category",
	ErrDegenerateAuction: "degenerate auction",
	ErrEmptyBatch:        "empty batch",
	ErrUnknownActionType: "unknown action type",
	ErrInvalidAmount:     "invalid amount",
	ErrMalformedEvent:    "malformed event",
	ErrDecodeResult:      "decode result",
	ErrSenderMismatch:    "sender is not the signing account",
	ErrMarketNotFound:    "market not found",
	ErrAuctionNotFound:   "auction not found",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return e.String() + " " + msg
	}

	return e.String()
}
