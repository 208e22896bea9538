package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrMarketNotFound no market
	ErrMarketNotFound ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrInvalidMarketParameter invalid market risk parameter
	ErrInvalidMarketParameter ErrorCode = 100102
	// ErrInsufficientCollateral insufficient collateral
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrOverflow value out of the storable range
	ErrOverflow ErrorCode = 100104
	// ErrMarketVersionConflict stale market write lost an update race
	ErrMarketVersionConflict ErrorCode = 100105

	// ErrPriceNotFound no price source
	ErrPriceNotFound ErrorCode = 100200
	// ErrInvalidPriceSource invalid price source
	ErrInvalidPriceSource ErrorCode = 100201
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
