package domain

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidLoginResponse = errors.New("invalid login response")
	ErrStockFetchFailed     = errors.New("stock fetch failed")
	ErrInvalidStockPayload  = errors.New("invalid stock payload")
)
