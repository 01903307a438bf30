package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID         = errors.New("invalid account ID")
	ErrSendToSelf               = errors.New("destination is the sending account")
	ErrInvalidAmount            = errors.New("amount must be positive and fit the ledger range")
	ErrMemoTooLong              = errors.New("memo exceeds 28 bytes")
	ErrAssetMismatch            = errors.New("asset differs from the kit asset")
	ErrCreateAccountNeedsNative = errors.New("inactive destination can only be funded with the native asset")
)
