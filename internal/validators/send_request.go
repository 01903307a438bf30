package validators

import (
	"context"

	"github.com/stellar/go/strkey"

	"github.com/MKhiriev/go-stellar-kit/internal/utils"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDestination targets the receiving account of a send request.
	FieldDestination = "destination"

	// FieldAmount targets the amount in stroops.
	FieldAmount = "amount"

	// FieldMemo targets the text memo attached to the transaction.
	FieldMemo = "memo"

	// FieldAsset targets the asset being sent.
	FieldAsset = "asset"

	// FieldAccountID targets a bare account address.
	FieldAccountID = "account_id"
)

// MaxMemoBytes is the longest text memo the ledger accepts.
const MaxMemoBytes = 28

// SendRequestValidator validates requests issued by one kit.
type SendRequestValidator struct {
	accountID string
	asset     models.Asset
}

// NewSendRequestValidator returns a validator for sends from accountID in
// asset. A bare string passed to Validate is checked as an account address.
func NewSendRequestValidator(accountID string, asset models.Asset) Validator {
	return &SendRequestValidator{accountID: accountID, asset: asset}
}

func (v *SendRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SendRequest:
		return v.validateSendRequest(ctx, value, fields...)
	case *models.SendRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSendRequest(ctx, *value, fields...)
	case string:
		return v.validateAccountID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SendRequestValidator) validateSendRequest(ctx context.Context, req models.SendRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDestination, FieldAmount, FieldMemo, FieldAsset}
	}

	for _, f := range fields {
		switch f {
		case FieldDestination:
			if !strkey.IsValidEd25519PublicKey(req.Destination) {
				return ErrInvalidAccountID
			}
			if req.Destination == v.accountID {
				return ErrSendToSelf
			}
		case FieldAmount:
			if _, err := utils.ToLedgerAmount(req.Amount); err != nil {
				return ErrInvalidAmount
			}
		case FieldMemo:
			if len(req.Memo) > MaxMemoBytes {
				return ErrMemoTooLong
			}
		case FieldAsset:
			if !req.Asset.Equal(v.asset) {
				return ErrAssetMismatch
			}
			if req.IsInactiveDestination && !req.Asset.IsNative() {
				return ErrCreateAccountNeedsNative
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SendRequestValidator) validateAccountID(accountID string, fields ...string) error {
	for _, f := range fields {
		if f != FieldAccountID {
			return ErrUnknownField
		}
	}
	if !strkey.IsValidEd25519PublicKey(accountID) {
		return ErrInvalidAccountID
	}
	return nil
}
