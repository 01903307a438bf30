package service

import "github.com/MKhiriev/go-stellar-kit/models"

// tagsFor derives the tag set of a transaction from its tracked operation.
// An operation is outgoing when the own account is its payer: From for a
// payment, Funder for a create-account. Untracked operations get no tags.
func tagsFor(op models.Operation, accountID string) []string {
	switch o := op.(type) {
	case models.CreateAccountOperation:
		return directionalTags(models.NativeCode, o.Funder == accountID)
	case models.PaymentOperation:
		code := models.NativeCode
		if !o.IsNative() && o.AssetCode != "" {
			code = o.AssetCode
		}
		return directionalTags(code, o.From == accountID)
	default:
		return nil
	}
}

func directionalTags(code string, outgoing bool) []string {
	if outgoing {
		return []string{code, models.TokenOutgoing(code), models.TagOutgoing}
	}
	return []string{code, models.TokenIncoming(code), models.TagIncoming}
}
