package kit

import "errors"

var (
	ErrNoKeyPair          = errors.New("keypair is required")
	ErrInvalidSendRequest = errors.New("invalid send request")
	ErrInvalidAccountID   = errors.New("invalid account ID")
	ErrKitNotFound        = errors.New("kit not found")
)
