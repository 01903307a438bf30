// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/stellar/go/keypair"
	"golang.org/x/crypto/pbkdf2"
)

// ErrEmptyMnemonic is returned when the mnemonic holds no words.
var ErrEmptyMnemonic = errors.New("empty mnemonic")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// BIP-39 stretching parameters.
	iterations int
	keyLen     int
	saltPrefix string
}

// NewKeyChainService constructs a [KeyChainService] with the BIP-39
// parameters:
//   - PBKDF2 iterations: 2048
//   - hash:              HMAC-SHA512
//   - seed length:       64 bytes
//   - salt:              "mnemonic" + passphrase
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		iterations: 2048,
		keyLen:     64,
		saltPrefix: "mnemonic",
	}
}

// SeedFromMnemonic implements [KeyChainService].
func (k *keyChainService) SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	if len(words) == 0 {
		return nil, ErrEmptyMnemonic
	}

	return pbkdf2.Key(
		[]byte(strings.Join(words, " ")),
		[]byte(k.saltPrefix+passphrase),
		k.iterations,
		k.keyLen,
		sha512.New,
	), nil
}

// DeriveAccountSeed implements [KeyChainService]. Every path segment is
// hardened, as ed25519 SLIP-10 only defines hardened children.
func (k *keyChainService) DeriveAccountSeed(seed []byte, index uint32) ([32]byte, error) {
	key, err := derivation.DeriveForPath(fmt.Sprintf(derivation.StellarAccountPathFormat, index), seed)
	if err != nil {
		return [32]byte{}, fmt.Errorf("derive account %d: %w", index, err)
	}

	return key.RawSeed(), nil
}

// KeyPair implements [KeyChainService].
func (k *keyChainService) KeyPair(mnemonic, passphrase string, index uint32) (*keypair.Full, error) {
	seed, err := k.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	raw, err := k.DeriveAccountSeed(seed, index)
	if err != nil {
		return nil, err
	}

	kp, err := keypair.FromRawSeed(raw)
	if err != nil {
		return nil, fmt.Errorf("build keypair: %w", err)
	}

	return kp, nil
}
