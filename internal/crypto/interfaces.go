package crypto

import "github.com/stellar/go/keypair"

// KeyChainService turns a wallet mnemonic into the Stellar keypair a kit
// signs with. It knows nothing about the network or storage.
//
// Derivation:
//
//	Seed    = SeedFromMnemonic(mnemonic, passphrase)   BIP-39, PBKDF2-HMAC-SHA512
//	RawSeed = DeriveAccountSeed(Seed, index)           SEP-0005, m/44'/148'/index'
//	KeyPair = keypair.FromRawSeed(RawSeed)
type KeyChainService interface {
	// SeedFromMnemonic stretches the mnemonic into a 64-byte BIP-39 seed.
	// The mnemonic is normalised to single spaces; word list checksums are
	// not verified.
	SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error)

	// DeriveAccountSeed walks the SEP-0005 path for the account index and
	// returns the 32-byte ed25519 seed.
	DeriveAccountSeed(seed []byte, index uint32) ([32]byte, error)

	// KeyPair runs the whole derivation.
	KeyPair(mnemonic, passphrase string, index uint32) (*keypair.Full, error)
}
