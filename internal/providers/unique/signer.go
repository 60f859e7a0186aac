package unique

import (
	"fmt"
	"strings"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"golang.org/x/crypto/blake2b"
)

const (
	SIGNATURE_TYPE_SR25519 = "sr25519"
	// payloads longer than this are signed by their blake2b-256 hash
	maxRawSignPayload = 256
)

var signingContext = []byte("substrate")

// Signer holds the minting account key
//
//go:generate mockgen -source=signer.go -destination=../../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the SS58 address of the account
	Address() string
	// Sign signs a signer payload the way substrate does
	Sign(payload []byte) ([]byte, error)
	// Type returns the signature scheme name
	Type() string
}

type sr25519Signer struct {
	secret  *schnorrkel.SecretKey
	address string
}

// NewSignerFromMnemonic derives an sr25519 account from a secret phrase
func NewSignerFromMnemonic(mnemonic string, ss58Prefix uint16) (Signer, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if mnemonic == "" {
		return nil, fmt.Errorf("mnemonic is required")
	}

	msk, err := schnorrkel.MiniSecretKeyFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("failed to derive key from mnemonic: %w", err)
	}

	secret := msk.ExpandEd25519()
	pub, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	pubBytes := pub.Encode()
	address, err := EncodeSS58(pubBytes[:], ss58Prefix)
	if err != nil {
		return nil, err
	}

	return &sr25519Signer{
		secret:  secret,
		address: address,
	}, nil
}

// Address returns the SS58 address of the account
func (s *sr25519Signer) Address() string {
	return s.address
}

// Type returns the signature scheme name
func (s *sr25519Signer) Type() string {
	return SIGNATURE_TYPE_SR25519
}

// Sign signs a signer payload the way substrate does
func (s *sr25519Signer) Sign(payload []byte) ([]byte, error) {
	if len(payload) > maxRawSignPayload {
		sum := blake2b.Sum256(payload)
		payload = sum[:]
	}

	sig, err := s.secret.Sign(schnorrkel.NewSigningContext(signingContext, payload))
	if err != nil {
		return nil, fmt.Errorf("failed to sign payload: %w", err)
	}

	encoded := sig.Encode()
	return encoded[:], nil
}
