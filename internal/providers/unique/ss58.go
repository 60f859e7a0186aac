package unique

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	ss58ChecksumLen  = 2
	ss58MaxPrefix    = 16383
	ss58SimplePrefix = 64
)

var ss58Preimage = []byte("SS58PRE")

// ErrInvalidSS58Address is returned when an address fails to decode
var ErrInvalidSS58Address = errors.New("invalid ss58 address")

// EncodeSS58 encodes a public key as an SS58 address for the given network prefix
func EncodeSS58(pubKey []byte, prefix uint16) (string, error) {
	if prefix > ss58MaxPrefix {
		return "", fmt.Errorf("ss58 prefix %d out of range", prefix)
	}

	var raw []byte
	if prefix < ss58SimplePrefix {
		raw = []byte{byte(prefix)}
	} else {
		raw = []byte{
			byte((prefix&0x00FC)>>2) | 0x40,
			byte(prefix>>8) | byte((prefix&0x0003)<<6),
		}
	}
	raw = append(raw, pubKey...)

	sum := ss58Checksum(raw)
	raw = append(raw, sum[:ss58ChecksumLen]...)

	return base58.Encode(raw), nil
}

// DecodeSS58 returns the public key and network prefix of an SS58 address
func DecodeSS58(address string) ([]byte, uint16, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidSS58Address, err)
	}
	if len(raw) < 1+ss58ChecksumLen {
		return nil, 0, fmt.Errorf("%w: too short", ErrInvalidSS58Address)
	}

	var prefix uint16
	prefixLen := 1
	if raw[0] < ss58SimplePrefix {
		prefix = uint16(raw[0])
	} else {
		if len(raw) < 2+ss58ChecksumLen {
			return nil, 0, fmt.Errorf("%w: too short", ErrInvalidSS58Address)
		}
		lower := ((raw[0] & 0x3F) << 2) | (raw[1] >> 6)
		upper := raw[1] & 0x3F
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLen = 2
	}

	body := raw[:len(raw)-ss58ChecksumLen]
	sum := ss58Checksum(body)
	if sum[0] != raw[len(raw)-2] || sum[1] != raw[len(raw)-1] {
		return nil, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidSS58Address)
	}

	return body[prefixLen:], prefix, nil
}

func ss58Checksum(data []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(ss58Preimage)+len(data))
	buf = append(buf, ss58Preimage...)
	buf = append(buf, data...)
	return blake2b.Sum512(buf)
}
