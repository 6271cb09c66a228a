// package sni encodes and decodes the TLS server_name extension
// (RFC 6066, section 3).
package sni

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"sigsum.org/stuffer-go/pkg/stuffer"
)

const (
	ExtensionType = 0
	hostNameType  = 0

	// MaxHostNameLength is the longest name allowed by DNS.
	MaxHostNameLength = 253
)

var ErrMalformed = errors.New("sni: malformed server_name extension")

// NormalizeHostName converts a utf8 host name to the lower-case A-label
// form sent on the wire. IP address literals are rejected, since they
// are not allowed in server_name.
func NormalizeHostName(host string) (string, error) {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", fmt.Errorf("sni: empty host name")
	}
	if net.ParseIP(host) != nil {
		return "", fmt.Errorf("sni: %q is an IP address", host)
	}
	n := norm.NFKC.String(host) // Unicode normalization
	l := strings.ToLower(n)     // Unicode lowercase
	a, err := idna.Lookup.ToASCII(l)
	if err != nil {
		return "", fmt.Errorf("sni: failed converting host %q to a-label form: %v", l, err)
	}
	u, err := idna.ToUnicode(a)
	if err != nil {
		return "", fmt.Errorf("sni: failed converting host %q to u-label form: %v", a, err)
	}
	if !norm.NFKC.IsNormalString(u) || strings.ToLower(u) != u {
		return "", fmt.Errorf("sni: a-label host %q doesn't round trip, got %q", a, u)
	}
	if len(a) > MaxHostNameLength {
		return "", fmt.Errorf("sni: host name of %d bytes is too long", len(a))
	}
	return a, nil
}

// WriteExtension normalizes host and writes a server_name extension
// carrying it. Nothing is written on failure.
func WriteExtension(s *stuffer.Stuffer, host string) error {
	name, err := NormalizeHostName(host)
	if err != nil {
		return err
	}
	// Type and length of the extension, the name list, and the entry.
	if err := s.ReserveSpace(uint32(2 + 2 + 2 + 1 + 2 + len(name))); err != nil {
		return err
	}
	if err := s.WriteUint16(ExtensionType); err != nil {
		return err
	}
	return s.WriteVector16(func(s *stuffer.Stuffer) error {
		return s.WriteVector16(func(s *stuffer.Stuffer) error {
			if err := s.WriteUint8(hostNameType); err != nil {
				return err
			}
			return s.WriteVector16(func(s *stuffer.Stuffer) error {
				_, err := s.WriteString(name)
				return err
			})
		})
	})
}

// ReadExtension reads a server_name extension, and returns the host name
// in it. The extension must hold exactly one host name. On failure,
// nothing is consumed.
func ReadExtension(s *stuffer.Stuffer) (string, error) {
	start := s.ReadCursor()
	host, err := readExtension(s)
	if err != nil {
		if rerr := s.RewindRead(s.ReadCursor() - start); rerr != nil {
			return "", rerr
		}
		return "", err
	}
	return host, nil
}

func readExtension(s *stuffer.Stuffer) (string, error) {
	extType, err := s.ReadUint16()
	if err != nil {
		return "", err
	}
	if extType != ExtensionType {
		return "", fmt.Errorf("%w: extension type %d", ErrMalformed, extType)
	}
	size, err := s.ReadUint16()
	if err != nil {
		return "", err
	}
	data := make([]byte, size)
	if err := s.ReadBytes(data); err != nil {
		return "", err
	}
	ext, err := stuffer.NewReadOnly(data)
	if err != nil {
		return "", err
	}
	listSize, err := ext.ReadUint16()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if uint32(listSize) != ext.DataAvailable() {
		return "", fmt.Errorf("%w: name list of %d bytes in %d byte extension", ErrMalformed, listSize, size)
	}
	nameType, err := ext.ReadUint8()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if nameType != hostNameType {
		return "", fmt.Errorf("%w: name type %d", ErrMalformed, nameType)
	}
	nameSize, err := ext.ReadUint16()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if nameSize == 0 || nameSize > MaxHostNameLength {
		return "", fmt.Errorf("%w: host name of %d bytes", ErrMalformed, nameSize)
	}
	name := make([]byte, nameSize)
	if err := ext.ReadBytes(name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !ext.IsConsumed() {
		return "", fmt.Errorf("%w: more than one name", ErrMalformed)
	}
	for _, c := range name {
		if c <= ' ' || c >= 0x7f {
			return "", fmt.Errorf("%w: host name %q is not printable ascii", ErrMalformed, name)
		}
	}
	return string(name), nil
}
