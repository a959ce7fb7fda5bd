package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/swapwatch/internal/pkg/validator"
)

// ErrInvalidAddress is returned when a string is not a 0x-prefixed,
// 40 hex digit account address.
var ErrInvalidAddress = errors.New("invalid address")

// Address is a chain account identifier in canonical form: lower-cased,
// 0x-prefixed, 20 bytes of hex. Because the canonical form is enforced on
// construction, plain == comparison is case-insensitive with respect to
// the original input.
type Address string

type addressInput struct {
	Address string `validate:"required,eth_addr"`
}

// ParseAddress validates s syntactically and returns its canonical form.
// No network call is made.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if err := validator.Validate(addressInput{Address: s}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return Address(strings.ToLower(s)), nil
}

// NormalizeAddress lower-cases s without validating it. Use it for addresses
// coming from trusted sources such as node or provider responses.
func NormalizeAddress(s string) Address {
	return Address(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the canonical string form.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether a is the empty address.
func (a Address) IsZero() bool {
	return a == ""
}
