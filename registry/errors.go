package registry

import (
	"fmt"
)

type (
	ErrExpiredChallenge struct {
		Elapsed int64
		Window int64
	}

	ErrInvalidSignature struct {
		Address string
	}

	ErrMalformedChallenge struct {
		Message string
		Reason string
	}
)

func (e ErrExpiredChallenge) Error() string {
	return fmt.Sprintf("Challenge expired: signed %ds ago, window is %ds", e.Elapsed, e.Window)
}

func (e ErrInvalidSignature) Error() string {
	return fmt.Sprintf("Invalid signature for address %s", e.Address)
}

func (e ErrMalformedChallenge) Error() string {
	return fmt.Sprintf("Malformed challenge %q: %s", e.Message, e.Reason)
}
