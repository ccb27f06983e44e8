package block

import (
	"fmt"
)

type ErrEmptyBody struct{}

type ErrUnknownPayload struct {
	Kind PayloadKind
}

type ErrNotAClaim struct {
	Height int64
	Kind PayloadKind
}

func (e ErrEmptyBody) Error() string {
	return "Block body is empty"
}

func (e ErrUnknownPayload) Error() string {
	return fmt.Sprintf("Unknown payload kind %s", e.Kind)
}

func (e ErrNotAClaim) Error() string {
	return fmt.Sprintf("Block #%d carries a %s payload, not a claim", e.Height, e.Kind)
}
