package ledger

import (
	"starchain/ec"

	"errors"
	"fmt"
)

// ErrNotFound is matched by every lookup miss, whatever the lookup key.
var ErrNotFound = errors.New("block not found")

type (
	ErrUnknownBlock struct {
		Height int64
	}

	ErrUnknownHash struct {
		Hash string
	}

	ErrBlockHashMismatch struct {
		Height int64
		Stored ec.Hash256
		Computed ec.Hash256
	}

	ErrBrokenLink struct {
		Height int64
		PrevHash ec.Hash256
		PrevHeight int64
		Expected ec.Hash256
	}
)

func (e ErrUnknownBlock) Error() string {
	return fmt.Sprintf("Could not find block #%d", e.Height)
}

func (e ErrUnknownBlock) Is(target error) bool {
	return target == ErrNotFound
}

func (e ErrUnknownHash) Error() string {
	return fmt.Sprintf("Could not find block with hash %s", e.Hash)
}

func (e ErrUnknownHash) Is(target error) bool {
	return target == ErrNotFound
}

func (e ErrBlockHashMismatch) Error() string {
	return fmt.Sprintf("Block #%d stored hash %s does not match computed hash %s", e.Height, e.Stored, e.Computed)
}

func (e ErrBrokenLink) Error() string {
	return fmt.Sprintf("Block #%d previous hash %s does not match block #%d hash %s", e.Height, e.PrevHash, e.PrevHeight, e.Expected)
}
