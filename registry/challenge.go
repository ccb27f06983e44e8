package registry

import (
	"strconv"
	"strings"
)

// Challenge is the parsed form of "<address>:<unix_seconds>:<tag>".
type Challenge struct {
	Address string
	Timestamp int64
	Tag string
}

func (c Challenge) String() string {
	return c.Address + ":" + strconv.FormatInt(c.Timestamp, 10) + ":" + c.Tag
}

func ParseChallenge(message string) (c Challenge, err error) {
	fields := strings.Split(message, ":")
	if len(fields) != 3 {
		err = ErrMalformedChallenge{Message:message, Reason:"want address:timestamp:tag"}
		return
	}

	ts, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		err = ErrMalformedChallenge{Message:message, Reason:"bad timestamp"}
		return
	}

	c = Challenge{Address:fields[0], Timestamp:ts, Tag:fields[2]}
	return
}
