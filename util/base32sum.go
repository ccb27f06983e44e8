package util

import (
	"fmt"
	"strings"
	"halftwo/mangos/crock32"
	"golang.org/x/crypto/sha3"
)

const _MAX_SUFFIX = 8

func checksum(prefix string, src []byte) []byte {
	h := sha3.New256()
	h.Write([]byte(prefix))
	h.Write(src)
	return h.Sum(nil)
}

// mixCase upper-cases letters of dst where the matching bit of hash is set,
// so that a case-sensitive string carries extra checksum bits.
func mixCase(dst []byte, hash []byte) {
	for len(dst) > 0 && len(hash) > 0 {
		num := len(dst)
		if num > 8 {
			num = 8
		}

		bitmap := hash[0]
		mask := byte(0x80)
		for k := 0; k < num; k++ {
			if (mask & bitmap) != 0 && dst[k] >= 'a' && dst[k] <= 'z' {
				dst[k] -= 32
			}
			mask >>= 1
		}

		dst = dst[num:]
		hash = hash[1:]
	}
}

func clampSuffix(suffix int) int {
	if suffix > _MAX_SUFFIX {
		return _MAX_SUFFIX
	} else if suffix < 0 {
		return 0
	}
	return suffix
}

// BytesToBase32Sum renders src as prefix + crockford base32 + suffix
// checksum characters. Keys, addresses and signatures all use it.
func BytesToBase32Sum(src []byte, prefix string, suffix int, caseSensitive bool) string {
	var hash []byte
	suffix = clampSuffix(suffix)
	if suffix > 0 || caseSensitive {
		hash = checksum(prefix, src)
	}

	plen := len(prefix)
	b32len := crock32.EncodeLen(len(src))
	buf := make([]byte, plen + b32len + suffix)
	copy(buf[:], prefix)
	crock32.EncodeLower(buf[plen:], src)

	if suffix > 0 {
		crock32.EncodeLower(buf[plen+b32len:], hash)
	}

	if caseSensitive {
		mixCase(buf[plen:], hash[5:])
	}
	return string(buf)
}

func Base32SumToBytes(str string, prefix string, suffix int, caseSensitive bool) (b []byte, err error) {
	if !strings.HasPrefix(str, prefix) {
		return nil, fmt.Errorf("the string must begin with \"%s\"", prefix)
	}

	suffix = clampSuffix(suffix)
	b32len := len(str) - len(prefix) - suffix
	if b32len <= 1 {
		return nil, fmt.Errorf("the string is too short")
	}

	b, err = crock32.DecodeString(str[len(prefix):len(str)-suffix])
	if err != nil {
		return
	}

	if suffix > 0 || caseSensitive {
		t := BytesToBase32Sum(b, prefix, suffix, caseSensitive)
		var equal bool
		if caseSensitive {
			equal = (t == str)
		} else {
			equal = strings.EqualFold(t, str)
		}

		if !equal {
			return nil, fmt.Errorf("invalid checksum")
		}
	}
	return
}
