// Package kv provides typed, namespaced maps over a byte-keyed domain.KVStore.
package kv

import (
	"encoding/binary"
	"fmt"
	"math"

	"poapregistry/internal/domain"
)

// joinKey builds a composite key. The namespace and every component except the last are
// prefixed with their length as a big-endian uint16, so ("ab","c") and ("a","bc") never collide.
func joinKey(namespace string, parts []string) ([]byte, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: key for %q has no components", domain.ErrInvalidInput, namespace)
	}
	size := 2 + len(namespace)
	for _, p := range parts {
		size += 2 + len(p)
	}
	out := make([]byte, 0, size)
	out, err := appendLengthPrefixed(out, namespace)
	if err != nil {
		return nil, err
	}
	last := len(parts) - 1
	for _, p := range parts[:last] {
		if out, err = appendLengthPrefixed(out, p); err != nil {
			return nil, err
		}
	}
	return append(out, parts[last]...), nil
}

func appendLengthPrefixed(dst []byte, s string) ([]byte, error) {
	if len(s) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: key component longer than %d bytes", domain.ErrInvalidInput, math.MaxUint16)
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(s)))
	return append(dst, s...), nil
}
