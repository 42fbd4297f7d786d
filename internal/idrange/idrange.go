// Package idrange generates bounded, descending batches of base-36
// identifiers for bulk retrieval from the content API. Identifier
// spaces are append-only and roughly time-ordered, so a numeric range
// maps to a contiguous slice of creation-time-ordered content.
package idrange

import (
	"fmt"
	"math/big"

	"github.com/prospectlab/redditscout/internal/fullname"
)

// DefaultMaxCount bounds a batch when the caller does not supply its
// own cap, matching the upstream bulk-endpoint ceiling.
const DefaultMaxCount = 100

var one = big.NewInt(1)

// Between returns at most maxCount identifiers covering the ordinal
// interval (start, end], newest (highest ordinal) first. The start
// bound is excluded, the end bound included. When end does not exceed
// start, or maxCount is not positive, the result is empty; neither is
// an error. Cost is proportional to the truncated length only: each
// bound is decoded once and every emitted identifier is one big-int
// decrement away from the previous.
func Between(start, end string, maxCount int) ([]string, error) {
	s, err := fullname.Decode(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	e, err := fullname.Decode(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	ids := []string{}
	if maxCount <= 0 || e.Cmp(s) <= 0 {
		return ids, nil
	}
	cur := new(big.Int).Set(e)
	for len(ids) < maxCount && cur.Cmp(s) > 0 {
		ids = append(ids, fullname.Encode(cur))
		cur.Sub(cur, one)
	}
	return ids, nil
}

// NewestFirst is Between with the default cap.
func NewestFirst(start, end string) ([]string, error) {
	return Between(start, end, DefaultMaxCount)
}
