package id

import (
	"crypto/rand"
	"strconv"

	"inward/internal/platform/clock"
)

const (
	base36  = "0123456789abcdefghijklmnopqrstuvwxyz"
	randLen = 7
)

// Generator creates prefixed record identifiers of the form
// <prefix>-<epoch millis>-<7 base36 chars>. The embedded timestamp doubles
// as a deterministic recency tie-breaker when two records carry equal dates.
type Generator interface {
	New(prefix string) string
}

type PrefixedEpoch struct {
	Clock clock.Clock
}

func (g PrefixedEpoch) New(prefix string) string {
	buf := make([]byte, randLen)
	_, _ = rand.Read(buf)
	suffix := make([]byte, randLen)
	for i, b := range buf {
		suffix[i] = base36[int(b)%len(base36)]
	}
	return prefix + "-" + strconv.FormatInt(g.Clock.Now().UnixMilli(), 10) + "-" + string(suffix)
}
