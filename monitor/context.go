package monitor

import (
	"math/rand/v2"
)

type context struct {
	rand *rand.Rand
}

func (ctx *context) Reset() {
	ctx.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (ctx *context) Rand8Bit() uint8 {
	return uint8(ctx.rand.IntN(255))
}

func (ctx *context) AllowLogging() bool {
	return true
}
