package service

import (
	"math/rand"
	"sync"
	"time"
)

const (
	orderNumberPrefix = "DSV"
	suffixLength      = 6
	suffixAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// OrderNumberGenerator produces human-facing order numbers of the form
// DSV + yymmdd + 6 random uppercase alphanumerics. The random source is
// local to the generator; no process-wide shared state.
type OrderNumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewOrderNumberGenerator(seed int64) *OrderNumberGenerator {
	return &OrderNumberGenerator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	buf := make([]byte, 0, len(orderNumberPrefix)+6+suffixLength)
	buf = append(buf, orderNumberPrefix...)
	buf = appendTwoDigits(buf, now.Year()%100)
	buf = appendTwoDigits(buf, int(now.Month()))
	buf = appendTwoDigits(buf, now.Day())
	for i := 0; i < suffixLength; i++ {
		buf = append(buf, suffixAlphabet[g.rnd.Intn(len(suffixAlphabet))])
	}
	return string(buf)
}

func appendTwoDigits(buf []byte, n int) []byte {
	return append(buf, byte('0'+n/10%10), byte('0'+n%10))
}
