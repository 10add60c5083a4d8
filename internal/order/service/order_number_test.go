package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^DSV\d{6}[A-Z0-9]{6}$`)

func TestOrderNumberFormat(t *testing.T) {
	gen := NewOrderNumberGenerator(1)

	for i := 0; i < 100; i++ {
		number := gen.Next()
		assert.True(t, orderNumberPattern.MatchString(number), "unexpected format: %s", number)
	}
}

func TestOrderNumberDatePart(t *testing.T) {
	gen := NewOrderNumberGenerator(1)
	gen.now = func() time.Time {
		return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	}

	number := gen.Next()
	require.Len(t, number, 15)
	assert.Equal(t, "DSV260307", number[:9])
}

func TestOrderNumberUniqueness(t *testing.T) {
	gen := NewOrderNumberGenerator(time.Now().UnixNano())

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := gen.Next()
		assert.False(t, seen[number], "duplicate order number: %s", number)
		seen[number] = true
	}
}
