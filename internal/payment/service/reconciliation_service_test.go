package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name       string
		orderTotal float64
		amount     int64
		want       bool
	}{
		{"exact match", 299000, 299000, true},
		{"short by 500", 299000, 298500, true},
		{"over by 500", 299000, 299500, true},
		{"short by exactly 1000", 299000, 298000, true},
		{"over by exactly 1000", 299000, 300000, true},
		{"short by 1001", 299000, 297999, false},
		{"short by 5000", 300000, 295000, false},
		{"over by 5000", 300000, 305000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinTolerance(tt.orderTotal, tt.amount, 1000))
		})
	}
}
