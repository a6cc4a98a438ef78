package model_test

import (
	"testing"

	"warkop/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestLineDiscount(t *testing.T) {
	assert.Equal(t, int64(0), model.LineDiscount(15000, 2, 0))
	assert.Equal(t, int64(6000), model.LineDiscount(12000, 1, 50))
	assert.Equal(t, int64(4500), model.LineDiscount(15000, 2, 15))
	// 端数は切り捨て
	assert.Equal(t, int64(1500), model.LineDiscount(10001, 1, 15))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(30000), model.LineTotal(15000, 2, 0))
	assert.Equal(t, int64(6000), model.LineTotal(12000, 1, 50))
}

// raw - discount = total が割引率に関係なく成り立つ
func TestLineTotal_ConsistentWithDiscount(t *testing.T) {
	prices := []int64{0, 1, 999, 10001, 15000, 120000}
	for _, p := range prices {
		for qty := int64(1); qty <= 3; qty++ {
			for disc := int64(0); disc <= 100; disc += 5 {
				raw := p * qty
				got := model.LineTotal(p, qty, disc)
				assert.Equal(t, raw-model.LineDiscount(p, qty, disc), got)
				assert.GreaterOrEqual(t, got, int64(0))
			}
		}
	}
}
