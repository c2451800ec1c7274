package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lotus/internal/domains/booking/model"
	"lotus/internal/domains/booking/service"
	catalogModel "lotus/internal/domains/catalog/model"
	"lotus/shared/failure"
)

func TestBasePrice(t *testing.T) {
	svc := catalogModel.Service{
		Name: "Aroma Massage",
		PriceByDuration: catalogModel.PriceMap{
			60: 300,
			90: 420,
		},
	}

	tests := []struct {
		name        string
		durationMin int
		want        int64
		wantErr     bool
	}{
		{name: "listed duration", durationMin: 60, want: 300},
		{name: "other listed duration", durationMin: 90, want: 420},
		{name: "unlisted duration is rejected, not zero", durationMin: 45, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.BasePrice(svc, tt.durationMin)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		original     int64
		discountType model.DiscountType
		value        int64
		want         int64
		wantErr      bool
	}{
		{name: "none keeps original", original: 300, discountType: model.DiscountNone, value: 50, want: 300},
		{name: "empty type treated as none", original: 300, discountType: "", want: 300},
		{name: "ten percent", original: 300, discountType: model.DiscountPercentage, value: 10, want: 270},
		{name: "percentage floors", original: 333, discountType: model.DiscountPercentage, value: 10, want: 300},
		{name: "hundred percent is free", original: 300, discountType: model.DiscountPercentage, value: 100, want: 0},
		{name: "percentage above hundred rejected", original: 300, discountType: model.DiscountPercentage, value: 101, wantErr: true},
		{name: "negative percentage rejected", original: 300, discountType: model.DiscountPercentage, value: -1, wantErr: true},
		{name: "amount below original", original: 300, discountType: model.DiscountAmount, value: 250, want: 50},
		{name: "amount equal to original rejected", original: 300, discountType: model.DiscountAmount, value: 300, wantErr: true},
		{name: "amount above original rejected", original: 300, discountType: model.DiscountAmount, value: 400, wantErr: true},
		{name: "negative amount rejected", original: 300, discountType: model.DiscountAmount, value: -10, wantErr: true},
		{name: "unknown type rejected", original: 300, discountType: "voucher", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ApplyDiscount(tt.original, tt.discountType, tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitRevenue(t *testing.T) {
	tests := []struct {
		name            string
		original        int64
		final           int64
		rate            float64
		wantCommission  int64
		wantShopRevenue int64
	}{
		{
			name:            "no discount",
			original:        300,
			final:           300,
			rate:            0.4,
			wantCommission:  120,
			wantShopRevenue: 180,
		},
		{
			name:            "commission comes off the pre-discount price",
			original:        300,
			final:           270,
			rate:            0.4,
			wantCommission:  120,
			wantShopRevenue: 150,
		},
		{
			name:            "deep discount drives shop revenue negative",
			original:        300,
			final:           50,
			rate:            0.4,
			wantCommission:  120,
			wantShopRevenue: -70,
		},
		{
			name:            "commission floors",
			original:        333,
			final:           333,
			rate:            0.4,
			wantCommission:  133,
			wantShopRevenue: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commission, shopRevenue := service.SplitRevenue(tt.original, tt.final, tt.rate)

			assert.Equal(t, tt.wantCommission, commission)
			assert.Equal(t, tt.wantShopRevenue, shopRevenue)
			// The split always reconciles to the final price.
			assert.Equal(t, tt.final, commission+shopRevenue)
		})
	}
}
