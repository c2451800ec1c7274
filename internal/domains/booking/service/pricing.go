package service

import (
	"fmt"
	"math"

	"lotus/internal/domains/booking/model"
	catalogModel "lotus/internal/domains/catalog/model"
	"lotus/shared/failure"
)

// BasePrice looks the duration up in the service's price map. A duration the
// service does not offer is a validation error, never a silent zero.
func BasePrice(svc catalogModel.Service, durationMin int) (int64, error) {
	price, ok := svc.PriceByDuration[durationMin]
	if !ok {
		return 0, failure.BadRequestFromString(fmt.Sprintf("service %s has no price for a %d minute duration", svc.Name, durationMin)) // nolint:wrapcheck
	}

	return price, nil
}

// ApplyDiscount computes the price the customer actually pays. Percentage
// discounts floor and clamp at zero; amount discounts at or above the
// original price are rejected outright, since a silently free booking masks
// an input error.
func ApplyDiscount(original int64, discountType model.DiscountType, value int64) (int64, error) {
	switch discountType {
	case model.DiscountNone, "":
		return original, nil
	case model.DiscountPercentage:
		if value < 0 || value > 100 {
			return 0, failure.BadRequestFromString("percentage discount must be between 0 and 100") // nolint:wrapcheck
		}

		final := original - original*value/100
		if final < 0 {
			final = 0
		}

		return final, nil
	case model.DiscountAmount:
		if value < 0 || value >= original {
			return 0, failure.BadRequestFromString("amount discount must be below the original price") // nolint:wrapcheck
		}

		return original - value, nil
	default:
		return 0, failure.BadRequestFromString("unknown discount type") // nolint:wrapcheck
	}
}

// SplitRevenue divides the money between the therapist and the shop. The
// commission comes off the pre-discount price: the therapist is paid as if
// the full-price service were rendered and the discount is absorbed by the
// shop. Shop revenue may therefore go negative; it is reported as-is so an
// over-generous discount is visible, never clamped. The two parts always
// reconcile to the final price exactly.
func SplitRevenue(original, final int64, commissionRate float64) (commission, shopRevenue int64) {
	commission = int64(math.Floor(float64(original) * commissionRate))
	shopRevenue = final - commission

	return commission, shopRevenue
}
