package keeper

import (
	"math/bits"

	"github.com/veris-chain/veris/x/oracle/types"
)

// Subscription pricing. All intermediate math is checked uint64 arithmetic so
// that hostile parameter or config combinations surface as ErrArithmeticOverflow
// instead of silently wrapping.

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, types.ErrArithmeticOverflow.Wrapf("add %d + %d", a, b)
	}
	return sum, nil
}

func checkedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, types.ErrArithmeticOverflow.Wrapf("mul %d * %d", a, b)
	}
	return lo, nil
}

func checkedDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, types.ErrArithmeticOverflow.Wrapf("div %d by zero", a)
	}
	return a / b, nil
}

// precisePow approximates base^(num/den) over scaled integers. Exponents at or
// below one collapse to base itself; larger exponents multiply base by the
// integer part of the exponent. The approximation is deliberately coarse: it
// keeps price curves monotonic in the coefficient without pulling fixed-point
// exponentiation into consensus.
func precisePow(base, num, den, scalar uint64) (uint64, error) {
	if num == den {
		return base, nil
	}

	scaledNum, err := checkedMul(num, scalar)
	if err != nil {
		return 0, err
	}
	exp, err := checkedDiv(scaledNum, den)
	if err != nil {
		return 0, err
	}

	if exp <= scalar {
		return base, nil
	}
	return checkedMul(base, exp/scalar)
}

// CalculatePricePerSecond derives the scaled per-second subscription price for
// a feed configuration. The price grows with update cadence (updates per day)
// and with the signature threshold, each shaped by its coefficient, then takes
// the buffer percentage on top.
func (k Keeper) CalculatePricePerSecond(params types.Params, minSignatures uint32, frequencySeconds uint64) (uint64, error) {
	updatesPerDay, err := checkedDiv(types.SecondsPerDay, frequencySeconds)
	if err != nil {
		return 0, err
	}

	frequencyFactor, err := precisePow(updatesPerDay, params.FrequencyCoefficient, types.CoefficientScale, types.PriceScalar)
	if err != nil {
		return 0, err
	}
	signersFactor, err := precisePow(uint64(minSignatures), params.SignersCoefficient, types.CoefficientScale, types.PriceScalar)
	if err != nil {
		return 0, err
	}

	price, err := checkedMul(params.BasePricePerSecondScaled, frequencyFactor)
	if err != nil {
		return 0, err
	}
	price, err = checkedMul(price, signersFactor)
	if err != nil {
		return 0, err
	}
	price, err = checkedDiv(price, types.PriceScalar)
	if err != nil {
		return 0, err
	}
	price, err = checkedDiv(price, types.PriceScalar)
	if err != nil {
		return 0, err
	}

	buffered, err := checkedMul(price, params.PriorityFeeBufferPercentage)
	if err != nil {
		return 0, err
	}
	return checkedDiv(buffered, 100)
}

// SubscriptionCost converts a scaled per-second price into the total charge
// for a duration, floored by the price scalar.
func SubscriptionCost(pricePerSecondScaled, durationSeconds uint64) (uint64, error) {
	total, err := checkedMul(pricePerSecondScaled, durationSeconds)
	if err != nil {
		return 0, err
	}
	return checkedDiv(total, types.PriceScalar)
}

// EstimateComputeUnits sizes the work of storing one answer: a fixed base, a
// per-registered-node share for signature scanning, and an append or overwrite
// component depending on whether the history ring is still filling.
func EstimateComputeUnits(nodeCount, historyLen int) uint64 {
	units := types.BaseComputeUnits + uint64(nodeCount)*types.ComputeUnitsPerNode
	if historyLen < types.MaxAnswerHistory {
		units += types.ShortHistoryComputeUnits
	} else {
		units += types.FullHistoryComputeUnits
	}
	return units
}

// ComputePriorityFee turns a publisher's scaled fee bid into the actual charge
// for the estimated compute units.
func ComputePriorityFee(feeBid, computeUnits uint64) (uint64, error) {
	total, err := checkedMul(feeBid, computeUnits)
	if err != nil {
		return 0, err
	}
	return checkedDiv(total, types.FeeBidScale)
}
