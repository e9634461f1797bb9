package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/veris-chain/veris/testutil/keeper"
	"github.com/veris-chain/veris/x/oracle/keeper"
	"github.com/veris-chain/veris/x/oracle/types"
)

// TestCalculatePricePerSecond_Defaults tests the baseline price at the
// slowest cadence and a single signature
func TestCalculatePricePerSecond_Defaults(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)
	params := types.DefaultParams()

	price, err := k.CalculatePricePerSecond(params, 1, types.SecondsPerDay)
	require.NoError(t, err)
	require.Equal(t, uint64(100), price)
}

// TestCalculatePricePerSecond_ScalesWithCadenceAndSigners tests that price
// grows linearly in updates per day and threshold at exponent-1 coefficients
func TestCalculatePricePerSecond_ScalesWithCadenceAndSigners(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)
	params := types.DefaultParams()

	// Hourly cadence is 24 updates per day; three signers triple it again.
	price, err := k.CalculatePricePerSecond(params, 3, 3600)
	require.NoError(t, err)
	require.Equal(t, uint64(100*24*3), price)
}

// TestCalculatePricePerSecond_MainnetBuffer tests the 50% priority fee
// headroom of the mainnet parameter set
func TestCalculatePricePerSecond_MainnetBuffer(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)
	params := types.MainnetParams()

	price, err := k.CalculatePricePerSecond(params, 1, types.SecondsPerDay)
	require.NoError(t, err)
	require.Equal(t, uint64(150), price)
}

// TestCalculatePricePerSecond_ZeroFrequency tests rejection of a zero
// frequency before it divides the day length
func TestCalculatePricePerSecond_ZeroFrequency(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)

	_, err := k.CalculatePricePerSecond(types.DefaultParams(), 1, 0)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

// TestCalculatePricePerSecond_Overflow tests that hostile parameters
// surface as an overflow error instead of wrapping
func TestCalculatePricePerSecond_Overflow(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)

	params := types.DefaultParams()
	params.BasePricePerSecondScaled = ^uint64(0)

	_, err := k.CalculatePricePerSecond(params, 3, 1)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

// TestCalculatePricePerSecond_SubUnityCoefficients tests that coefficients
// below the scale collapse the factor to the base
func TestCalculatePricePerSecond_SubUnityCoefficients(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)

	params := types.DefaultParams()
	params.FrequencyCoefficient = types.CoefficientScale / 2
	params.SignersCoefficient = types.CoefficientScale / 2

	// Factors stay at updatesPerDay and minSignatures respectively, so the
	// result matches the exponent-1 case.
	price, err := k.CalculatePricePerSecond(params, 2, 43200)
	require.NoError(t, err)
	require.Equal(t, uint64(100*2*2), price)
}

// TestCalculatePricePerSecond_SuperUnityCoefficients tests the integer
// amplification above exponent one
func TestCalculatePricePerSecond_SuperUnityCoefficients(t *testing.T) {
	k, _, _ := keepertest.OracleKeeper(t)

	params := types.DefaultParams()
	params.FrequencyCoefficient = 3 * types.CoefficientScale

	// The frequency factor gains an integer multiplier of 3.
	price, err := k.CalculatePricePerSecond(params, 1, types.SecondsPerDay)
	require.NoError(t, err)
	require.Equal(t, uint64(300), price)
}

// TestSubscriptionCost tests the duration charge and its flooring
func TestSubscriptionCost(t *testing.T) {
	cost, err := keeper.SubscriptionCost(100, types.SecondsPerDay)
	require.NoError(t, err)
	require.Equal(t, uint64(8), cost) // 8_640_000 / 1_000_000 floored

	cost, err = keeper.SubscriptionCost(types.PriceScalar, 3600)
	require.NoError(t, err)
	require.Equal(t, uint64(3600), cost)

	_, err = keeper.SubscriptionCost(^uint64(0), 2)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

// TestEstimateComputeUnits tests the per-answer work estimate for growing
// and full history rings
func TestEstimateComputeUnits(t *testing.T) {
	require.Equal(t, uint64(5500), keeper.EstimateComputeUnits(0, 0))
	require.Equal(t, uint64(6500), keeper.EstimateComputeUnits(1, 0))
	require.Equal(t, uint64(15500), keeper.EstimateComputeUnits(10, 5))

	// A full ring overwrites instead of appending and costs less.
	require.Equal(t, uint64(15200), keeper.EstimateComputeUnits(10, types.MaxAnswerHistory))
}

// TestComputePriorityFee tests the fee bid to charge conversion
func TestComputePriorityFee(t *testing.T) {
	fee, err := keeper.ComputePriorityFee(1000, 6500)
	require.NoError(t, err)
	require.Equal(t, uint64(6), fee)

	fee, err = keeper.ComputePriorityFee(0, 6500)
	require.NoError(t, err)
	require.Equal(t, uint64(0), fee)

	_, err = keeper.ComputePriorityFee(^uint64(0), 2)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}
