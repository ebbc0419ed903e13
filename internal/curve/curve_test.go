package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp_BelowRange(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1.5, 0, 10))
}

func TestClamp_AboveRange(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(12.3, 0, 10))
}

func TestClamp_InsideRange(t *testing.T) {
	assert.Equal(t, 4.2, Clamp(4.2, 0, 10))
}

func TestLogistic_Midpoint(t *testing.T) {
	assert.InDelta(t, 0.5, Logistic(0), 0.0001)
}

func TestLogistic_ExtremeArguments(t *testing.T) {
	// Arguments beyond the clamp must saturate exactly, not overflow
	assert.Equal(t, 1.0, Logistic(1000))
	assert.Equal(t, 0.0, Logistic(-1000))
	assert.False(t, math.IsNaN(Logistic(math.MaxFloat64)))
}

func TestLogistic_Monotonic(t *testing.T) {
	prev := Logistic(-50)
	for x := -49.0; x <= 50; x++ {
		cur := Logistic(x)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSoftplus_Zero(t *testing.T) {
	assert.InDelta(t, math.Log(2), Softplus(0), 0.0001)
}

func TestSoftplus_LargePositiveApproachesLinear(t *testing.T) {
	assert.InDelta(t, 100.0, Softplus(100), 0.0001)
}

func TestSoftplus_LargeNegativeApproachesZero(t *testing.T) {
	assert.Equal(t, 0.0, Softplus(-100))
}

func TestSatExp_ZeroInput(t *testing.T) {
	assert.Equal(t, 0.0, SatExp(0, 0.5))
}

func TestSatExp_NegativeTreatedAsZero(t *testing.T) {
	assert.Equal(t, 0.0, SatExp(-3, 0.5))
}

func TestSatExp_ApproachesOne(t *testing.T) {
	score := SatExp(1000, 0.5)
	assert.Greater(t, score, 0.9999)
	assert.Less(t, score, 1.0)
}

func TestSatExp_DiminishingReturns(t *testing.T) {
	// Each additional unit of input earns less than the one before
	first := SatExp(1, 0.4) - SatExp(0, 0.4)
	second := SatExp(2, 0.4) - SatExp(1, 0.4)
	third := SatExp(3, 0.4) - SatExp(2, 0.4)
	assert.Greater(t, first, second)
	assert.Greater(t, second, third)
}

func TestGaussianBand_PeakAtCenter(t *testing.T) {
	assert.Equal(t, 1.0, GaussianBand(3, 3, 1.2))
}

func TestGaussianBand_Symmetric(t *testing.T) {
	assert.InDelta(t, GaussianBand(2, 3, 1.2), GaussianBand(4, 3, 1.2), 0.0001)
}

func TestGaussianBand_DecaysAwayFromCenter(t *testing.T) {
	near := GaussianBand(4, 3, 1.2)
	far := GaussianBand(8, 3, 1.2)
	assert.Greater(t, near, far)
	assert.Greater(t, far, 0.0)
}

func TestGaussianBand_NonPositiveSigma(t *testing.T) {
	assert.Equal(t, 1.0, GaussianBand(3, 3, 0))
	assert.Equal(t, 0.0, GaussianBand(3.1, 3, 0))
}

func TestRound6_FreezesPrecision(t *testing.T) {
	assert.Equal(t, 3.141593, Round6(math.Pi))
	assert.Equal(t, 0.0, Round6(0.0000004))
}

func TestRound1_DisplayPrecision(t *testing.T) {
	assert.Equal(t, 7.3, Round1(7.34))
	assert.Equal(t, 7.4, Round1(7.35))
}
