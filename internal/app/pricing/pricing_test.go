package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerSeatCost(t *testing.T) {
	// Пакет за 1200 в год на 24 места: 50 за место в год
	assert.InDelta(t, 50.0, PerSeatCost(1200, 24), 0.001)
	assert.Equal(t, 0.0, PerSeatCost(1200, 0))
	assert.Equal(t, 0.0, PerSeatCost(1200, -5))
}

func TestMonthlyEquivalent(t *testing.T) {
	assert.InDelta(t, 10.0, MonthlyEquivalent(120, CycleYearly), 0.001)
	assert.InDelta(t, 40.0, MonthlyEquivalent(120, CycleQuarterly), 0.001)
	assert.InDelta(t, 120.0, MonthlyEquivalent(120, CycleMonthly), 0.001)

	// Неизвестный цикл трактуется как месячный
	assert.InDelta(t, 120.0, MonthlyEquivalent(120, "weekly"), 0.001)
}

func TestYearlyEquivalent(t *testing.T) {
	assert.InDelta(t, 120.0, YearlyEquivalent(120, CycleYearly), 0.001)
	assert.InDelta(t, 480.0, YearlyEquivalent(120, CycleQuarterly), 0.001)
	assert.InDelta(t, 1200.0, YearlyEquivalent(100, CycleMonthly), 0.001)
}

func TestPackagePerSeatMonthly(t *testing.T) {
	// Годовой пакет 1200 на 24 места: 50 в год за место, 4.17 в месяц
	perSeat := PerSeatCost(1200, 24)
	monthly := Round2(MonthlyEquivalent(perSeat, CycleYearly))

	assert.InDelta(t, 50.0, perSeat, 0.001)
	assert.InDelta(t, 4.17, monthly, 0.001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.17, Round2(4.16666666))
	assert.Equal(t, 4.16, Round2(4.164))
	assert.Equal(t, 0.0, Round2(0))
}
