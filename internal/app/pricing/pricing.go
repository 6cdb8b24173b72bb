package pricing

import "math"

// Пакет pricing — расчёт стоимости лицензий из записей цен.
// Хранимая запись всегда сохраняет исходный billing cycle и сырую
// стоимость; месячный эквивалент считается только для отображения.

// PackageKey — сигнальный ключ записи пакетной цены в черновике редактора
const PackageKey = "__package__"

// Циклы оплаты
const (
	CycleMonthly   = "monthly"
	CycleQuarterly = "quarterly"
	CycleYearly    = "yearly"
)

// PerSeatCost распределяет общую стоимость пакета на maxUsers мест.
// Нулевое или отрицательное число мест даёт ноль
func PerSeatCost(packageCost float64, maxUsers int) float64 {
	if maxUsers <= 0 {
		return 0
	}
	return packageCost / float64(maxUsers)
}

// MonthlyEquivalent приводит стоимость к месячному эквиваленту:
// годовая делится на 12, квартальная на 3, месячная без изменений.
// Неизвестный цикл трактуется как месячный
func MonthlyEquivalent(cost float64, billingCycle string) float64 {
	switch billingCycle {
	case CycleYearly:
		return cost / 12
	case CycleQuarterly:
		return cost / 3
	default:
		return cost
	}
}

// Round2 округляет до двух знаков для отображения
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// YearlyEquivalent приводит стоимость к годовому эквиваленту
func YearlyEquivalent(cost float64, billingCycle string) float64 {
	switch billingCycle {
	case CycleYearly:
		return cost
	case CycleQuarterly:
		return cost * 4
	default:
		return cost * 12
	}
}
