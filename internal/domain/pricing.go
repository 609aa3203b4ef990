package domain

import "math"

// Pricing is derived state, never authored directly. Subtotal and total are
// always recomputed by summing the stored components, so a stale previous
// contribution can never leak into a new total when a selection changes.
type Pricing struct {
	BasePackagePrice float64
	AddOnTotal       float64
	ExtraHoursCost   float64
	TripChargeAmount float64

	Subtotal   float64
	Total      float64
	Deposit    float64
	BalanceDue float64
}

// Recalculate пересчитывает производные суммы из компонентов.
// Вызывается после изменения любого компонента.
func (p *Pricing) Recalculate() {
	p.Subtotal = p.BasePackagePrice + p.AddOnTotal + p.ExtraHoursCost
	p.Total = p.Subtotal + p.TripChargeAmount
	p.Deposit = DepositAmount
	p.BalanceDue = p.Total - p.Deposit
}

// BasePackagePrice возвращает базовую цену пакета для продукта.
// Dance Dome имеет льготную цену для каждого пакета, остальные продукты
// делят общую цену. Неизвестный пакет или продукт дает 0.
func BasePackagePrice(product Product, pkg Package) float64 {
	prices, ok := packagePrices[pkg]
	if !ok {
		return 0
	}
	if product == ProductDanceDome {
		return prices.Dome
	}
	if !IsValidProduct(product) {
		return 0
	}
	return prices.Standard
}

// ExtraHoursCost is the single definition of the tiered extra-hour formula:
// 0 hours cost nothing, the first hour costs FirstExtraHourRate, every hour
// after that costs AdditionalExtraHourRate. Every place that previews,
// confirms or bills extra hours must go through this function.
func ExtraHoursCost(extraHours int) float64 {
	if extraHours <= 0 {
		return 0
	}
	return FirstExtraHourRate + float64(extraHours-1)*AdditionalExtraHourRate
}

// ExtraHoursForSlot возвращает количество дополнительных часов сверх
// входящих в пакет для выбранного слота
func ExtraHoursForSlot(slot TimeSlot) int {
	extra := slot.DurationHours() - IncludedHours
	if extra < 0 {
		return 0
	}
	return extra
}

// AddOnTotal суммирует цены включенных дополнений.
// Выбор сначала фильтруется по доступности для пакета: недоступное
// дополнение дает 0, даже если его флаг остался от прежнего пакета.
func AddOnTotal(selection AddOnSelection, pkg Package) float64 {
	total := 0.0
	for addOn, on := range selection.FilterEligible(pkg) {
		if on {
			total += AddOnPrices[addOn]
		}
	}
	return total
}

// TripCharge возвращает доплату за доставку по расстоянию в милях.
// До внутреннего радиуса включительно доплаты нет, до внешнего радиуса
// включительно - фиксированная доплата. За внешним радиусом обслуживание
// невозможно; этот случай отсекается до вызова (см. ServiceAreaResult).
func TripCharge(distanceMiles float64) float64 {
	if distanceMiles <= ServiceAreaInnerRadiusMiles {
		return 0
	}
	return TripSurcharge
}

// RoundDistance округляет расстояние до одного знака после запятой
func RoundDistance(miles float64) float64 {
	return math.Round(miles*10) / 10
}
