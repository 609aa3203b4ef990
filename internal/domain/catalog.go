package domain

// Product is one of the rentable inflatable units. The catalog is fixed
// reference data; capacity and dimensions are descriptive only.
type Product string

const (
	ProductDanceDome   Product = "Dance Dome"
	ProductCastleCombo Product = "Castle Combo"
	ProductMegaSlide   Product = "Mega Slide"
)

// ProductInfo описательные характеристики продукта (не участвуют в логике)
type ProductInfo struct {
	Name       Product
	Capacity   int
	Dimensions string
}

// Products фиксированный каталог продуктов
var Products = []ProductInfo{
	{Name: ProductDanceDome, Capacity: 10, Dimensions: "15x15x12 ft"},
	{Name: ProductCastleCombo, Capacity: 12, Dimensions: "19x17x15 ft"},
	{Name: ProductMegaSlide, Capacity: 8, Dimensions: "27x12x18 ft"},
}

// IsValidProduct возвращает true, если имя продукта есть в каталоге
func IsValidProduct(p Product) bool {
	for _, info := range Products {
		if info.Name == p {
			return true
		}
	}
	return false
}

// Package is one of the fixed service tiers. Each tier carries two price
// points: a discounted one for the cheapest product (Dance Dome) and a
// shared one for the other two.
type Package string

const (
	PackagePartyStarter   Package = "Party Starter"
	PackageCelebrationPro Package = "Celebration Pro"
	PackageUltimateBash   Package = "Ultimate Bash"
)

// packagePrices таблица базовых цен: [пакет] -> (цена для Dance Dome, цена для остальных)
var packagePrices = map[Package]struct {
	Dome     float64
	Standard float64
}{
	PackagePartyStarter:   {Dome: 250, Standard: 300},
	PackageCelebrationPro: {Dome: 450, Standard: 500},
	PackageUltimateBash:   {Dome: 600, Standard: 650},
}

// Packages фиксированный каталог пакетов в порядке возрастания цены
var Packages = []Package{
	PackagePartyStarter,
	PackageCelebrationPro,
	PackageUltimateBash,
}

// IsValidPackage возвращает true, если пакет есть в каталоге
func IsValidPackage(p Package) bool {
	_, ok := packagePrices[p]
	return ok
}

// AddOn is a named optional extra with a fixed price.
type AddOn string

const (
	AddOnGenerator    AddOn = "generator"
	AddOnTablesChairs AddOn = "tablesChairs"
	AddOnCottonCandy  AddOn = "cottonCandy"
	AddOnLEDLighting  AddOn = "ledLighting"
)

// AddOnPrices фиксированные цены дополнений
var AddOnPrices = map[AddOn]float64{
	AddOnGenerator:    75,
	AddOnTablesChairs: 50,
	AddOnCottonCandy:  65,
	AddOnLEDLighting:  40,
}

// eligibleAddOns статическая таблица: какие дополнения можно докупить к пакету.
// Дополнение, входящее в пакет, здесь отсутствует и в цену не попадает.
// Это единственный источник правды для видимости дополнений - ветвления
// по имени пакета в других местах недопустимы.
var eligibleAddOns = map[Package]map[AddOn]bool{
	PackagePartyStarter: {
		AddOnGenerator:    true,
		AddOnTablesChairs: true,
		AddOnCottonCandy:  true,
		AddOnLEDLighting:  true,
	},
	PackageCelebrationPro: {
		AddOnGenerator:    true,
		AddOnTablesChairs: true,
		AddOnCottonCandy:  true,
		// ledLighting входит в пакет
	},
	PackageUltimateBash: {
		AddOnGenerator:   true,
		AddOnCottonCandy: true,
		// tablesChairs и ledLighting входят в пакет
	},
}

// IsAddOnEligible возвращает true, если дополнение можно докупить к пакету
func IsAddOnEligible(pkg Package, addOn AddOn) bool {
	return eligibleAddOns[pkg][addOn]
}

// AddOnSelection набор переключателей дополнений
type AddOnSelection map[AddOn]bool

// FilterEligible возвращает копию выбора, в которой сброшены дополнения,
// недоступные для указанного пакета. Вызывается при каждой смене пакета,
// чтобы устаревший флаг от прежнего пакета не попал в цену.
func (s AddOnSelection) FilterEligible(pkg Package) AddOnSelection {
	filtered := make(AddOnSelection, len(s))
	for addOn, on := range s {
		if on && IsAddOnEligible(pkg, addOn) {
			filtered[addOn] = true
		}
	}
	return filtered
}
