package domain

// SoilType describes typical field capacity for a Ukrainian soil group.
type SoilType struct {
	Type             string  `json:"type"`
	FieldCapacityMin float64 `json:"field_capacity_min"`
	FieldCapacityMax float64 `json:"field_capacity_max"`
	Notes            string  `json:"notes"`
}

// IrrigationMethod describes the application efficiency of an irrigation method.
type IrrigationMethod struct {
	Method     string  `json:"method"`
	Efficiency float64 `json:"efficiency"`
	Notes      string  `json:"notes"`
}

// CropCategory groups crops in the reference book.
type CropCategory string

const (
	CategoryVegetables CropCategory = "vegetables"
	CategoryCereals    CropCategory = "cereals"
	CategoryLegumes    CropCategory = "legumes"
	CategoryOrchards   CropCategory = "orchards"
	CategoryIndustrial CropCategory = "industrial"
)

// CropReference gives recommended soil parameters for a crop family. Root
// depth is in mm, watering threshold in percent of field capacity.
type CropReference struct {
	Crop                 string       `json:"crop"`
	Category             CropCategory `json:"category"`
	RootDepthMin         float64      `json:"root_depth_min"`
	RootDepthMax         float64      `json:"root_depth_max"`
	WateringThresholdMin float64      `json:"watering_threshold_min"`
	WateringThresholdMax float64      `json:"watering_threshold_max"`
	Notes                string       `json:"notes"`
}

// ClimateRegionTypes are the regional climate classes offered with irrigation input.
var ClimateRegionTypes = []string{"Humid", "Semi-humid", "Semi-arid", "Arid"}

// ReferenceBook bundles the static agronomy reference tables.
type ReferenceBook struct {
	SoilTypes          []SoilType         `json:"soil_types"`
	IrrigationMethods  []IrrigationMethod `json:"irrigation_methods"`
	Crops              []CropReference    `json:"crops"`
	ClimateRegionTypes []string           `json:"climate_region_types"`
}

// Reference returns a copy of the reference tables, optionally filtered to one
// crop category. An empty category returns every crop.
func Reference(category CropCategory) ReferenceBook {
	book := ReferenceBook{
		SoilTypes:          append([]SoilType(nil), soilTypes...),
		IrrigationMethods:  append([]IrrigationMethod(nil), irrigationMethods...),
		ClimateRegionTypes: append([]string(nil), ClimateRegionTypes...),
	}
	for _, c := range cropReferences {
		if category == "" || c.Category == category {
			book.Crops = append(book.Crops, c)
		}
	}
	return book
}

var soilTypes = []SoilType{
	{Type: "Podzolized soils", FieldCapacityMin: 10, FieldCapacityMax: 15, Notes: "Sandy texture, low organic matter, lower water retention"},
	{Type: "Chernozems", FieldCapacityMin: 30, FieldCapacityMax: 40, Notes: "Loamy, high organic matter, excellent water retention"},
	{Type: "Chestnut soils", FieldCapacityMin: 25, FieldCapacityMax: 35, Notes: "Moderate humus, good retention"},
	{Type: "Salinized soils", FieldCapacityMin: 20, FieldCapacityMax: 30, Notes: "Variable due to salinity, generally lower available water"},
}

var irrigationMethods = []IrrigationMethod{
	{Method: "Surface irrigation", Efficiency: 60, Notes: "Prone to runoff and evaporation losses"},
	{Method: "Sprinkler irrigation", Efficiency: 75, Notes: "More uniform, but wind and evaporation cause some losses"},
	{Method: "Drip irrigation", Efficiency: 90, Notes: "Most efficient; delivers water directly to root zone"},
}

var cropReferences = []CropReference{
	{"Broccoli", CategoryVegetables, 400, 500, 70, 75, "Sensitive to water stress, similar to cauliflower."},
	{"Cabbage", CategoryVegetables, 400, 500, 70, 75, "Similar to broccoli."},
	{"Carrots", CategoryVegetables, 400, 500, 60, 70, "Moderate tolerance, root crop."},
	{"Cauliflower", CategoryVegetables, 400, 500, 70, 75, "Sensitive to water stress."},
	{"Celery", CategoryVegetables, 400, 500, 70, 75, "Similar to leafy greens."},
	{"Lettuce", CategoryVegetables, 400, 500, 70, 75, "Shallow roots, sensitive to water stress."},
	{"Onion (dry)", CategoryVegetables, 250, 350, 60, 70, "Similar to table beet."},
	{"Onion (green)", CategoryVegetables, 250, 350, 60, 70, "Similar to dry onion."},
	{"Onion (seed)", CategoryVegetables, 250, 350, 60, 70, "Similar to dry onion."},
	{"Spinach", CategoryVegetables, 400, 500, 70, 75, "Shallow roots, sensitive to water stress."},
	{"Radish", CategoryVegetables, 250, 350, 60, 70, "Similar to table beet."},
	{"Eggplant", CategoryVegetables, 550, 650, 70, 80, "Similar to tomato."},
	{"Sweet peppers (bell)", CategoryVegetables, 550, 650, 70, 80, "Similar to cucumber."},
	{"Tomato", CategoryVegetables, 550, 650, 80, 85, "Moderate tolerance to depletion."},
	{"Cantaloupe", CategoryVegetables, 850, 950, 60, 70, "Similar to winter squash."},
	{"Cucumber", CategoryVegetables, 550, 650, 70, 80, "Moderate tolerance to depletion."},
	{"Pumpkin, Winter squash", CategoryVegetables, 850, 950, 60, 70, "Higher tolerance due to deeper roots."},
	{"Squash, Zucchini", CategoryVegetables, 550, 650, 70, 80, "Similar to cucumber."},
	{"Sweet melons", CategoryVegetables, 850, 950, 60, 70, "Similar to cantaloupe."},
	{"Watermelons", CategoryVegetables, 850, 950, 60, 70, "Similar to winter squash."},
	{"Beets (table)", CategoryVegetables, 400, 500, 60, 70, "Moderate tolerance to depletion."},
	{"Potato", CategoryVegetables, 750, 850, 70, 80, "Sensitive to water stress."},
	{"Sweet potato", CategoryVegetables, 400, 500, 60, 70, "Similar to carrots."},
	{"Sugarbeet", CategoryIndustrial, 550, 650, 60, 70, "Similar to table beet."},

	{"Beans (green)", CategoryLegumes, 400, 500, 60, 70, "Moderate tolerance to depletion."},
	{"Beans (dry)", CategoryLegumes, 400, 500, 60, 70, "Similar to green beans."},
	{"Faba bean, broad bean", CategoryLegumes, 400, 500, 60, 70, "Similar to beans."},
	{"Groundnut", CategoryLegumes, 550, 650, 70, 80, "Similar to peanuts, sensitive to water stress."},
	{"Lentil", CategoryLegumes, 400, 500, 60, 70, "Similar to beans."},
	{"Peas", CategoryLegumes, 400, 500, 60, 70, "Similar to beans."},
	{"Soybeans", CategoryLegumes, 550, 650, 60, 70, "Moderate tolerance to depletion."},

	{"Barley/Oats/Wheat", CategoryCereals, 550, 950, 50, 60, "Typical for cereals, range reflects variability."},
	{"Winter Wheat", CategoryCereals, 550, 950, 50, 60, "Similar to wheat."},
	{"Grains (small)", CategoryCereals, 550, 950, 50, 60, "Similar to barley/oats/wheat."},
	{"Maize (grain)", CategoryCereals, 550, 650, 70, 75, "Moderate tolerance to depletion."},
	{"Maize (sweet)", CategoryCereals, 550, 650, 70, 75, "Similar to grain maize."},
	{"Millet", CategoryCereals, 550, 650, 50, 60, "Similar to grains."},
	{"Sorghum", CategoryCereals, 850, 950, 50, 60, "Similar to maize."},
	{"Rice", CategoryCereals, 250, 350, 80, 90, "Requires high soil moisture due to flooded conditions."},

	{"Cotton", CategoryIndustrial, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Flax", CategoryIndustrial, 550, 650, 50, 60, "Similar to grains."},
	{"Safflower", CategoryIndustrial, 850, 950, 50, 60, "Similar to sunflower."},
	{"Sesame", CategoryIndustrial, 550, 650, 50, 60, "Similar to grains."},
	{"Sunflower", CategoryIndustrial, 850, 950, 50, 60, "Moderate tolerance to depletion."},

	{"Grapes", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Citrus", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Deciduous Orchard", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Olives", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Pistachios", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
	{"Walnuts", CategoryOrchards, 850, 950, 50, 60, "High tolerance due to deep roots."},
}
