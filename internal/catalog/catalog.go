// Package catalog is the static template library the reconciliation engine
// seeds from. Template names are the reconciliation key and must stay stable
// across releases.
package catalog

import "github.com/sandeepkv93/homekeep/internal/model"

type ZoneDef struct {
	Name string
	Icon string
}

type TaskTemplate struct {
	Name        string
	Description string
	Frequency   model.Frequency
	Zone        string
	Season      model.Season
	Icon        string
}

// Zones lists the default zones in display order; the index doubles as the
// zone's sort order.
var Zones = []ZoneDef{
	{Name: "Kitchen", Icon: "refrigerator"},
	{Name: "Bathroom", Icon: "shower"},
	{Name: "HVAC", Icon: "fan"},
	{Name: "Plumbing", Icon: "droplet"},
	{Name: "Electrical", Icon: "bolt"},
	{Name: "Exterior", Icon: "house"},
	{Name: "Garage", Icon: "car"},
	{Name: "Laundry", Icon: "washer"},
	{Name: "Safety", Icon: "shield"},
	{Name: "Lawn & Garden", Icon: "leaf"},
	{Name: "Roof & Gutters", Icon: "rain"},
	{Name: "General", Icon: "toolbox"},
}

// starterNames are the safety and HVAC tasks enabled on a fresh install.
var starterNames = map[string]bool{
	"Replace HVAC Filter":              true,
	"Test Smoke Detectors":             true,
	"Test CO Detectors":                true,
	"Check Fire Extinguisher":          true,
	"Replace Smoke Detector Batteries": true,
}

// IsStarter reports whether a template name belongs to the starter set.
func IsStarter(name string) bool {
	return starterNames[name]
}

var Templates = []TaskTemplate{
	// HVAC
	{Name: "Replace HVAC Filter", Description: "Replace air filter in furnace/AC unit. Check size before purchasing.", Frequency: model.FrequencyMonthly, Zone: "HVAC", Icon: "fan"},
	{Name: "HVAC Professional Service", Description: "Schedule annual professional HVAC inspection and tune-up.", Frequency: model.FrequencyAnnual, Zone: "HVAC", Season: model.SeasonFall, Icon: "toolbox"},
	{Name: "Clean AC Condenser Coils", Description: "Spray down exterior AC unit coils with garden hose.", Frequency: model.FrequencyAnnual, Zone: "HVAC", Season: model.SeasonSpring, Icon: "snowflake"},
	{Name: "Check Thermostat Batteries", Description: "Replace batteries in thermostat if not hardwired.", Frequency: model.FrequencyBiannual, Zone: "HVAC", Icon: "battery"},

	// Plumbing
	{Name: "Flush Water Heater", Description: "Drain sediment from water heater tank to maintain efficiency.", Frequency: model.FrequencyAnnual, Zone: "Plumbing", Season: model.SeasonFall, Icon: "flame"},
	{Name: "Check for Leaks", Description: "Inspect under sinks, around toilets, and near water heater for leaks.", Frequency: model.FrequencyQuarterly, Zone: "Plumbing", Icon: "droplet"},
	{Name: "Clean Garbage Disposal", Description: "Run ice cubes and citrus peels through disposal to clean and deodorize.", Frequency: model.FrequencyMonthly, Zone: "Plumbing", Icon: "recycle"},
	{Name: "Test Sump Pump", Description: "Pour water into sump pit to verify pump activates and drains.", Frequency: model.FrequencyQuarterly, Zone: "Plumbing", Season: model.SeasonSpring, Icon: "pump"},
	{Name: "Inspect Water Softener", Description: "Check salt levels and clean brine tank.", Frequency: model.FrequencyMonthly, Zone: "Plumbing", Icon: "droplet"},

	// Exterior
	{Name: "Clean Gutters", Description: "Remove leaves and debris from gutters and downspouts.", Frequency: model.FrequencyBiannual, Zone: "Roof & Gutters", Season: model.SeasonFall, Icon: "rain"},
	{Name: "Inspect Roof", Description: "Check for damaged, loose, or missing shingles.", Frequency: model.FrequencyAnnual, Zone: "Roof & Gutters", Season: model.SeasonSpring, Icon: "house"},
	{Name: "Power Wash Exterior", Description: "Power wash siding, deck, driveway, and walkways.", Frequency: model.FrequencyAnnual, Zone: "Exterior", Season: model.SeasonSpring, Icon: "waves"},
	{Name: "Seal Driveway", Description: "Apply sealant to asphalt driveway to prevent cracks.", Frequency: model.FrequencyAnnual, Zone: "Exterior", Season: model.SeasonSummer, Icon: "road"},
	{Name: "Check Exterior Caulking", Description: "Inspect and repair caulking around windows, doors, and trim.", Frequency: model.FrequencyAnnual, Zone: "Exterior", Season: model.SeasonFall, Icon: "caulk"},
	{Name: "Inspect Deck/Patio", Description: "Check for loose boards, popped nails, and signs of rot.", Frequency: model.FrequencyAnnual, Zone: "Exterior", Season: model.SeasonSpring, Icon: "deck"},

	// Safety
	{Name: "Test Smoke Detectors", Description: "Press test button on all smoke detectors.", Frequency: model.FrequencyMonthly, Zone: "Safety", Icon: "sensor"},
	{Name: "Replace Smoke Detector Batteries", Description: "Replace batteries in all smoke and CO detectors.", Frequency: model.FrequencyAnnual, Zone: "Safety", Season: model.SeasonFall, Icon: "battery"},
	{Name: "Test CO Detectors", Description: "Press test button on carbon monoxide detectors.", Frequency: model.FrequencyMonthly, Zone: "Safety", Icon: "alert"},
	{Name: "Check Fire Extinguisher", Description: "Verify pressure gauge is in green zone and check expiry date.", Frequency: model.FrequencyAnnual, Zone: "Safety", Icon: "extinguisher"},
	{Name: "Test GFCIs", Description: "Press test/reset buttons on all GFCI outlets.", Frequency: model.FrequencyMonthly, Zone: "Electrical", Icon: "bolt"},

	// Kitchen
	{Name: "Clean Range Hood Filter", Description: "Remove and soak range hood grease filters in hot soapy water.", Frequency: model.FrequencyQuarterly, Zone: "Kitchen", Icon: "oven"},
	{Name: "Clean Refrigerator Coils", Description: "Vacuum dust from refrigerator condenser coils (underneath or behind).", Frequency: model.FrequencyBiannual, Zone: "Kitchen", Icon: "refrigerator"},
	{Name: "Deep Clean Oven", Description: "Run self-clean cycle or manually clean oven interior.", Frequency: model.FrequencyQuarterly, Zone: "Kitchen", Icon: "flame"},
	{Name: "Clean Dishwasher", Description: "Run empty cycle with dishwasher cleaner. Clean filter and spray arms.", Frequency: model.FrequencyMonthly, Zone: "Kitchen", Icon: "dishwasher"},

	// Laundry
	{Name: "Clean Dryer Vent", Description: "Disconnect and clean entire dryer vent duct. Critical fire safety task.", Frequency: model.FrequencyAnnual, Zone: "Laundry", Icon: "wind"},
	{Name: "Clean Washing Machine", Description: "Run empty hot cycle with washer cleaner. Wipe door gasket.", Frequency: model.FrequencyMonthly, Zone: "Laundry", Icon: "washer"},
	{Name: "Inspect Washing Machine Hoses", Description: "Check for bulges, cracks, or leaks. Replace every 5 years.", Frequency: model.FrequencyAnnual, Zone: "Laundry", Icon: "pipe"},

	// Lawn & Garden
	{Name: "Fertilize Lawn", Description: "Apply seasonal fertilizer appropriate for grass type.", Frequency: model.FrequencyQuarterly, Zone: "Lawn & Garden", Season: model.SeasonSpring, Icon: "leaf"},
	{Name: "Aerate Lawn", Description: "Core aerate lawn to reduce compaction and improve growth.", Frequency: model.FrequencyAnnual, Zone: "Lawn & Garden", Season: model.SeasonFall, Icon: "aerator"},
	{Name: "Winterize Sprinklers", Description: "Blow out irrigation lines before first freeze.", Frequency: model.FrequencyAnnual, Zone: "Lawn & Garden", Season: model.SeasonFall, Icon: "snowflake"},
	{Name: "Trim Trees & Shrubs", Description: "Prune dead branches and shape hedges.", Frequency: model.FrequencyAnnual, Zone: "Lawn & Garden", Season: model.SeasonSpring, Icon: "tree"},

	// General
	{Name: "Inspect Attic/Crawlspace", Description: "Check for moisture, pests, insulation damage, and ventilation.", Frequency: model.FrequencyBiannual, Zone: "General", Icon: "magnifier"},
	{Name: "Lubricate Door Hinges", Description: "Apply WD-40 or silicone spray to squeaky door hinges.", Frequency: model.FrequencyAnnual, Zone: "General", Icon: "door"},
	{Name: "Touch Up Interior Paint", Description: "Fix scuffs, nail holes, and chips in interior paint.", Frequency: model.FrequencyAnnual, Zone: "General", Season: model.SeasonSpring, Icon: "paintbrush"},
	{Name: "Clean Windows", Description: "Wash all interior and exterior window surfaces.", Frequency: model.FrequencyBiannual, Zone: "General", Season: model.SeasonSpring, Icon: "window"},
	{Name: "Replace Water Filters", Description: "Replace refrigerator water filter and any whole-house filters.", Frequency: model.FrequencyBiannual, Zone: "Kitchen", Icon: "filter"},

	// Garage
	{Name: "Lubricate Garage Door", Description: "Spray silicone lubricant on garage door tracks, rollers, and hinges.", Frequency: model.FrequencyBiannual, Zone: "Garage", Icon: "garage"},
	{Name: "Test Garage Door Auto-Reverse", Description: "Place object under door to verify auto-reverse safety feature works.", Frequency: model.FrequencyMonthly, Zone: "Garage", Icon: "reverse"},

	// Bathroom
	{Name: "Re-caulk Shower/Tub", Description: "Inspect and replace caulking around tub, shower, and sink.", Frequency: model.FrequencyAnnual, Zone: "Bathroom", Icon: "shower"},
	{Name: "Clean Bathroom Exhaust Fan", Description: "Remove cover and vacuum dust from exhaust fan.", Frequency: model.FrequencyBiannual, Zone: "Bathroom", Icon: "fan"},
}
