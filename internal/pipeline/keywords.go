package pipeline

import "github.com/eps-group/leadgen-cli/internal/model"

// Dictionaries holds the keyword lookup tables the scorer matches against.
// They are injected immutably so tests can substitute fixtures; nothing in
// the pipeline mutates them after construction.
type Dictionaries struct {
	// Industry maps a focus-industry name to substrings matched against
	// industry + notes.
	Industry map[string][]string
	// Product maps a product/process name to substrings matched against
	// notes + website.
	Product map[string][]string
	// Region maps a region name to location/contact hints, including TLD
	// fragments matched against country + state + city + email + website.
	Region map[string][]string
	// CustomerType maps each type to its trigger keywords. Matching order
	// is fixed by customerTypeOrder, not map iteration.
	CustomerType map[model.CustomerType][]string
	// Competitors lists rival vendor names; any mention flags the lead
	// and costs 20 points.
	Competitors []string
}

// customerTypeOrder fixes the priority in which customer types are probed;
// the first matching type wins.
var customerTypeOrder = []model.CustomerType{
	model.CustomerTypeEPC,
	model.CustomerTypeOEM,
	model.CustomerTypeEndUser,
	model.CustomerTypeDistributor,
}

// DefaultDictionaries returns the vacuum/process-equipment tuned tables the
// campaign presets assume. Keep keywords lowercase; matching is
// case-insensitive substring containment.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Industry: map[string][]string{
			"Chemicals":             {"chemical", "chem", "specialty", "resin", "solvent", "polymer", "intermediate"},
			"Agrochemicals":         {"agro", "fertilizer", "pesticide", "crop", "seed", "agro-chem"},
			"Food & Beverage":       {"dairy", "brew", "beverage", "food", "distillery", "sugar", "edible oil", "brewery"},
			"Pharma":                {"pharma", "biotech", "api", "formulation", "gmp", "cgmp"},
			"Oil & Gas":             {"refinery", "petro", "oil", "gas", "downstream", "upstream", "offshore"},
			"General Manufacturing": {"manufacturing", "fabrication", "plant"},
		},
		Product: map[string][]string{
			"Vacuum Systems": {"vacuum", "dry pump", "liquid ring", "roots", "screw pump"},
			"Evaporation":    {"evaporator", "mvr", "falling film", "forced circulation", "evaporation"},
			"Distillation":   {"distillation", "rectification", "column", "vacuum distillation"},
			"Filtration":     {"filter", "nutsch", "acg filter", "bag filter", "cartridge"},
			"Condensation":   {"condenser", "condensation", "heat exchanger"},
			"Scrubbing":      {"scrubber", "packed bed", "venturi", "caustic scrubber"},
		},
		Region: map[string][]string{
			"India":         {"india", "mumbai", "pune", "gujarat", "hyderabad", "vizag", "visakhapatnam", "bengaluru", "delhi", "noida", ".in"},
			"Middle East":   {"uae", "dubai", "abu dhabi", "saudi", "oman", "qatar", "bahrain", "kuwait", ".ae", ".sa", ".qa", ".om", ".bh", ".kw"},
			"SE Asia":       {"indonesia", "jakarta", "malaysia", "kuala lumpur", "thailand", "vietnam", "philippines", "singapore", ".id", ".my", ".th", ".vn", ".ph", ".sg"},
			"South America": {"brazil", "argentina", "colombia", "chile", "peru", ".br", ".ar", ".co", ".cl", ".pe"},
			"Italy":         {"italy", "italia", "milan", "torino", ".it"},
			"Bulgaria":      {"bulgaria", "sofia", ".bg"},
			"Europe":        {"germany", "france", "spain", "uk", "poland", "netherlands", ".de", ".fr", ".es", ".uk", ".pl", ".nl"},
			"North America": {"usa", "united states", "canada", "mexico", ".us", ".ca", ".mx"},
		},
		CustomerType: map[model.CustomerType][]string{
			model.CustomerTypeEPC:         {"epc", "engineering procurement", "turnkey", "lump sum", "integrator", "system integrator"},
			model.CustomerTypeOEM:         {"oem", "original equipment manufacturer", "machine builder", "skid"},
			model.CustomerTypeEndUser:     {"plant", "factory", "manufacturer", "processing", "production"},
			model.CustomerTypeDistributor: {"distributor", "channel partner", "reseller", "dealer"},
		},
		Competitors: []string{"busch", "edwards", "atlas copco", "pfeiffer", "leybold", "ingersoll rand", "gardner denver"},
	}
}
