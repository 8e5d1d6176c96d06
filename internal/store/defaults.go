package store

import "fjacquet/ccs-extract/internal/models"

// DefaultMerchantPatterns returns the built-in merchant normalization table.
// Order matters: the normalizer stops at the first match, so the specific
// franchise patterns must stay ahead of the generic keyword patterns at the
// bottom. Patterns are matched case-insensitively.
func DefaultMerchantPatterns() []models.MerchantPattern {
	return []models.MerchantPattern{
		// Major grocery chains
		{Pattern: `woolworths(?:\s+supermarket)?|woolies`, Normalized: "Woolworths"},
		{Pattern: `coles(?:\s+supermarket)?`, Normalized: "Coles"},
		{Pattern: `aldi(?:\s+store)?`, Normalized: "Aldi"},
		{Pattern: `iga`, Normalized: "IGA"},
		{Pattern: `nestle|nestlé|nestleau|nestleaust`, Normalized: "Nestlé Australia"},

		// Major fuel stations
		{Pattern: `7-eleven|7 eleven|-eleven`, Normalized: "7-Eleven"},
		{Pattern: `bp|british petroleum`, Normalized: "BP"},
		{Pattern: `shell`, Normalized: "Shell"},
		{Pattern: `caltex`, Normalized: "Caltex"},
		{Pattern: `united petroleum`, Normalized: "United Petroleum"},

		// Major retail chains
		{Pattern: `bunnings|bunnings warehouse`, Normalized: "Bunnings Warehouse"},
		{Pattern: `jb hi-fi|jb hifi|jbhifi|jb hi fi`, Normalized: "JB Hi-Fi"},
		{Pattern: `harvey norman|harveynorman`, Normalized: "Harvey Norman"},
		{Pattern: `the good guys|good guys`, Normalized: "The Good Guys"},
		{Pattern: `officeworks`, Normalized: "Officeworks"},
		{Pattern: `kmart`, Normalized: "Kmart"},
		{Pattern: `target`, Normalized: "Target"},
		{Pattern: `big w`, Normalized: "Big W"},
		{Pattern: `david jones`, Normalized: "David Jones"},
		{Pattern: `myer`, Normalized: "Myer"},

		// Major utilities
		{Pattern: `origin energy`, Normalized: "Origin Energy"},
		{Pattern: `agl`, Normalized: "AGL"},
		{Pattern: `telstra`, Normalized: "Telstra"},
		{Pattern: `optus`, Normalized: "Optus"},

		// Major insurance companies
		{Pattern: `budget direct`, Normalized: "Budget Direct"},
		{Pattern: `nrma`, Normalized: "NRMA"},
		{Pattern: `racq`, Normalized: "RACQ"},
		{Pattern: `racv`, Normalized: "RACV"},
		{Pattern: `aami`, Normalized: "AAMI"},

		// Major restaurants and cafes
		{Pattern: `soul\s*origin`, Normalized: "Soul Origin"},
		{Pattern: `sushi\s*sushi`, Normalized: "Sushi Sushi"},
		{Pattern: `subway`, Normalized: "Subway"},

		// Generic patterns
		{Pattern: `supermarket`, Normalized: "Generic Supermarket"},
		{Pattern: `restaurant|dining`, Normalized: "Restaurant"},
		{Pattern: `cafe|coffee`, Normalized: "Cafe"},
		{Pattern: `pub|tavern`, Normalized: "Pub"},
		{Pattern: `pharmacy|chemist`, Normalized: "Pharmacy"},
		{Pattern: `doctor|medical`, Normalized: "Medical"},
		{Pattern: `school|college|university|tafe`, Normalized: "Educational Institution"},
	}
}

// DefaultCategories returns the built-in category keyword table in its
// declared order. The keyword categorizer returns the first category with a
// matching keyword, so this order is part of the categorization contract.
// "Other" is the terminal fallback and never matches by keyword.
func DefaultCategories() models.CategoryList {
	return models.CategoryList{
		{Name: "Groceries", Keywords: []string{"woolworths", "coles", "aldi", "iga", "supermarket", "foodworks", "nestle", "nestlé", "nestleau", "nestleaust"}},
		{Name: "Dining", Keywords: []string{"restaurant", "cafe", "coffee", "pub", "tavern", "bistro", "soul origin", "sushi sushi", "subway"}},
		{Name: "Transport", Keywords: []string{"uber", "taxi", "cab", "translink", "go card", "train", "bus", "parking"}},
		{Name: "Entertainment", Keywords: []string{"netflix", "spotify", "cinema", "movie", "theatre"}},
		{Name: "Shopping", Keywords: []string{"amazon", "ebay", "target", "kmart", "big w", "david jones", "myer", "bunnings", "jb hi-fi", "harvey norman", "officeworks"}},
		{Name: "Utilities", Keywords: []string{"origin energy", "agl", "telstra", "optus", "electricity", "water", "gas"}},
		{Name: "Health", Keywords: []string{"pharmacy", "chemist", "medical", "doctor", "dental"}},
		{Name: "Education", Keywords: []string{"university", "school", "college", "tafe", "course"}},
		{Name: "Insurance", Keywords: []string{"insurance", "budget direct", "nrma", "racq", "racv", "aami"}},
		{Name: "Fuel", Keywords: []string{"7-eleven", "bp", "shell", "caltex", "united petroleum", "petrol", "service station"}},
		{Name: "Holiday", Keywords: []string{"hotel", "motel", "resort", "vacation", "holiday", "accommodation"}},
		{Name: models.DefaultCategory, Keywords: []string{}},
	}
}
