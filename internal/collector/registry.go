package collector

// stores is the fixed registry of targeted locations. Static configuration,
// created once and never mutated.
var stores = []Store{
	{
		Slug:       "walmart-st-jerome",
		Name:       "Walmart Saint-Jérôme Supercentre",
		City:       "Saint-Jérôme",
		PostalCode: "J7Y5K2",
		StoreID:    "3126",
	},
	{
		Slug:       "walmart-blainville",
		Name:       "Walmart Blainville Supercentre",
		City:       "Blainville",
		PostalCode: "J7C0M8",
		StoreID:    "3125",
	},
}

// Stores returns a copy of the full fixed store registry.
func Stores() []Store {
	out := make([]Store, len(stores))
	copy(out, stores)
	return out
}

// FilterStores returns the registry entries whose slug appears in slugs,
// preserving registry order. Unknown slugs are silently excluded; an empty
// filter, or one matching nothing, yields the full list.
func FilterStores(slugs []string) []Store {
	if len(slugs) == 0 {
		return Stores()
	}
	wanted := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		wanted[s] = struct{}{}
	}
	var out []Store
	for _, st := range stores {
		if _, ok := wanted[st.Slug]; ok {
			out = append(out, st)
		}
	}
	if len(out) == 0 {
		return Stores()
	}
	return out
}
