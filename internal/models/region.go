package models

// All is the wildcard selector value shown as the first option of both region controls.
const All = "전체"

// Region is a top-level administrative division (province or metropolitan city).
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegionDetail is an administrative subdivision belonging to exactly one Region.
type RegionDetail struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	RegionCode string `json:"region_code"`
}

// Selection is the pair of values picked in the cascading region controls.
type Selection struct {
	Region    string `json:"region"`
	SubRegion string `json:"sub_region"`
}

// SelectorOptions lists the choices of one region control.
type SelectorOptions struct {
	Options  []string `json:"options"`
	Disabled bool     `json:"disabled"`
}
