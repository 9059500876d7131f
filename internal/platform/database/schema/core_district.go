package schema

// DistrictTable represents the 'core.district' table
type DistrictTable struct {
	Table string
	ID    string
	Sido  string
	Sgg   string
	Emd   string
	X     string
	Y     string
}

// District is the schema definition for core.district
var District = DistrictTable{
	Table: "core.district",
	ID:    "id",
	Sido:  "sido",
	Sgg:   "sgg",
	Emd:   "emd",
	X:     "x",
	Y:     "y",
}
