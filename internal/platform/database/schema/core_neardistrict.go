package schema

// NearDistrictTable represents the 'core.neardistrict' table.
// Each row says: district DistrictID reaches (Sido, Sgg, Emd) within Radius.
type NearDistrictTable struct {
	Table      string
	ID         string
	DistrictID string
	Sido       string
	Sgg        string
	Emd        string
	Radius     string
}

// NearDistrict is the schema definition for core.neardistrict
var NearDistrict = NearDistrictTable{
	Table:      "core.neardistrict",
	ID:         "id",
	DistrictID: "districtid",
	Sido:       "sido",
	Sgg:        "sgg",
	Emd:        "emd",
	Radius:     "radius",
}
