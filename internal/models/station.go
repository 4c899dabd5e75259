package models

// ParkingFree is the raw free-parking code stored per station.
type ParkingFree string

const (
	ParkingFreeYes     ParkingFree = "Y"
	ParkingFreeNo      ParkingFree = "N"
	ParkingFreeUnknown ParkingFree = ""
)

// Station is an EV charging location. Only stations with numeric coordinates are ever constructed.
type Station struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	ParkingFree      ParkingFree `json:"parking_free"`
	ParkingFreeLabel string      `json:"parking_free_label,omitempty"`
	SubRegionCode    string      `json:"sub_region_code"`
}

// StationTables bundles the three tables the station page reads.
type StationTables struct {
	Regions       []Region       `json:"regions"`
	RegionDetails []RegionDetail `json:"region_details"`
	Stations      []Station      `json:"stations"`
}
