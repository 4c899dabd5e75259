package models

// MapView is the camera state handed to the map widget.
type MapView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Pitch     int     `json:"pitch"`
	Bearing   int     `json:"bearing"`
}

// PointLayer describes how station markers are drawn.
type PointLayer struct {
	Type      string   `json:"type"`
	Radius    int      `json:"radius"`
	FillColor [4]uint8 `json:"fill_color"`
	Pickable  bool     `json:"pickable"`
}

// Tooltip is the hover template for a station marker.
type Tooltip struct {
	HTML            string `json:"html"`
	BackgroundColor string `json:"background_color"`
	Color           string `json:"color"`
}

// MapSummary is the text shown above the map.
type MapSummary struct {
	FilterLabel  string `json:"filter_label"`
	StationCount int    `json:"station_count"`
	CountLabel   string `json:"count_label"`
}

// StationMap is the full output of the station page pipeline.
type StationMap struct {
	Selection Selection  `json:"selection"`
	Stations  []Station  `json:"stations"`
	View      MapView    `json:"view"`
	Layer     PointLayer `json:"layer"`
	Tooltip   Tooltip    `json:"tooltip"`
	Summary   MapSummary `json:"summary"`
}
