package service

import (
	"fmt"

	"evstat-api/internal/models"
	"evstat-api/internal/render"
)

// Whole-country camera used when nothing is left to center on.
const (
	FallbackLatitude  = 36.5
	FallbackLongitude = 127.5
	FallbackZoom      = 6
)

var zoomByScope = map[Scope]int{
	ScopeAll:          7,
	ScopeRegion:       11,
	ScopeRegionDetail: 13,
}

var radiusByScope = map[Scope]int{
	ScopeAll:          1000,
	ScopeRegion:       200,
	ScopeRegionDetail: 200,
}

var stationFill = [4]uint8{65, 105, 225, 150}

const tooltipHTML = "<b>충전소명:</b> {name}<br/><b>주소:</b> {address}<br/><b>주차무료여부:</b> {parking_free_label}"

// ViewFor centers the map on the mean position of stations, zoomed to the selection's scope.
func ViewFor(sel models.Selection, stations []models.Station) models.MapView {
	if len(stations) == 0 {
		return models.MapView{Latitude: FallbackLatitude, Longitude: FallbackLongitude, Zoom: FallbackZoom}
	}

	var lat, lng float64
	for _, s := range stations {
		lat += s.Latitude
		lng += s.Longitude
	}
	n := float64(len(stations))
	return models.MapView{
		Latitude:  lat / n,
		Longitude: lng / n,
		Zoom:      zoomByScope[ScopeOf(NormalizeSelection(sel))],
	}
}

// LayerFor sizes station markers: wide areas get large markers, narrow areas small ones.
func LayerFor(sel models.Selection) models.PointLayer {
	return models.PointLayer{
		Type:      "ScatterplotLayer",
		Radius:    radiusByScope[ScopeOf(NormalizeSelection(sel))],
		FillColor: stationFill,
		Pickable:  true,
	}
}

// BuildStationMap runs the whole station page: filter, camera, layer and summary text.
// It is a pure function of its inputs.
func BuildStationMap(sel models.Selection, t models.StationTables) models.StationMap {
	sel = NormalizeSelection(sel)
	stations := FilterStations(sel, t)

	return models.StationMap{
		Selection: sel,
		Stations:  stations,
		View:      ViewFor(sel, stations),
		Layer:     LayerFor(sel),
		Tooltip: models.Tooltip{
			HTML:            tooltipHTML,
			BackgroundColor: "steelblue",
			Color:           "white",
		},
		Summary: models.MapSummary{
			FilterLabel:  fmt.Sprintf("필터링 결과: %s %s", sel.Region, sel.SubRegion),
			StationCount: len(stations),
			CountLabel:   render.StationCountLabel(len(stations)),
		},
	}
}
