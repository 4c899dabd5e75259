package render

import (
	"evstat-api/internal/models"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// StationFeatures converts stations into a GeoJSON feature collection. Positions are [lng, lat].
func StationFeatures(stations []models.Station) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(stations))}
	if len(stations) == 0 {
		return fc
	}

	bounds := geom.NewBounds(geom.XY)
	for _, s := range stations {
		point := geom.NewPointFlat(geom.XY, []float64{s.Longitude, s.Latitude})
		bounds.Extend(point)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       s.ID,
			Geometry: point,
			Properties: map[string]interface{}{
				"name":               s.Name,
				"address":            s.Address,
				"parking_free":       string(s.ParkingFree),
				"parking_free_label": s.ParkingFreeLabel,
				"sub_region_code":    s.SubRegionCode,
			},
		})
	}
	fc.BBox = bounds
	return fc
}
