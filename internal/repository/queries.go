package repository

// Fixed read-only statements. The pgx variants cast codes and coordinates to text
// so both drivers hand the boundary coercion the same shapes.
const (
	registrationsSQL = `SELECT * FROM tbl_register`

	regionsSQL       = `SELECT zcode, regionNm FROM tbl_region`
	regionDetailsSQL = `SELECT zscode, regionDetailNm, zcode FROM tbl_region_detail`
	stationsSQL      = `SELECT statid, statNm, addr, lat, lng, parkingFree, zscode FROM tbl_station`

	pgRegionsSQL = `
		SELECT COALESCE(zcode::text, ''), COALESCE(regionNm, '')
		FROM tbl_region
	`
	pgRegionDetailsSQL = `
		SELECT COALESCE(zscode::text, ''), COALESCE(regionDetailNm, ''), COALESCE(zcode::text, '')
		FROM tbl_region_detail
	`
	pgStationsSQL = `
		SELECT
			COALESCE(statid::text, ''),
			COALESCE(statNm, ''),
			COALESCE(addr, ''),
			COALESCE(lat::text, ''),
			COALESCE(lng::text, ''),
			COALESCE(parkingFree, ''),
			COALESCE(zscode::text, '')
		FROM tbl_station
	`
)
