package repository

import (
	"context"
	"fmt"
	"testing"

	"evstat-api/internal/models"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_ListRegistrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT \\* FROM tbl_register").
		WillReturnRows(pgxmock.NewRows([]string{"year", "seoul", "busan", "total"}).
			AddRow(int64(2011), int64(150), int64(80), int64(230)).
			AddRow(int64(2010), int64(100), int64(50), nil))

	records, err := repo.ListRegistrations(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 2011, records[0].Year)
	assert.Equal(t, map[string]int64{"seoul": 150, "busan": 80}, records[0].Counts)
	require.NotNil(t, records[0].Total)
	assert.Equal(t, int64(230), *records[0].Total)
	assert.Nil(t, records[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRegistrations_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("SELECT \\* FROM tbl_register").
		WillReturnError(fmt.Errorf("connection refused"))

	_, err = repo.ListRegistrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registrations query")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRegions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("COALESCE\\(regionNm").
		WillReturnRows(pgxmock.NewRows([]string{"zcode", "regionnm"}).
			AddRow("11", "서울특별시").
			AddRow("26", "부산광역시"))

	regions, err := repo.ListRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Region{
		{Code: "11", Name: "서울특별시"},
		{Code: "26", Name: "부산광역시"},
	}, regions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListRegionDetails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("SELECT .+ FROM tbl_region_detail").
		WillReturnRows(pgxmock.NewRows([]string{"zscode", "regiondetailnm", "zcode"}).
			AddRow("11110", "종로구", "11"))

	details, err := repo.ListRegionDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RegionDetail{{Code: "11110", Name: "종로구", RegionCode: "11"}}, details)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListStations_DropsUnmappable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("SELECT .+ FROM tbl_station").
		WillReturnRows(pgxmock.NewRows([]string{"statid", "statnm", "addr", "lat", "lng", "parkingfree", "zscode"}).
			AddRow("ST1", "종로구청", "서울 종로구 삼봉로 43", "37.5735", "126.9790", "Y", "11110").
			AddRow("ST2", "좌표없음", "서울 종로구", "N/A", "126.9", "N", "11110").
			AddRow("ST3", "해운대", "부산 해운대구", "35.1631", "129.1635", "", "26350"))

	stations, err := repo.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "ST1", stations[0].ID)
	assert.Equal(t, models.ParkingFreeYes, stations[0].ParkingFree)
	assert.Equal(t, "ST3", stations[1].ID)
	assert.Equal(t, models.ParkingFreeUnknown, stations[1].ParkingFree)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListStations_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("SELECT .+ FROM tbl_station").
		WillReturnError(fmt.Errorf("timeout"))

	_, err = repo.ListStations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stations query")
}
