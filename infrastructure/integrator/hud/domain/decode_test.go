package domain

import (
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFairMarketRent(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, got [5]null.Float, county, metro string, smallArea bool)
	}{
		{
			name: "nested basicdata object",
			body: `{"data":{"county_name":"Travis County","metro_name":"Austin-Round Rock, TX MSA","year":"2025","smallarea_status":"0",
				"basicdata":{"zip_code":"MSA level","Efficiency":1380,"One-Bedroom":1505,"Two-Bedroom":1782,"Three-Bedroom":2238,"Four-Bedroom":2668}}}`,
			validate: func(t *testing.T, got [5]null.Float, county, metro string, smallArea bool) {
				assert.Equal(t, 1782.0, got[2].Float64)
				assert.Equal(t, "Travis County", county)
				assert.Equal(t, "Austin-Round Rock, TX MSA", metro)
				assert.False(t, smallArea)
			},
		},
		{
			name: "nested basicdata list picks the zip",
			body: `{"data":{"areaname":"Denver-Aurora, CO HUD Metro FMR Area","year":2025,"smallarea_status":"1","basicdata":[
				{"zip_code":"80201","Efficiency":"1500","One-Bedroom":"1700","Two-Bedroom":"2100","Three-Bedroom":"2800","Four-Bedroom":"3200"},
				{"zip_code":"80202","Efficiency":"1600","One-Bedroom":"1800","Two-Bedroom":"2200","Three-Bedroom":"2900","Four-Bedroom":"3300"}]}}`,
			validate: func(t *testing.T, got [5]null.Float, county, metro string, smallArea bool) {
				assert.Equal(t, 2200.0, got[2].Float64)
				assert.Equal(t, "Denver-Aurora, CO HUD Metro FMR Area", county)
				assert.Equal(t, county, metro)
				assert.True(t, smallArea)
			},
		},
		{
			name: "flat edition",
			body: `{"data":{"county_name":"Kent County","year":"2024","Efficiency":900,"One-Bedroom":1000,"Two-Bedroom":1250,"Three-Bedroom":null,"Four-Bedroom":1900}}`,
			validate: func(t *testing.T, got [5]null.Float, county, metro string, smallArea bool) {
				assert.Equal(t, 1250.0, got[2].Float64)
				assert.False(t, got[3].Valid)
				assert.Equal(t, "", metro)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmr, err := DecodeFairMarketRent("80202", []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, "80202", fmr.Zip)
			assert.NotEmpty(t, fmr.Year)
			tt.validate(t, fmr.Rents, fmr.CountyName, fmr.MetroName, fmr.SmallArea)
		})
	}
}

func TestDecodeFairMarketRentWithoutData(t *testing.T) {
	_, err := DecodeFairMarketRent("00000", []byte(`{"error":"not found"}`))
	assert.Error(t, err)

	_, err = DecodeFairMarketRent("00000", []byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeIncomeLimits(t *testing.T) {
	body := `{"data":{"area_name":"Austin","year":"2025","median_income":126000,
		"very_low":{"il50_p1":"44100","il50_p2":"50400","il50_p8":"83150"},
		"extremely_low":{"il30_p1":26500,"il30_p4":37800},
		"low":{"il80_p1":70600,"bogus":1}}}`

	il, err := DecodeIncomeLimits("78701", []byte(body))

	require.NoError(t, err)
	assert.Equal(t, 126000.0, il.MedianIncome.Float64)
	assert.Equal(t, 44100.0, il.VeryLow[0].Float64)
	assert.Equal(t, 83150.0, il.VeryLow[7].Float64)
	assert.False(t, il.VeryLow[3].Valid)
	assert.Equal(t, 37800.0, il.ExtremelyLow[3].Float64)
	assert.Equal(t, 70600.0, il.Low[0].Float64)
}

func TestDecodeIncomeLimitsMedianAlias(t *testing.T) {
	il, err := DecodeIncomeLimits("78701", []byte(`{"data":{"median":"98000"}}`))

	require.NoError(t, err)
	assert.Equal(t, 98000.0, il.MedianIncome.Float64)
}
