package domain

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"
	jsoniter "github.com/json-iterator/go"
	appdomain "github.com/vfg2006/econ-pulse-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HUD has shipped the FMR payload in more than one edition: bedroom rents
// either sit under a basicdata object (or a list of them, one per zip in a
// small area metro) or directly on data. Both are decoded here, once.
type fmrEdition int

const (
	editionFlat fmrEdition = iota
	editionNested
	editionNestedList
)

type envelope struct {
	Data jsoniter.RawMessage `json:"data"`
}

type bedroomRents struct {
	ZipCode      appdomain.FlexString `json:"zip_code"`
	Efficiency   appdomain.FlexFloat  `json:"Efficiency"`
	OneBedroom   appdomain.FlexFloat  `json:"One-Bedroom"`
	TwoBedroom   appdomain.FlexFloat  `json:"Two-Bedroom"`
	ThreeBedroom appdomain.FlexFloat  `json:"Three-Bedroom"`
	FourBedroom  appdomain.FlexFloat  `json:"Four-Bedroom"`
}

func (b bedroomRents) rents() [5]null.Float {
	return [5]null.Float{
		b.Efficiency.Float,
		b.OneBedroom.Float,
		b.TwoBedroom.Float,
		b.ThreeBedroom.Float,
		b.FourBedroom.Float,
	}
}

func (b bedroomRents) empty() bool {
	for _, r := range b.rents() {
		if r.Valid {
			return false
		}
	}
	return true
}

type fmrData struct {
	bedroomRents
	CountyName      string               `json:"county_name"`
	AreaName        string               `json:"areaname"`
	MetroName       string               `json:"metro_name"`
	Year            appdomain.FlexString `json:"year"`
	SmallAreaStatus appdomain.FlexString `json:"smallarea_status"`
	BasicData       jsoniter.RawMessage  `json:"basicdata"`
}

func classify(raw jsoniter.RawMessage) fmrEdition {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return editionFlat
	case trimmed[0] == '[':
		return editionNestedList
	default:
		return editionNested
	}
}

// DecodeFairMarketRent normalizes an FMR response for zip.
func DecodeFairMarketRent(zip string, body []byte) (*appdomain.FairMarketRent, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("hud: decode fmr envelope: %w", err)
	}
	if len(bytes.TrimSpace(env.Data)) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil, fmt.Errorf("hud: fmr response for %s has no data", zip)
	}

	var data fmrData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("hud: decode fmr data: %w", err)
	}

	rents := data.bedroomRents
	switch classify(data.BasicData) {
	case editionNested:
		var nested bedroomRents
		if err := json.Unmarshal(data.BasicData, &nested); err != nil {
			return nil, fmt.Errorf("hud: decode basicdata: %w", err)
		}
		if !nested.empty() {
			rents = nested
		}
	case editionNestedList:
		var list []bedroomRents
		if err := json.Unmarshal(data.BasicData, &list); err != nil {
			return nil, fmt.Errorf("hud: decode basicdata list: %w", err)
		}
		if picked, ok := pickZip(list, zip); ok {
			rents = picked
		}
	}

	return &appdomain.FairMarketRent{
		Zip:        zip,
		CountyName: firstNonEmpty(data.CountyName, data.AreaName),
		MetroName:  firstNonEmpty(data.MetroName, data.AreaName),
		Year:       data.Year.String(),
		Rents:      rents.rents(),
		SmallArea:  data.SmallAreaStatus.String() == "1",
	}, nil
}

func pickZip(list []bedroomRents, zip string) (bedroomRents, bool) {
	for _, entry := range list {
		if entry.ZipCode.String() == zip && !entry.empty() {
			return entry, true
		}
	}
	for _, entry := range list {
		if !entry.empty() {
			return entry, true
		}
	}
	return bedroomRents{}, false
}

type incomeData struct {
	AreaName     string                         `json:"area_name"`
	Year         appdomain.FlexString           `json:"year"`
	MedianIncome appdomain.FlexFloat            `json:"median_income"`
	Median       appdomain.FlexFloat            `json:"median"`
	VeryLow      map[string]appdomain.FlexFloat `json:"very_low"`
	ExtremelyLow map[string]appdomain.FlexFloat `json:"extremely_low"`
	Low          map[string]appdomain.FlexFloat `json:"low"`
}

// DecodeIncomeLimits normalizes an income limits response for zip. Household
// sizes are read from the "_pN" suffix of each key (il50_p1 ... il50_p8).
func DecodeIncomeLimits(zip string, body []byte) (*appdomain.IncomeLimits, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("hud: decode income limits envelope: %w", err)
	}
	if len(bytes.TrimSpace(env.Data)) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil, fmt.Errorf("hud: income limits response for %s has no data", zip)
	}

	var data incomeData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("hud: decode income limits data: %w", err)
	}

	median := data.MedianIncome.Float
	if !median.Valid {
		median = data.Median.Float
	}

	return &appdomain.IncomeLimits{
		Zip:          zip,
		Year:         data.Year.String(),
		MedianIncome: median,
		VeryLow:      byHouseholdSize(data.VeryLow),
		ExtremelyLow: byHouseholdSize(data.ExtremelyLow),
		Low:          byHouseholdSize(data.Low),
	}, nil
}

func byHouseholdSize(limits map[string]appdomain.FlexFloat) [8]null.Float {
	var out [8]null.Float

	keys := make([]string, 0, len(limits))
	for k := range limits {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		idx := strings.LastIndex(key, "_p")
		if idx < 0 {
			continue
		}
		size, err := strconv.Atoi(key[idx+2:])
		if err != nil || size < 1 || size > len(out) {
			continue
		}
		out[size-1] = limits[key].Float
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
