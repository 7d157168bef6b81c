package domain

import appdomain "github.com/vfg2006/econ-pulse-api/internal/domain"

// DataResponse is the v2 envelope of a petroleum price query.
type DataResponse struct {
	Response struct {
		Total     appdomain.FlexString `json:"total"`
		Frequency string               `json:"frequency"`
		Data      []PriceRecord        `json:"data"`
	} `json:"response"`
}

// PriceRecord is one weekly retail price. EIA sends the value as a number or
// as a string depending on the route.
type PriceRecord struct {
	Period      string               `json:"period"`
	DuoArea     string               `json:"duoarea"`
	Product     string               `json:"product"`
	ProductName string               `json:"product-name"`
	Value       appdomain.FlexString `json:"value"`
	Units       string               `json:"units"`
}

// Observations maps the records onto the common observation shape.
func (r DataResponse) Observations() []appdomain.Observation {
	out := make([]appdomain.Observation, 0, len(r.Response.Data))
	for _, record := range r.Response.Data {
		value := record.Value.String()
		if value == "" {
			value = appdomain.MissingValue
		}
		out = append(out, appdomain.Observation{Date: record.Period, Value: value})
	}
	return out
}
