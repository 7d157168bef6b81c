package aggregating

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogFile []byte

const (
	DashboardEconomy  = "economy"
	DashboardSummary  = "summary"
	DashboardHousing  = "housing"
	DashboardTreasury = "treasury"
	DashboardPrices   = "prices"
)

// Dashboards lists every dashboard the service can assemble.
var Dashboards = []string{DashboardEconomy, DashboardSummary, DashboardHousing, DashboardTreasury, DashboardPrices}

type Source string

const (
	SourceFRED Source = "fred"
	SourceEIA  Source = "eia"
)

const (
	GroupFood = "food"
	GroupGas  = "gas"
)

// SeriesSpec names one series a dashboard needs. Name, Icon, Unit and Group
// are only used by the price dashboard.
type SeriesSpec struct {
	Key    string `yaml:"key" validate:"required"`
	Source Source `yaml:"source" validate:"oneof=fred eia"`
	ID     string `yaml:"id" validate:"required"`
	Limit  int    `yaml:"limit" validate:"gt=0"`
	Group  string `yaml:"group"`
	Name   string `yaml:"name"`
	Icon   string `yaml:"icon"`
	Unit   string `yaml:"unit"`
}

// Catalog maps a dashboard name to the series it is assembled from.
type Catalog map[string][]SeriesSpec

func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(catalogFile)
}

func LoadCatalog(raw []byte) (Catalog, error) {
	catalog := Catalog{}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.Wrap(err, "catalog: parse")
	}

	validate := validator.New()
	for dashboard, specs := range catalog {
		seen := make(map[string]struct{}, len(specs))
		for i, spec := range specs {
			if err := validate.Struct(spec); err != nil {
				return nil, errors.Wrapf(err, "catalog: %s[%d]", dashboard, i)
			}
			if _, dup := seen[spec.Key]; dup {
				return nil, fmt.Errorf("catalog: %s: duplicate key %q", dashboard, spec.Key)
			}
			seen[spec.Key] = struct{}{}
		}
	}

	return catalog, nil
}

// Dashboard returns the series of one dashboard.
func (c Catalog) Dashboard(name string) ([]SeriesSpec, error) {
	specs, ok := c[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownDashboard, name)
	}
	return specs, nil
}
