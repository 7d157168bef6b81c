package aggregating

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// HousingQuery is the caller input for the housing dashboard. An empty zip
// skips the local HUD figures.
type HousingQuery struct {
	Zip string `validate:"omitempty,len=5,numeric"`
}

func (q HousingQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return errors.Wrapf(ErrInvalidZip, "zip %q", q.Zip)
	}
	return nil
}
