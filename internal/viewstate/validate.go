package viewstate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// formInput is the subset of the form that gates submission
type formInput struct {
	Name        string `validate:"required"`
	HasRegions  bool
	RegionCount int    `validate:"required_if=HasRegions true"`
	CountryCode string `validate:"omitempty,iso3166_1_alpha2"`
}

func validateForm(s FormState) error {
	return validate.Struct(formInput{
		Name:        strings.TrimSpace(s.Name),
		HasRegions:  s.Format.HasRegions(),
		RegionCount: len(s.Regions),
		CountryCode: s.SelectedCountry.Code,
	})
}

// isWebURL reports whether text is an absolute http(s) URL
func isWebURL(text string) bool {
	return validate.Var(strings.TrimSpace(text), "required,http_url") == nil
}
