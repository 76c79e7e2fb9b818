package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mmcdole/disctrackr/internal/domain"
)

// EncodeFormat returns the discriminator and region column for a format.
// DVD and Blu-ray always produce a non-nil region, "" when no region is set.
// UHD produces a nil region.
func EncodeFormat(f domain.Format) (string, *string, error) {
	switch f := f.(type) {
	case domain.DVD:
		region := joinTokens(f.Regions, domain.DVDRegion.Token)
		return discriminatorDVD, &region, nil
	case domain.BluRay:
		region := joinTokens(f.Regions, domain.BluRayRegion.Token)
		return discriminatorBluRay, &region, nil
	case domain.UHD:
		return discriminatorUHD, nil, nil
	default:
		return "", nil, fmt.Errorf("%w: %T", domain.ErrUnknownFormat, f)
	}
}

// DecodeFormat rebuilds a format from its discriminator and region column.
// Unknown region tokens are dropped; the domain constructors collapse the
// rest. An unknown discriminator is reported as domain.ErrCorruptRow.
func DecodeFormat(discriminator string, region *string) (domain.Format, error) {
	switch discriminator {
	case discriminatorDVD:
		regions := decodeTokens(region, domain.DVDRegions, domain.DVDRegion.Token)
		return domain.NewDVD(regions...), nil
	case discriminatorBluRay:
		regions := decodeTokens(region, domain.BluRayRegions, domain.BluRayRegion.Token)
		return domain.NewBluRay(regions...), nil
	case discriminatorUHD:
		return domain.UHD{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format discriminator %q", domain.ErrCorruptRow, discriminator)
	}
}

// joinTokens joins region tokens in enumeration order
func joinTokens[R ~int](regions []R, token func(R) string) string {
	sorted := slices.Clone(regions)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	tokens := make([]string, 0, len(sorted))
	for _, r := range sorted {
		tokens = append(tokens, token(r))
	}
	return strings.Join(tokens, ",")
}

// decodeTokens matches comma separated tokens case-insensitively against the
// family's tokens, dropping anything unrecognised
func decodeTokens[R ~int](region *string, family []R, token func(R) string) []R {
	if region == nil || *region == "" {
		return nil
	}

	var regions []R
	for _, raw := range strings.Split(*region, ",") {
		for _, r := range family {
			if strings.EqualFold(raw, token(r)) {
				regions = append(regions, r)
				break
			}
		}
	}
	return regions
}
