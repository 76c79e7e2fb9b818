package viewstate

import "github.com/mmcdole/disctrackr/internal/domain"

// FormRegion is a region choice offered by the disc form. DVD and Blu-ray
// regions share one list; each belongs to exactly one format.
type FormRegion int

const (
	RegionZero FormRegion = iota // DVD region free
	RegionOne
	RegionTwo
	RegionThree
	RegionFour
	RegionFive
	RegionSix
	RegionAll // Blu-ray region free
	RegionA
	RegionB
	RegionC
)

var dvdFormRegions = []FormRegion{RegionZero, RegionOne, RegionTwo, RegionThree, RegionFour, RegionFive, RegionSix}
var bluRayFormRegions = []FormRegion{RegionAll, RegionA, RegionB, RegionC}

// RegionsFor lists the choices for a format, region free first
func RegionsFor(kind domain.FormatKind) []FormRegion {
	switch kind {
	case domain.FormatDVD:
		return dvdFormRegions
	case domain.FormatBluRay:
		return bluRayFormRegions
	default:
		return nil
	}
}

// Kind is the format the region belongs to
func (r FormRegion) Kind() domain.FormatKind {
	if r >= RegionZero && r <= RegionSix {
		return domain.FormatDVD
	}
	return domain.FormatBluRay
}

// IsAll reports whether the region means region free
func (r FormRegion) IsAll() bool {
	return r == RegionZero || r == RegionAll
}

// Label is the text shown on the region toggle
func (r FormRegion) Label() string {
	if d, ok := r.dvd(); ok {
		return d.Label()
	}
	b, _ := r.bluRay()
	return b.Label()
}

func (r FormRegion) dvd() (domain.DVDRegion, bool) {
	if r.Kind() != domain.FormatDVD {
		return 0, false
	}
	return domain.DVDRegion(r - RegionZero), true
}

func (r FormRegion) bluRay() (domain.BluRayRegion, bool) {
	if r.Kind() != domain.FormatBluRay {
		return 0, false
	}
	return domain.BluRayRegion(r - RegionAll), true
}

// formatFromRegions builds the domain format, dropping regions of other formats
func formatFromRegions(kind domain.FormatKind, regions []FormRegion) domain.Format {
	switch kind {
	case domain.FormatDVD:
		var out []domain.DVDRegion
		for _, r := range regions {
			if d, ok := r.dvd(); ok {
				out = append(out, d)
			}
		}
		return domain.NewDVD(out...)
	case domain.FormatBluRay:
		var out []domain.BluRayRegion
		for _, r := range regions {
			if b, ok := r.bluRay(); ok {
				out = append(out, b)
			}
		}
		return domain.NewBluRay(out...)
	default:
		return domain.UHD{}
	}
}

// regionsFromFormat is the inverse of formatFromRegions
func regionsFromFormat(f domain.Format) []FormRegion {
	var out []FormRegion
	switch f := f.(type) {
	case domain.DVD:
		for _, r := range f.Regions {
			out = append(out, RegionZero+FormRegion(r))
		}
	case domain.BluRay:
		for _, r := range f.Regions {
			out = append(out, RegionAll+FormRegion(r))
		}
	}
	return out
}
