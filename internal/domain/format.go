package domain

import (
	"slices"
	"strings"
)

// FormatKind identifies a format family without its regions
type FormatKind int

const (
	FormatAny FormatKind = iota // no format selected
	FormatDVD
	FormatBluRay
	FormatUHD
)

// FormatKinds lists every concrete format family
var FormatKinds = []FormatKind{FormatDVD, FormatBluRay, FormatUHD}

func (k FormatKind) String() string {
	switch k {
	case FormatDVD:
		return "DVD"
	case FormatBluRay:
		return "Blu-ray"
	case FormatUHD:
		return "UHD"
	default:
		return "Any"
	}
}

// HasRegions reports whether discs of this family carry region codes
func (k FormatKind) HasRegions() bool {
	return k == FormatDVD || k == FormatBluRay
}

// Format is the closed set of disc formats: DVD, BluRay and UHD.
// Only this package can add implementations.
type Format interface {
	Kind() FormatKind
	isFormat()
}

// DVD is a DVD with its playback regions
type DVD struct {
	Regions []DVDRegion
}

// BluRay is a Blu-ray with its playback regions
type BluRay struct {
	Regions []BluRayRegion
}

// UHD is a 4K Blu-ray. UHD discs are region free.
type UHD struct{}

func (DVD) Kind() FormatKind    { return FormatDVD }
func (BluRay) Kind() FormatKind { return FormatBluRay }
func (UHD) Kind() FormatKind    { return FormatUHD }

func (DVD) isFormat()    {}
func (BluRay) isFormat() {}
func (UHD) isFormat()    {}

// NewDVD returns a DVD whose regions are deduplicated and in enumeration order.
// A set holding region free, or every specific region, becomes region free.
func NewDVD(regions ...DVDRegion) DVD {
	return DVD{Regions: canonicalRegions(regions, DVDRegionAll, len(DVDRegions)-1)}
}

// NewBluRay returns a BluRay whose regions follow the same rules as NewDVD
func NewBluRay(regions ...BluRayRegion) BluRay {
	return BluRay{Regions: canonicalRegions(regions, BluRayRegionAll, len(BluRayRegions)-1)}
}

// NewFormat returns an empty-region format of the given family
func NewFormat(kind FormatKind) (Format, error) {
	switch kind {
	case FormatDVD:
		return DVD{}, nil
	case FormatBluRay:
		return BluRay{}, nil
	case FormatUHD:
		return UHD{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// RegionLabels returns display labels for a format's regions, in order
func RegionLabels(f Format) []string {
	var labels []string
	switch f := f.(type) {
	case DVD:
		for _, r := range f.Regions {
			labels = append(labels, r.Label())
		}
	case BluRay:
		for _, r := range f.Regions {
			labels = append(labels, r.Label())
		}
	}
	return labels
}

// FormatLabel renders a format with its regions, e.g. "Blu-ray (A, B)"
func FormatLabel(f Format) string {
	if f == nil {
		return ""
	}
	labels := RegionLabels(f)
	if len(labels) == 0 {
		return f.Kind().String()
	}
	return f.Kind().String() + " (" + strings.Join(labels, ", ") + ")"
}

// canonicalRegions sorts and deduplicates regions, collapsing to {all} when
// all is present or every one of the specific regions is
func canonicalRegions[R ~int](regions []R, all R, specific int) []R {
	if len(regions) == 0 {
		return nil
	}
	if slices.Contains(regions, all) {
		return []R{all}
	}
	out := slices.Clone(regions)
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == specific {
		return []R{all}
	}
	return out
}
