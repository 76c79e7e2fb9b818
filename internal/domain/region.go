package domain

import "strings"

// DVDRegion is a DVD playback region. DVDRegionAll means region free.
type DVDRegion int

const (
	DVDRegionAll DVDRegion = iota
	DVDRegionOne
	DVDRegionTwo
	DVDRegionThree
	DVDRegionFour
	DVDRegionFive
	DVDRegionSix
)

// DVDRegions lists every DVD region in enumeration order
var DVDRegions = []DVDRegion{
	DVDRegionAll, DVDRegionOne, DVDRegionTwo, DVDRegionThree,
	DVDRegionFour, DVDRegionFive, DVDRegionSix,
}

var dvdRegionTokens = [...]string{"all", "one", "two", "three", "four", "five", "six"}

// Token is the lowercase name persisted for this region
func (r DVDRegion) Token() string {
	if r < 0 || int(r) >= len(dvdRegionTokens) {
		return ""
	}
	return dvdRegionTokens[r]
}

// Label is the short display form: "0" for region free, then "1" to "6"
func (r DVDRegion) Label() string {
	if r < 0 || int(r) >= len(dvdRegionTokens) {
		return "?"
	}
	return string(rune('0' + int(r)))
}

func (r DVDRegion) String() string {
	return strings.ToUpper(r.Token())
}

// BluRayRegion is a Blu-ray playback region. BluRayRegionAll means region free.
type BluRayRegion int

const (
	BluRayRegionAll BluRayRegion = iota
	BluRayRegionA
	BluRayRegionB
	BluRayRegionC
)

// BluRayRegions lists every Blu-ray region in enumeration order
var BluRayRegions = []BluRayRegion{BluRayRegionAll, BluRayRegionA, BluRayRegionB, BluRayRegionC}

var bluRayRegionTokens = [...]string{"all", "a", "b", "c"}

// Token is the lowercase name persisted for this region
func (r BluRayRegion) Token() string {
	if r < 0 || int(r) >= len(bluRayRegionTokens) {
		return ""
	}
	return bluRayRegionTokens[r]
}

// Label is the display form: "ALL", "A", "B" or "C"
func (r BluRayRegion) Label() string {
	if r < 0 || int(r) >= len(bluRayRegionTokens) {
		return "?"
	}
	return strings.ToUpper(bluRayRegionTokens[r])
}

func (r BluRayRegion) String() string {
	return r.Label()
}
