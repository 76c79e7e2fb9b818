package store

import (
	"testing"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDVDFormats returns every DVD whose regions hold the region invariant:
// empty, region free, or a proper subset of the specific regions.
func validDVDFormats() []domain.Format {
	specific := domain.DVDRegions[1:]
	formats := []domain.Format{domain.NewDVD(), domain.NewDVD(domain.DVDRegionAll)}
	for mask := 1; mask < (1<<len(specific))-1; mask++ {
		var regions []domain.DVDRegion
		for i, r := range specific {
			if mask&(1<<i) != 0 {
				regions = append(regions, r)
			}
		}
		formats = append(formats, domain.NewDVD(regions...))
	}
	return formats
}

func validBluRayFormats() []domain.Format {
	specific := domain.BluRayRegions[1:]
	formats := []domain.Format{domain.NewBluRay(), domain.NewBluRay(domain.BluRayRegionAll)}
	for mask := 1; mask < (1<<len(specific))-1; mask++ {
		var regions []domain.BluRayRegion
		for i, r := range specific {
			if mask&(1<<i) != 0 {
				regions = append(regions, r)
			}
		}
		formats = append(formats, domain.NewBluRay(regions...))
	}
	return formats
}

func TestCodec_RoundTrip(t *testing.T) {
	formats := append(validDVDFormats(), validBluRayFormats()...)
	formats = append(formats, domain.UHD{})
	require.Len(t, formats, (2+62)+(2+6)+1)

	for _, f := range formats {
		discriminator, region, err := EncodeFormat(f)
		require.NoError(t, err)

		got, err := DecodeFormat(discriminator, region)
		require.NoError(t, err)
		assert.Equal(t, f, got, "round trip of %s", domain.FormatLabel(f))
	}
}

func TestCodec_Encode(t *testing.T) {
	tests := []struct {
		name          string
		format        domain.Format
		discriminator string
		region        *string
	}{
		{"dvd in enumeration order", domain.DVD{Regions: []domain.DVDRegion{domain.DVDRegionThree, domain.DVDRegionOne}}, "dvd", strPtrAlways("one,three")},
		{"dvd region free", domain.NewDVD(domain.DVDRegionAll), "dvd", strPtrAlways("all")},
		{"dvd empty", domain.NewDVD(), "dvd", strPtrAlways("")},
		{"bluray", domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionB), "br", strPtrAlways("a,b")},
		{"bluray region free", domain.NewBluRay(domain.BluRayRegionAll), "br", strPtrAlways("all")},
		{"bluray empty", domain.NewBluRay(), "br", strPtrAlways("")},
		{"uhd", domain.UHD{}, "uhd", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discriminator, region, err := EncodeFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.discriminator, discriminator)
			assert.Equal(t, tt.region, region)
		})
	}
}

func TestCodec_EncodeRejectsNil(t *testing.T) {
	_, _, err := EncodeFormat(nil)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestCodec_DecodeCollapses(t *testing.T) {
	tests := []struct {
		name          string
		discriminator string
		region        string
		want          domain.Format
	}{
		{"dvd every specific region", "dvd", "one,two,three,four,five,six", domain.NewDVD(domain.DVDRegionAll)},
		{"dvd all with others", "dvd", "all,one", domain.NewDVD(domain.DVDRegionAll)},
		{"bluray every specific region", "br", "a,b,c", domain.NewBluRay(domain.BluRayRegionAll)},
		{"bluray all with others", "br", "c,all", domain.NewBluRay(domain.BluRayRegionAll)},
		{"bluray duplicates are not every region", "br", "a,a,b", domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionB)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFormat(tt.discriminator, &tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodec_DecodeEmpty(t *testing.T) {
	empty := ""

	got, err := DecodeFormat("dvd", &empty)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDVD(), got)

	got, err = DecodeFormat("dvd", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDVD(), got)

	got, err = DecodeFormat("br", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NewBluRay(), got)
}

func TestCodec_DecodeIsLenient(t *testing.T) {
	region := "A,zz,C"
	got, err := DecodeFormat("br", &region)
	require.NoError(t, err)
	assert.Equal(t, domain.NewBluRay(domain.BluRayRegionA, domain.BluRayRegionC), got)

	region = "TWO,bogus"
	got, err = DecodeFormat("dvd", &region)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDVD(domain.DVDRegionTwo), got)
}

func TestCodec_UHDIgnoresRegion(t *testing.T) {
	region := "a,b"
	got, err := DecodeFormat("uhd", &region)
	require.NoError(t, err)
	assert.Equal(t, domain.UHD{}, got)
}

func TestCodec_UnknownDiscriminatorIsCorrupt(t *testing.T) {
	for _, discriminator := range []string{"vhs", "", "DVD"} {
		_, err := DecodeFormat(discriminator, nil)
		assert.ErrorIs(t, err, domain.ErrCorruptRow, discriminator)
	}
}

func strPtrAlways(s string) *string {
	return &s
}
