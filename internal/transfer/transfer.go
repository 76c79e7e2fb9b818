// Package transfer reads and writes the catalogue as a YAML document.
package transfer

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mmcdole/disctrackr/internal/domain"
	"github.com/mmcdole/disctrackr/internal/store"
)

// Version is the document version written by Export
const Version = 1

var ErrUnsupportedVersion = errors.New("unsupported catalogue version")

type document struct {
	Version int     `yaml:"version"`
	Discs   []entry `yaml:"discs"`
}

// entry carries the format the same way the database does: a family
// discriminator plus a comma-separated region column.
type entry struct {
	Title       string  `yaml:"title"`
	Format      string  `yaml:"format"`
	Region      *string `yaml:"region,omitempty"`
	Country     string  `yaml:"country,omitempty"`
	Distributor string  `yaml:"distributor,omitempty"`
	Year        int     `yaml:"year,omitempty"`
	ExternalID  string  `yaml:"external_id,omitempty"`
	ImageURL    string  `yaml:"image_url,omitempty"`
}

// Export writes discs to w. IDs are not exported.
func Export(w io.Writer, discs []domain.Disc) error {
	doc := document{Version: Version, Discs: make([]entry, 0, len(discs))}
	for _, d := range discs {
		disc, region, err := store.EncodeFormat(d.Format)
		if err != nil {
			return fmt.Errorf("disc %q: %w", d.Title, err)
		}
		doc.Discs = append(doc.Discs, entry{
			Title:       d.Title,
			Format:      disc,
			Region:      region,
			Country:     d.CountryCode,
			Distributor: d.Distributor,
			Year:        d.Year,
			ExternalID:  d.ExternalID,
			ImageURL:    d.ImageURL,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return enc.Close()
}

// Import reads a document written by Export. The returned discs are
// unsaved. Unknown fields are rejected.
func Import(r io.Reader) ([]domain.Disc, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	discs := make([]domain.Disc, 0, len(doc.Discs))
	for i, e := range doc.Discs {
		format, err := store.DecodeFormat(e.Format, e.Region)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		discs = append(discs, domain.Disc{
			Title:       e.Title,
			ImageURL:    e.ImageURL,
			Format:      format,
			CountryCode: e.Country,
			Distributor: e.Distributor,
			Year:        e.Year,
			ExternalID:  e.ExternalID,
		})
	}
	return discs, nil
}
