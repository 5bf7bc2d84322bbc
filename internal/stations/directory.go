package stations

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Station is one entry of the static station directory.
type Station struct {
	ID          string `yaml:"id" json:"id"`
	MetadataKey string `yaml:"metadata_key" json:"metadata_key"` // external feed alias
	Name        string `yaml:"name" json:"name"`
	AccentColor string `yaml:"accent_color" json:"accent_color"`
}

// Directory resolves station identity. A station can be referenced either by
// its own id or by the metadata key the external show feed uses; both resolve
// to the same entry.
type Directory struct {
	stations []Station
	byRef    map[string]*Station
}

// New builds a Directory from a fixed station list.
func New(list []Station) *Directory {
	d := &Directory{
		stations: list,
		byRef:    make(map[string]*Station),
	}
	for i := range d.stations {
		st := &d.stations[i]
		d.byRef[st.ID] = st
		if st.MetadataKey != "" {
			d.byRef[st.MetadataKey] = st
		}
	}
	return d
}

// Load reads the station directory from a YAML file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg struct {
		Stations []Station `yaml:"stations"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return New(cfg.Stations), nil
}

// Resolve returns the station for an id or metadata key, or nil.
func (d *Directory) Resolve(ref string) *Station {
	if ref == "" {
		return nil
	}
	return d.byRef[ref]
}

// SameStation reports whether two references point at the same station,
// treating a station's id and its metadata key as equivalent. Unknown
// references only match themselves.
func (d *Directory) SameStation(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	sa, sb := d.Resolve(a), d.Resolve(b)
	if sa != nil && sb != nil {
		return sa.ID == sb.ID
	}
	return a == b
}

// All returns the directory entries in declaration order.
func (d *Directory) All() []Station {
	return d.stations
}
