package dataset

import (
	"os"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Manifest describes where a dataset lives and how to read it. Manifests are
// java-style .properties files with the keys dataset.name, dataset.path,
// dataset.target and dataset.delimiter.
type Manifest struct {
	Name      string
	Path      string
	Target    string
	Delimiter rune
}

// LoadManifest reads a dataset manifest from a .properties file.
func LoadManifest(path string) (Manifest, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "loading dataset manifest")
	}

	m := Manifest{
		Name:      p.GetString("dataset.name", ""),
		Path:      p.GetString("dataset.path", ""),
		Target:    p.GetString("dataset.target", ""),
		Delimiter: ',',
	}
	if d := p.GetString("dataset.delimiter", ""); len(d) > 0 {
		m.Delimiter = rune(d[0])
	}

	if len(m.Path) == 0 {
		return Manifest{}, errors.Errorf("manifest %s does not specify dataset.path", path)
	}
	if len(m.Target) == 0 {
		return Manifest{}, errors.Errorf("manifest %s does not specify dataset.target", path)
	}
	return m, nil
}

// Load opens the file the manifest points at and parses it.
func (m Manifest) Load() (Dataset, error) {
	f, err := os.OpenFile(m.Path, os.O_RDONLY, 0664)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "opening dataset %s", m.Path)
	}
	defer f.Close()
	return readCSV(f, m.Target, m.Delimiter)
}
