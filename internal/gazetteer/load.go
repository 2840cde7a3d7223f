package gazetteer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type placesFile struct {
	Places []Place `yaml:"places"`
}

// LoadYAML reads places from a file shaped as:
//
//	places:
//	  - name: Nagpur
//	    lat: 21.1458
//	    lon: 79.0882
func LoadYAML(path string) ([]Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load gazetteer: read %q: %w", path, err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) ([]Place, error) {
	var f placesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load gazetteer: parse yaml: %w", err)
	}
	return f.Places, nil
}
