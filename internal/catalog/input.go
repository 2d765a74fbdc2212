package catalog

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// CatalogFromJson reads a catalog from a JSON file with the keys "courses",
// "teachers", "rooms", "timeslots" and "groups". Field-level validation is
// the caller's concern: a well-formed file with unsatisfiable contents still
// decodes successfully and the solver reports it as infeasible.
func CatalogFromJson(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalog{}, err
	}

	var catalogJson map[string]any
	if err := json.Unmarshal(bytes, &catalogJson); err != nil {
		return Catalog{}, err
	}

	var catalog Catalog
	if err := mapstructure.Decode(catalogJson, &catalog); err != nil {
		return Catalog{}, err
	}

	return catalog, nil
}
