package config

import (
	"os"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"

	"making-change/domain"
	"making-change/shared"
)

// catalogFile is the HCL layout of a denomination catalog:
//
//	denomination "Quarter" {
//	  value = "0.25"
//	  kind  = "coin"
//	  icon  = "quarter.png"
//	}
type catalogFile struct {
	Denominations []denominationBlock `hcl:"denomination"`
}

type denominationBlock struct {
	Name  string `hcl:"name,key"`
	Value string `hcl:"value"`
	Kind  string `hcl:"kind"`
	Icon  string `hcl:"icon"`
}

// LoadCatalog reads the catalog at path, or returns the built-in US catalog for an empty path.
func LoadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	bs, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("catalog file %s", path)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "catalog read path=%s", path)
	}
	return ParseCatalog(bs)
}

func ParseCatalog(bs []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := hcl.Unmarshal(bs, &file); err != nil {
		return nil, errors.Annotatef(err, "catalog unmarshal content='%s'", string(bs))
	}
	if len(file.Denominations) == 0 {
		return nil, errors.NotValidf("catalog without denomination blocks")
	}

	denominations := make([]shared.Denomination, 0, len(file.Denominations))
	for _, block := range file.Denominations {
		value, err := domain.ParseAmount(block.Value)
		if err != nil {
			return nil, errors.NewNotValid(err, "denomination "+block.Name+" value")
		}
		kind, err := shared.ParseKind(block.Kind)
		if err != nil {
			return nil, errors.NewNotValid(err, "denomination "+block.Name+" kind")
		}
		denominations = append(denominations, shared.Denomination{
			Name:  block.Name,
			Value: value,
			Kind:  kind,
			Icon:  block.Icon,
		})
	}

	catalog, err := domain.NewCatalog(denominations)
	if err != nil {
		return nil, errors.Annotate(err, "catalog")
	}
	return catalog, nil
}
