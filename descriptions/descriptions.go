// Package descriptions carries the hardware description resources packaged
// with the generator and resolves them by (vendor, filename).
package descriptions

import (
	"embed"
	"errors"
	"fmt"
	"path"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/1kohei1/nrfgen/svd"
)

//go:embed index.yaml
var rawIndex []byte

//go:embed Nordic
var resources embed.FS

var index []Entry

var ErrUnknownResource = errors.New("unknown hardware description resource")

type Entry struct {
	Vendor string   `yaml:"vendor"`
	Files  []string `yaml:"files"`
}

func init() {
	var idx struct {
		Elements []Entry `yaml:"descriptions"`
	}
	if err := yaml.Unmarshal(rawIndex, &idx); err != nil {
		panic(err)
	}

	index = idx.Elements
}

// Vendors lists the vendors with packaged descriptions.
func Vendors() []string {
	vendors := make([]string, 0, len(index))
	for _, entry := range index {
		vendors = append(vendors, entry.Vendor)
	}
	return vendors
}

// For loads and decodes the packaged description identified by vendor and
// filename.
func For(vendor, file string) (svd.DeviceElement, error) {
	for _, entry := range index {
		if entry.Vendor != vendor {
			continue
		}
		if !slices.Contains(entry.Files, file) {
			continue
		}

		buf, err := resources.ReadFile(path.Join(entry.Vendor, file))
		if err != nil {
			return svd.DeviceElement{}, err
		}

		device, err := svd.Parse(buf)
		if err != nil {
			return svd.DeviceElement{}, fmt.Errorf("%s/%s: %w", vendor, file, err)
		}
		return device, nil
	}
	return svd.DeviceElement{}, fmt.Errorf("%w: %s/%s", ErrUnknownResource, vendor, file)
}
