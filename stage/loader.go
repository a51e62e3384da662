package stage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/lixenwraith/hell-escape/asset"
)

// descriptorExts lists the formats tried for each stage number, in order
var descriptorExts = []string{".json", ".yaml", ".yml"}

// Discover loads Stage1, Stage2, ... from fsys until a number is missing or malformed, capped at limit
// Each attempted stage yields a result; the descriptors slice holds only the successes, in order
func Discover(fsys fs.FS, limit int) ([]Descriptor, []asset.Result[Descriptor]) {
	var descs []Descriptor
	var results []asset.Result[Descriptor]

	for i := 1; i <= limit; i++ {
		r := loadNumbered(fsys, i)
		results = append(results, r)
		if !r.OK() {
			if errors.Is(r.Err, ErrNotFound) {
				log.Printf("[stage] discovery stopped at stage %d: no descriptor", i)
			} else {
				log.Printf("[stage] discovery stopped at stage %d: %v", i, r.Err)
			}
			break
		}
		descs = append(descs, r.Value)
		log.Printf("[stage] loaded %s (%d platforms, %d obstacles)", r.Path, len(r.Value.Platforms), len(r.Value.Obstacles))
	}
	return descs, results
}

func loadNumbered(fsys fs.FS, n int) asset.Result[Descriptor] {
	for _, ext := range descriptorExts {
		name := fmt.Sprintf("Stage%d%s", n, ext)
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return asset.Fail[Descriptor](name, err)
		}
		d, err := Decode(name, data)
		if err != nil {
			return asset.Fail[Descriptor](name, err)
		}
		return asset.Ok(name, d)
	}
	return asset.Fail[Descriptor](fmt.Sprintf("Stage%d", n), ErrNotFound)
}

// LoadLayout discovers and assembles stages, falling back to the built-in stage when none load
func LoadLayout(fsys fs.FS, limit int) (*Layout, []Descriptor) {
	var descs []Descriptor
	if fsys != nil {
		descs, _ = Discover(fsys, limit)
	}
	if len(descs) == 0 {
		log.Printf("[stage] no stages loaded, using fallback stage")
		descs = []Descriptor{Fallback()}
	}

	layout, err := Assemble(descs)
	if err != nil {
		// Discovered descriptors are validated, so only the fallback path could reach here
		log.Printf("[stage] assemble failed: %v, using fallback stage", err)
		descs = []Descriptor{Fallback()}
		layout, _ = Assemble(descs)
	}
	return layout, descs
}
