package preset

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permloop"
	"github.com/permgroup/hcgt/permutation"
)

//go:embed groups.yaml
var groupsYAML []byte

// Group is a named example group: the domain it acts on and its
// generating set.
type Group struct {
	Domain domain.Domain[int]
	Gens   []*permutation.Permutation[int]
}

type domainSpec struct {
	Start int `yaml:"start"`
	Fin   int `yaml:"fin"`
}

type groupSpec struct {
	Domain     domainSpec `yaml:"domain"`
	Generators [][][]int  `yaml:"generators"`
}

var (
	once    sync.Once
	loaded  map[string]*Group
	loadErr error
)

// Get returns the named preset group. Fails with ErrUnknownPreset if the
// name is not declared in the embedded group file.
func Get(name string) (*Group, error) {
	once.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	g, ok := loaded[name]
	if !ok {
		return nil, ErrUnknownPreset
	}

	return g, nil
}

// Names returns every declared preset name.
func Names() ([]string, error) {
	once.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}

	names := make([]string, 0, len(loaded))
	for name := range loaded {
		names = append(names, name)
	}

	return names, nil
}

func load() {
	var raw map[string]groupSpec
	if err := yaml.Unmarshal(groupsYAML, &raw); err != nil {
		loadErr = fmt.Errorf("preset: parsing embedded groups: %w", err)

		return
	}

	loaded = make(map[string]*Group, len(raw))
	for name, spec := range raw {
		dom, err := domain.New(spec.Domain.Start, spec.Domain.Fin)
		if err != nil {
			loadErr = fmt.Errorf("preset: group %q: %w", name, err)

			return
		}

		gens := make([]*permutation.Permutation[int], 0, len(spec.Generators))
		for _, cycles := range spec.Generators {
			loops := make([]*permloop.Loop[int], 0, len(cycles))
			for _, cycle := range cycles {
				loop, err := permloop.New(cycle...)
				if err != nil {
					loadErr = fmt.Errorf("preset: group %q: %w", name, err)

					return
				}
				loops = append(loops, loop)
			}
			gens = append(gens, permutation.New(dom, loops))
		}

		loaded[name] = &Group{Domain: dom, Gens: gens}
	}
}
