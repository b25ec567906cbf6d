package runtime

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// DefaultName is the runtime used when none is configured.
const DefaultName = "espruino"

// ErrUnknownRuntime is returned by Lookup for names missing from the registry.
var ErrUnknownRuntime = errors.New("unknown runtime")

//go:embed runtimes.yaml
var rawRegistry []byte

// Runtime is a device firmware family paired with its declared version.
type Runtime struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type registryFile struct {
	Runtimes []Runtime `yaml:"runtimes"`
}

var (
	loadOnce sync.Once
	registry map[string]Runtime
	loadErr  error
)

func load() (map[string]Runtime, error) {
	loadOnce.Do(func() {
		registry, loadErr = parseRegistry(rawRegistry)
	})
	return registry, loadErr
}

// parseRegistry decodes and checks a registry document. Every version must be
// a valid (possibly partial) semantic version.
func parseRegistry(data []byte) (map[string]Runtime, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing runtime registry: %w", err)
	}

	out := make(map[string]Runtime, len(f.Runtimes))
	for _, rt := range f.Runtimes {
		if rt.Name == "" {
			return nil, fmt.Errorf("runtime registry: entry with empty name")
		}
		if _, err := semver.NewVersion(rt.Version); err != nil {
			return nil, fmt.Errorf("runtime %q: invalid version %q: %w", rt.Name, rt.Version, err)
		}
		if _, dup := out[rt.Name]; dup {
			return nil, fmt.Errorf("runtime registry: duplicate runtime %q", rt.Name)
		}
		out[rt.Name] = rt
	}
	return out, nil
}

// Lookup returns the registered runtime with the given name.
func Lookup(name string) (Runtime, error) {
	reg, err := load()
	if err != nil {
		return Runtime{}, err
	}
	rt, ok := reg[name]
	if !ok {
		return Runtime{}, fmt.Errorf("%w %q: supported runtimes are %s", ErrUnknownRuntime, name, strings.Join(Names(), ", "))
	}
	return rt, nil
}

// Default returns the default runtime.
func Default() Runtime {
	rt, err := Lookup(DefaultName)
	if err != nil {
		panic(fmt.Sprintf("runtime registry is missing %q: %v", DefaultName, err))
	}
	return rt
}

// Names returns the registered runtime names in sorted order.
func Names() []string {
	reg, err := load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the runtime as name@version.
func (r Runtime) String() string {
	return r.Name + "@" + r.Version
}
