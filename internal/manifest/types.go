package manifest

import "github.com/thingssdk/thingssdk-cli/internal/runtime"

// Fixed values written into every new project.
const (
	InitialVersion = "0.0.0"
	EntryPoint     = "main.js"
	PushScript     = "node ./scripts/push"
)

// DevDependencies maps the deployer toolchain packages to their source locators.
var DevDependencies = map[string]string{
	"thingssdk-deployer":          "github:thingssdk/thingssdk-deployer",
	"thingssdk-espruino-strategy": "github:thingssdk/thingssdk-espruino-strategy",
}

// Package is the package.json of a generated project. Field order is the
// serialized key order.
type Package struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

// Build returns the package.json for a project. It has no side effects; the
// engines map always holds exactly the selected runtime.
func Build(projectName string, rt runtime.Runtime) *Package {
	deps := make(map[string]string, len(DevDependencies))
	for name, locator := range DevDependencies {
		deps[name] = locator
	}

	return &Package{
		Name:            projectName,
		Version:         InitialVersion,
		Private:         true,
		Main:            EntryPoint,
		Scripts:         map[string]string{"push": PushScript},
		DevDependencies: deps,
		Engines:         map[string]string{rt.Name: rt.Version},
	}
}
