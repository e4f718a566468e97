package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconFile     = "icon.svg"
	defaultsFile = "defaults.yaml"
)

//go:embed icon.svg defaults.yaml
var assetFS embed.FS

var resourceCache sync.Map

// Icon returns the application icon.
func Icon() (fyne.Resource, error) {
	return loadResource(iconFile)
}

// MustIcon returns the application icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

// Defaults returns the compiled-in configuration document.
func Defaults() []byte {
	data, err := assetFS.ReadFile(defaultsFile)
	if err != nil {
		panic(fmt.Errorf("load %s: %w", defaultsFile, err))
	}
	return data
}

func loadResource(path string) (fyne.Resource, error) {
	if cached, ok := resourceCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := assetFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	resourceCache.Store(path, resource)
	return resource, nil
}
