// ABOUTME: Source registry merges the curated static YAML with the optional dynamic YAML
// ABOUTME: Static registry is required; a broken dynamic registry only costs a warning

// Package sources loads the news source registry for a discovery run.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// registryFile is the on-disk shape of both registry files.
type registryFile struct {
	Sources []domain.Source `yaml:"sources"`
}

// Registry loads source descriptors from the static and dynamic files.
type Registry struct {
	staticPath  string
	dynamicPath string
	logger      interfaces.Logger
}

// NewRegistry creates a registry reading the given files. dynamicPath may
// name a file that does not exist.
func NewRegistry(staticPath, dynamicPath string, logger interfaces.Logger) *Registry {
	return &Registry{
		staticPath:  staticPath,
		dynamicPath: dynamicPath,
		logger:      logger,
	}
}

// Load returns all sources in registry order: static first, then dynamic.
// Sources are not deduplicated. A missing or unparsable static registry is
// an error the caller treats as fatal; dynamic registry problems degrade to
// static-only with a warning.
func (r *Registry) Load() ([]domain.Source, error) {
	static, err := readRegistryFile(r.staticPath)
	if err != nil {
		return nil, fmt.Errorf("load static sources: %w", err)
	}

	all := make([]domain.Source, 0, len(static))
	all = append(all, static...)
	r.logger.Info("Loaded static sources", map[string]interface{}{
		"count": len(static),
		"path":  r.staticPath,
	})

	dynamic, err := readRegistryFile(r.dynamicPath)
	switch {
	case err == nil:
		if len(dynamic) > 0 {
			r.logger.Info("Loaded AI-generated sources for this topic", map[string]interface{}{
				"count": len(dynamic),
			})
			all = append(all, dynamic...)
		}
	case os.IsNotExist(err):
		r.logger.Info("No dynamic sources file found, proceeding with static sources only", nil)
	default:
		r.logger.Warn("Dynamic sources file was not in the expected format, skipping", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return all, nil
}

func readRegistryFile(path string) ([]domain.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return file.Sources, nil
}
