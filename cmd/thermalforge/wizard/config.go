package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete wizard configuration for YAML
// serialization.
type Config struct {
	Canvas  CanvasConfigYAML  `yaml:"canvas"`
	Content ContentConfigYAML `yaml:"content"`
	Output  OutputConfigYAML  `yaml:"output"`
}

// CanvasConfigYAML holds canvas settings with YAML tags.
type CanvasConfigYAML struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ContentConfigYAML holds generation settings with YAML tags.
type ContentConfigYAML struct {
	NumSources  int     `yaml:"num_sources"`
	NumEdges    int     `yaml:"num_edges"`
	SourceSigma float64 `yaml:"source_sigma"`
	EdgeSigma   float64 `yaml:"edge_sigma"`
	Edginess    float64 `yaml:"edginess,omitempty"`
}

// OutputConfigYAML holds output settings with YAML tags.
type OutputConfigYAML struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
	Colormap  string `yaml:"colormap"`
	Count     int    `yaml:"count"`
	Seed      uint64 `yaml:"seed,omitempty"`
	Annotate  bool   `yaml:"annotate,omitempty"`
}

// LoadFromYAML reads a wizard configuration file.
func LoadFromYAML(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &State{
		Canvas:  CanvasConfig(cfg.Canvas),
		Content: ContentConfig(cfg.Content),
		Output:  OutputConfig(cfg.Output),
	}, nil
}

// SaveToYAML writes the state as a configuration file.
func SaveToYAML(path string, s *State) error {
	cfg := Config{
		Canvas:  CanvasConfigYAML(s.Canvas),
		Content: ContentConfigYAML(s.Content),
		Output:  OutputConfigYAML(s.Output),
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
