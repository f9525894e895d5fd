// Package config loads renderer settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of a renderer configuration.
type FileConfig struct {
	Image  ImageConfig  `yaml:"image" json:"image"`
	View   ViewConfig   `yaml:"view" json:"view"`
	Pool   PoolConfig   `yaml:"pool" json:"pool"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// ImageConfig sets the frame size and how it is split into tasks.
type ImageConfig struct {
	Width    int `yaml:"width" json:"width"`
	Height   int `yaml:"height" json:"height"`
	RegionsX int `yaml:"regions_x" json:"regions_x"`
	RegionsY int `yaml:"regions_y" json:"regions_y"`
}

// ViewConfig sets the starting view and the zoom sequence.
type ViewConfig struct {
	CenterRe float64 `yaml:"center_re" json:"center_re"`
	CenterIm float64 `yaml:"center_im" json:"center_im"`
	Zoom     float64 `yaml:"zoom" json:"zoom"`
	ZoomStep float64 `yaml:"zoom_step" json:"zoom_step"`
	Frames   int     `yaml:"frames" json:"frames"`
}

// PoolConfig tunes the worker pool.
type PoolConfig struct {
	Workers    int  `yaml:"workers" json:"workers"`
	PinThreads bool `yaml:"pin_threads" json:"pin_threads"`
}

// OutputConfig says where rendered frames go.
type OutputConfig struct {
	Dir    string `yaml:"dir" json:"dir"`
	Prefix string `yaml:"prefix" json:"prefix"`
}

// Default returns the settings used when no file is given: one 1024x1024 frame
// of the whole set in 16x16 regions, with one worker per CPU.
func Default() *FileConfig {
	return &FileConfig{
		Image: ImageConfig{
			Width:    1024,
			Height:   1024,
			RegionsX: 16,
			RegionsY: 16,
		},
		View: ViewConfig{
			CenterRe: -0.5,
			Zoom:     1,
			ZoomStep: 2,
			Frames:   1,
		},
		Output: OutputConfig{
			Dir:    ".",
			Prefix: "mandelbrot",
		},
	}
}

// LoadFile reads path and overlays it on Default. The format follows the
// extension: .yaml, .yml or .json.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	return config, nil
}

// Validate checks the settings for values the renderer cannot use.
func (f *FileConfig) Validate() error {
	if f.Image.Width <= 0 || f.Image.Height <= 0 {
		return errors.New("image.width and image.height must be positive")
	}
	if f.Image.RegionsX <= 0 || f.Image.RegionsY <= 0 {
		return errors.New("image.regions_x and image.regions_y must be positive")
	}
	if f.View.Zoom <= 0 {
		return errors.New("view.zoom must be positive")
	}
	if f.View.ZoomStep <= 0 {
		return errors.New("view.zoom_step must be positive")
	}
	if f.View.Frames < 1 {
		return errors.New("view.frames must be at least 1")
	}
	if f.Pool.Workers < 0 {
		return errors.New("pool.workers must be non-negative")
	}
	return nil
}
