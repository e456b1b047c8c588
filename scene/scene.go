// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene fetches disk-based data used to construct an
// iterphys.Engine: the body list, the shared equation set, and the
// fixed tick size. Data is loaded directly from a single YAML document
// -- there is no zoo of asset formats to route between, since a
// headless physics core has no textures, meshes, or audio to load, just
// the one construction-input document.
//
// Package scene is the ambient config-loading counterpart to the
// excluded graphical shell's "template scenes" feature: it reads a file
// into structs, and provides no picker, thumbnails, or UI of its own.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BodySpec is one body's construction input, matching the (name, mass,
// width, height, x, y, vx, vy, theta) tuple of spec §6.
type BodySpec struct {
	Name   string  `yaml:"name"`
	Mass   float64 `yaml:"mass"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Theta  float64 `yaml:"theta"`
	Color  string  `yaml:"color"`
}

// Document is the root shape of a scene YAML file.
type Document struct {
	Bodies    []BodySpec `yaml:"bodies"`
	Equations []string   `yaml:"equations"`
	DT        float64    `yaml:"dt"`
}

// Load reads and unmarshals the YAML scene file at path. A missing or
// zero dt defaults to 1/60, the typical per-frame tick named in spec
// §6.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("scene: open %q: %w", path, err)
	}
	defer f.Close()

	var doc Document
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("scene: decode %q: %w", path, err)
	}
	if doc.DT == 0 {
		doc.DT = 1.0 / 60.0
	}
	return doc, nil
}
