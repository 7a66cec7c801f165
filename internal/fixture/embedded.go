package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/demo.yaml
var demoYAML []byte

type Embedded struct {
	raw []byte
}

// NewEmbedded returns the demo dataset compiled into the binary.
func NewEmbedded() *Embedded {
	return &Embedded{raw: demoYAML}
}

// NewYAML parses an arbitrary YAML document with the demo layout.
func NewYAML(raw []byte) *Embedded {
	return &Embedded{raw: raw}
}

func (e *Embedded) Load(_ context.Context) (*Dataset, error) {
	const op = "fixture.Embedded.Load"

	dec := yaml.NewDecoder(bytes.NewReader(e.raw))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ds, nil
}
