// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/screenref/pkg/types"
)

const referencesFile = "references.yaml"

// kindFiles maps each entity kind to its content file.
var kindFiles = map[types.EntityKind]string{
	types.KindDisease:    "diseases.yaml",
	types.KindMedication: "medications.yaml",
	types.KindProtocol:   "protocols.yaml",
	types.KindCalculator: "calculators.yaml",
	types.KindScreening:  "screenings.yaml",
}

// FileFor returns the content file name for a kind.
func FileFor(kind types.EntityKind) string {
	return kindFiles[kind]
}

// Load reads every content collection from dir and builds a Catalog. A
// missing collection file is treated as an empty collection. Records whose
// kind field disagrees with their file are rejected.
func Load(dir string, opts ...Option) (*Catalog, error) {
	o := buildOptions(opts)

	var entities []types.Entity
	for _, kind := range types.AllKinds {
		batch, err := loadEntities(filepath.Join(dir, kindFiles[kind]), kind)
		if err != nil {
			return nil, err
		}
		o.log.WithFields(logrus.Fields{
			"kind":  kind,
			"count": len(batch),
		}).Debug("loaded entity collection")
		entities = append(entities, batch...)
	}

	refs, err := loadReferences(filepath.Join(dir, referencesFile))
	if err != nil {
		return nil, err
	}
	o.log.WithField("count", len(refs)).Debug("loaded references")

	c, err := New(entities, refs)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s: %w", dir, err)
	}

	o.log.WithFields(logrus.Fields{
		"entities":    c.Len(),
		"references":  len(refs),
		"fingerprint": c.Fingerprint()[:12],
	}).Info("catalog loaded")
	return c, nil
}

func loadEntities(path string, kind types.EntityKind) ([]types.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var entities []types.Entity
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for i := range entities {
		if entities[i].Kind != "" && entities[i].Kind != kind {
			return nil, fmt.Errorf("%s: entity %q declares kind %q, want %q",
				filepath.Base(path), entities[i].ID, entities[i].Kind, kind)
		}
		entities[i].Kind = kind
	}
	return entities, nil
}

func loadReferences(path string) ([]types.Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading references: %w", err)
	}
	var refs []types.Reference
	if err := yaml.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("parsing references: %w", err)
	}
	return refs, nil
}
