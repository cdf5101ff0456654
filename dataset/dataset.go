// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/girigiri/analytics"
	"github.com/danielhkuo/girigiri/db"
	"github.com/danielhkuo/girigiri/models"
)

var (
	ErrNotFound          = errors.New("district not found")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Dataset is the read-only district sequence shared by all requests.
// It must not be modified after New returns.
type Dataset struct {
	districts []models.District
	index     map[string]int
	parties   []string
}

// New builds a Dataset from districts, keeping their order.
// Each district's margin is recomputed from its candidates.
func New(districts []models.District) *Dataset {
	ds := &Dataset{
		districts: make([]models.District, len(districts)),
		index:     make(map[string]int, len(districts)),
	}

	for i, d := range districts {
		d = cloneDistrict(d)

		margin := analytics.Margin(d.Candidates)
		if margin != d.Margin {
			slog.Warn("district margin disagrees with candidate votes",
				"district", d.ID,
				"supplied", d.Margin,
				"computed", margin,
			)
			d.Margin = margin
		}

		ds.districts[i] = d
		if _, dup := ds.index[d.ID]; dup {
			slog.Warn("duplicate district id, keeping first", "district", d.ID)
			continue
		}
		ds.index[d.ID] = i
	}

	ds.parties = analytics.Parties(ds.districts)
	return ds
}

// ReadFile decodes a district list from a .json, .yaml or .yml file
func ReadFile(path string) ([]models.District, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var districts []models.District
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &districts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &districts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}

	return districts, nil
}

// LoadFile reads a dataset file and builds a Dataset from it
func LoadFile(path string) (*Dataset, error) {
	districts, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(districts), nil
}

// Load builds a Dataset from the district tables of conn
func Load(ctx context.Context, conn *sql.DB) (*Dataset, error) {
	districts, err := db.LoadDistricts(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to load districts: %w", err)
	}
	return New(districts), nil
}

// Districts returns a copy of every district in dataset order
func (ds *Dataset) Districts() []models.District {
	out := make([]models.District, len(ds.districts))
	for i, d := range ds.districts {
		out[i] = cloneDistrict(d)
	}
	return out
}

// Find returns the district with the given id
func (ds *Dataset) Find(id string) (models.District, error) {
	i, ok := ds.index[id]
	if !ok {
		return models.District{}, ErrNotFound
	}
	return cloneDistrict(ds.districts[i]), nil
}

// Parties returns the distinct parties across the dataset
func (ds *Dataset) Parties() []string {
	return slices.Clone(ds.parties)
}

func (ds *Dataset) Len() int {
	return len(ds.districts)
}

func cloneDistrict(d models.District) models.District {
	d.Candidates = slices.Clone(d.Candidates)
	return d
}
