// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/girigiri/analytics"
	"github.com/danielhkuo/girigiri/dataset"
	"github.com/danielhkuo/girigiri/db"
	"github.com/danielhkuo/girigiri/models"
)

func runImport(ctx context.Context, w io.Writer, path, databaseURL, databaseType string) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return errors.New("database URL required (use --database-url or DATABASE_URL)")
	}
	if databaseType == "" {
		databaseType = os.Getenv("DATABASE_TYPE")
		if databaseType == "" {
			databaseType = "sqlite"
		}
	}
	if databaseType != "sqlite" && databaseType != "postgres" {
		return errors.New("database type must be sqlite or postgres")
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	conn, err := sql.Open(databaseType, databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	if err := db.CreateSchema(ctx, conn); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if err := db.ReplaceDistricts(ctx, conn, ds.Districts()); err != nil {
		return fmt.Errorf("importing districts: %w", err)
	}

	n, err := db.CountDistricts(ctx, conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Imported %s districts into %s\n", formatCount(n), databaseType)
	return nil
}

func runClosest(w io.Writer, path string, q models.DistrictQuery, limit int) error {
	if q.MaxMargin != nil && *q.MaxMargin < 0 {
		return errors.New("--max-margin must not be negative")
	}
	if !analytics.ValidOrder(q.Order) {
		return fmt.Errorf("unknown order %q (want asc or desc)", q.Order)
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	districts := analytics.Query(ds.Districts(), q)
	total := len(districts)
	if limit > 0 && len(districts) > limit {
		districts = districts[:limit]
	}

	printDistricts(w, districts, total)
	return nil
}

func runTally(w io.Writer, path string, maxMargin *int) error {
	if maxMargin != nil && *maxMargin < 0 {
		return errors.New("--max-margin must not be negative")
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	// Closest first; tally ties follow this order
	filtered := analytics.SortByMargin(analytics.FilterByMaxMargin(ds.Districts(), maxMargin), models.OrderAsc)
	printTally(w, analytics.TallyRunnerUpParties(filtered), len(filtered))
	return nil
}

func runDistrict(w io.Writer, path, id, party string) error {
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	d, err := ds.Find(id)
	if err != nil {
		return fmt.Errorf("district %s: %w", id, err)
	}

	printDistrict(w, d, analytics.Compare(d.Candidates, party))
	return nil
}
