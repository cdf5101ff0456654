// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the election dataset in PostgreSQL or SQLite.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - district: one row per electoral district
  - candidate: candidates per district, with vote counts

	district 1──* candidate

Both tables carry a position column so the dataset's original order
survives a round trip.

# Drivers

Queries use $N placeholders, which lib/pq ("postgres") and
modernc.org/sqlite ("sqlite") both accept:

	conn, err := sql.Open("sqlite", "file:girigiri.db")
	conn, err := sql.Open("postgres", "postgres://...")

# Import and Load

	err := db.ReplaceDistricts(ctx, conn, districts)
	districts, err := db.LoadDistricts(ctx, conn)

ReplaceDistricts deletes the stored dataset and inserts the new one in a
single transaction.
*/
package db
