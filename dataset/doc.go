// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset holds the immutable district list served by the API.

# Loading

From a file (.json or .yaml/.yml, an array of districts):

	ds, err := dataset.LoadFile("data/election_results_2024.json")

From the SQL store populated by `girigiri import`:

	ds, err := dataset.Load(ctx, conn)

The dataset is built once at startup. Margins are recomputed from
candidate votes; a mismatch with the supplied value is logged.

# Access

	all := ds.Districts()        // copy, dataset order
	d, err := ds.Find("tokyo-1") // ErrNotFound for unknown ids
	parties := ds.Parties()      // Japanese collation order

All accessors return copies, so callers are free to sort or filter the
results.
*/
package dataset
