// SPDX-License-Identifier: MIT

package pdt

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const selectParticles = "SELECT name, lund FROM particles"

type particleRow struct {
	Name string `db:"name"`
	Lund int    `db:"lund"`
}

// LoadDB reads the table from the particles(name, lund) table of db.
func LoadDB(ctx context.Context, db *sqlx.DB) (*Table, error) {
	rows, err := db.QueryxContext(ctx, selectParticles)
	if err != nil {
		return nil, fmt.Errorf("pdt: query: %w", err)
	}
	defer rows.Close()

	t := newTable()
	for rows.Next() {
		var r particleRow
		if err := rows.StructScan(&r); err != nil {
			return nil, fmt.Errorf("pdt: scan: %w", err)
		}
		t.add(r.Name, r.Lund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pdt: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Open connects with driver ("mysql" or "sqlite3") to dsn and loads the
// table.
func Open(ctx context.Context, driver, dsn string) (*Table, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("pdt: connect %s: %w", driver, err)
	}
	defer db.Close()

	return LoadDB(ctx, db)
}
