package admin

import (
	"context"
	"fmt"
	"io"
	"sort"

	"PortfolioGolang/database"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SeedFile maps entity names to the records to insert, e.g.
//
//	projects:
//	  - title: Portfolio
//	    tech_stack: Go, Docker
//	    created_date: 2024-02-01
type SeedFile map[string][]map[string]any

// Migrate applies the schema for the connected driver.
func (a *Admin) Migrate(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := database.Migrate(a.db); err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"driver":     a.db.DriverName(),
			"error":      err.Error(),
		}).Error("Failed to migrate database")
		return err
	}

	fmt.Fprintf(a.out, "schema applied (%s)\n", a.db.DriverName())
	return nil
}

// Seed inserts every record of the YAML document in one transaction. Entities are
// inserted parents first; a bad record rolls the whole file back.
func (a *Admin) Seed(ctx context.Context, r io.Reader) (map[string]int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	for name := range file {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	counts := make(map[string]int, len(file))
	for _, name := range seedOrder {
		records, ok := file[name]
		if !ok {
			continue
		}
		d, _ := Lookup(name)

		for i, record := range records {
			columns := make([]string, 0, len(record))
			for column := range record {
				columns = append(columns, column)
			}
			sort.Strings(columns)

			query, err := d.InsertQuery(columns)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}

			if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
				a.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"entity":     name,
					"index":      i,
					"error":      err.Error(),
				}).Error("Seed record insert err")
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
		}
		counts[name] = len(records)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed transaction: %w", err)
	}

	for _, name := range seedOrder {
		if n, ok := counts[name]; ok {
			fmt.Fprintf(a.out, "%s: %d\n", name, n)
		}
	}

	return counts, nil
}
