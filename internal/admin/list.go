package admin

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

// List prints the listed columns of every record of the named entity as a table.
func (a *Admin) List(ctx context.Context, name string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	d, err := Lookup(name)
	if err != nil {
		return 0, err
	}

	rows, err := a.db.QueryxContext(ctx, d.ListQuery())
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"entity":     name,
			"error":      err.Error(),
		}).Error("List query execution err")
		return 0, err
	}
	defer rows.Close()

	listed := d.Listed()
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	header := []string{"ID"}
	for _, f := range listed {
		header = append(header, strings.ToUpper(f.Label))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	n := 0
	for rows.Next() {
		record := make(map[string]any)
		if err := rows.MapScan(record); err != nil {
			return n, err
		}

		cells := []string{cell(record["id"])}
		for _, f := range listed {
			cells = append(cells, cell(record[f.Column]))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
		n++
	}
	if err := rows.Err(); err != nil {
		return n, err
	}

	return n, w.Flush()
}

const maxCellWidth = 40

func cell(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		s = string(v)
	case time.Time:
		s = v.Format("2006-01-02 15:04")
	default:
		s = fmt.Sprint(v)
	}

	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxCellWidth {
		s = string(r[:maxCellWidth-3]) + "..."
	}
	return s
}
