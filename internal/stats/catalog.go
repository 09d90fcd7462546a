package stats

import (
	"fmt"
	"strings"
)

// MissingFieldError reports aggregation requests whose required columns are
// absent from the loaded table. It is a configuration error: the request
// catalog and the dataset schema disagree, which silent neutral output would
// hide.
type MissingFieldError struct {
	Request string
	Columns []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("aggregation %q requires missing columns: %s",
		e.Request, strings.Join(e.Columns, ", "))
}

// Request is one named aggregation: the columns it reads and the closure
// that computes it.
type Request struct {
	Name     string
	Requires []string
	Compute  func() any
}

// Catalog is the pipeline's only external configuration surface: a named set
// of aggregation requests validated against the table's actual columns and
// executed in registration order.
type Catalog struct {
	columns  map[string]struct{}
	requests []Request
}

func NewCatalog(columns []string) *Catalog {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &Catalog{columns: set}
}

func (c *Catalog) Add(name string, requires []string, compute func() any) {
	c.requests = append(c.requests, Request{Name: name, Requires: requires, Compute: compute})
}

// Run validates every request's required columns, then executes all of them.
// Validation failures abort before any computation so the caller never sees
// a partial result set.
func (c *Catalog) Run() (map[string]any, error) {
	for _, req := range c.requests {
		var missing []string
		for _, col := range req.Requires {
			if _, ok := c.columns[col]; !ok {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return nil, &MissingFieldError{Request: req.Name, Columns: missing}
		}
	}

	out := make(map[string]any, len(c.requests))
	for _, req := range c.requests {
		out[req.Name] = req.Compute()
	}
	return out, nil
}
