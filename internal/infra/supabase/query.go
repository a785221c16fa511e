package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// From starts a PostgREST query against a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
		params: url.Values{},
	}
}

// QueryBuilder accumulates filters for a single table request.
type QueryBuilder struct {
	client *Client
	table  string
	params url.Values
	single bool
}

// Select sets the returned columns.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.params.Set("select", columns)

	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.params.Add(column, fmt.Sprintf("eq.%v", value))

	return q
}

// Order sorts by a column.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	direction := "asc"
	if !ascending {
		direction = "desc"
	}
	q.params.Set("order", column+"."+direction)

	return q
}

// Single expects exactly one row; zero rows yields PGRST116.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true

	return q
}

func (q *QueryBuilder) url() string {
	endpoint := q.client.baseURL + restPath + q.table
	if len(q.params) > 0 {
		endpoint += "?" + q.params.Encode()
	}

	return endpoint
}

// Fetch runs a select and decodes the rows (or the single row) into out.
func (q *QueryBuilder) Fetch(ctx context.Context, operation string, out any) error {
	req, err := q.client.newRequest(ctx, http.MethodGet, q.url(), nil, "")
	if err != nil {
		return err
	}
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	_, body, err := q.client.do(req, operation)
	if err != nil {
		return toDomainError(err, operation)
	}

	return errors.Wrapf(json.Unmarshal(body, out), "decode %s rows", q.table)
}

// Count returns the exact number of matching rows without transferring them.
func (q *QueryBuilder) Count(ctx context.Context, operation string) (int64, error) {
	req, err := q.client.newRequest(ctx, http.MethodHead, q.url(), nil, "")
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, _, err := q.client.do(req, operation)
	if err != nil {
		return 0, toDomainError(err, operation)
	}

	return parseContentRangeTotal(resp.Header.Get("Content-Range"))
}

// Insert posts rows. With onConflict set, conflicting rows are merged instead.
func (q *QueryBuilder) Insert(ctx context.Context, operation string, rows any, onConflict string) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrapf(err, "encode %s rows", q.table)
	}

	prefer := "return=minimal"
	if onConflict != "" {
		q.params.Set("on_conflict", onConflict)
		prefer = "resolution=merge-duplicates," + prefer
	}

	req, err := q.client.newRequest(ctx, http.MethodPost, q.url(), bytes.NewReader(body), "")
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", prefer)

	if _, _, err := q.client.do(req, operation); err != nil {
		return toDomainError(err, operation)
	}

	return nil
}

// Delete removes the rows matched by the filters.
func (q *QueryBuilder) Delete(ctx context.Context, operation string) error {
	if len(q.params) == 0 {
		return errors.Errorf("refusing to delete from %s without filters", q.table)
	}

	req, err := q.client.newRequest(ctx, http.MethodDelete, q.url(), nil, "")
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	if _, _, err := q.client.do(req, operation); err != nil {
		return toDomainError(err, operation)
	}

	return nil
}

// parseContentRangeTotal reads the total from "0-9/42" or "*/42".
func parseContentRangeTotal(header string) (int64, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 || idx == len(header)-1 {
		return 0, errors.Errorf("content-range %q has no total", header)
	}

	total, err := strconv.ParseInt(header[idx+1:], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse content-range %q", header)
	}

	return total, nil
}
