// Package rest provides a store.Driver that talks to an HBase REST gateway
// (Stargate).
//
// Table schema operations go through /{table}/schema, row writes through
// /{table}/{key} with the gateway's base64 CellSet JSON encoding.
//
// Usage:
//
//	cfg := store.DefaultConfig("http://localhost:8080")
//	drv, err := rest.New(ctx, cfg)
//	if err != nil { ... }
//	defer drv.Close()
package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/quasdata/colfam/internal/errs"
	"github.com/quasdata/colfam/internal/store"
)

// Driver is an HBase REST implementation of store.Driver. It is safe for
// concurrent use by multiple goroutines.
type Driver struct {
	base string
	hc   *http.Client
}

// New builds a Driver for cfg.Endpoint and pings the gateway to validate
// the connection before returning.
func New(ctx context.Context, cfg *store.Config) (*Driver, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid store endpoint", err)
	}

	d := &Driver{
		base: u.String(),
		hc: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
	}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// --- store.Driver implementation ---

// Ping verifies the gateway is reachable via its cluster version resource.
func (d *Driver) Ping(ctx context.Context) error {
	resp, err := d.do(ctx, http.MethodGet, "/version/cluster", nil)
	if err != nil {
		return mapError(err, "ping failed")
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, "ping failed")
	}
	return nil
}

// Close is a no-op — the HTTP client holds no persistent state worth tearing down.
func (d *Driver) Close() error { return nil }

// tableSchema is the gateway's JSON table-schema document. Only the family
// names are meaningful to us.
type tableSchema struct {
	Name         string         `json:"name"`
	ColumnSchema []columnSchema `json:"ColumnSchema"`
}

type columnSchema struct {
	Name string `json:"name"`
}

// CreateTable issues PUT /{table}/schema with one ColumnSchema entry per family.
func (d *Driver) CreateTable(ctx context.Context, name string, families []string) error {
	doc := tableSchema{Name: name}
	for _, f := range families {
		doc.ColumnSchema = append(doc.ColumnSchema, columnSchema{Name: f})
	}

	resp, err := d.do(ctx, http.MethodPut, "/"+url.PathEscape(name)+"/schema", doc)
	if err != nil {
		return mapError(err, "create table failed")
	}
	defer drain(resp)

	if !success(resp.StatusCode) {
		return statusError(resp.StatusCode, "create table failed")
	}
	return nil
}

// DeleteTable issues DELETE /{table}/schema.
func (d *Driver) DeleteTable(ctx context.Context, name string) error {
	resp, err := d.do(ctx, http.MethodDelete, "/"+url.PathEscape(name)+"/schema", nil)
	if err != nil {
		return mapError(err, "delete table failed")
	}
	defer drain(resp)

	if !success(resp.StatusCode) {
		return statusError(resp.StatusCode, "delete table failed")
	}
	return nil
}

// TableExists issues GET /{table}/exists; the gateway answers 200 or 404.
func (d *Driver) TableExists(ctx context.Context, name string) (bool, error) {
	resp, err := d.do(ctx, http.MethodGet, "/"+url.PathEscape(name)+"/exists", nil)
	if err != nil {
		return false, mapError(err, "table existence check failed")
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, statusError(resp.StatusCode, "table existence check failed")
	}
}

// TableFamilies reads the schema document back and returns its family names.
func (d *Driver) TableFamilies(ctx context.Context, name string) ([]string, error) {
	resp, err := d.do(ctx, http.MethodGet, "/"+url.PathEscape(name)+"/schema", nil)
	if err != nil {
		return nil, mapError(err, "read table schema failed")
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, "read table schema failed")
	}

	var doc tableSchema
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrKindStoreFailed, "can't decode table schema", err)
	}

	families := make([]string, len(doc.ColumnSchema))
	for i, cs := range doc.ColumnSchema {
		families[i] = cs.Name
	}
	return families, nil
}

// cellSet is the gateway's row-write document. All key, column, and value
// fields are base64.
type cellSet struct {
	Row []cellSetRow `json:"Row"`
}

type cellSetRow struct {
	Key  string `json:"key"`
	Cell []cell `json:"Cell"`
}

type cell struct {
	Column string `json:"column"`
	Value  string `json:"$"`
}

// Put issues PUT /{table}/{key} with the row's cells encoded as a CellSet.
func (d *Driver) Put(ctx context.Context, table, key string, cells map[string]map[string][]byte) error {
	enc := base64.StdEncoding
	row := cellSetRow{Key: enc.EncodeToString([]byte(key))}
	for family, quals := range cells {
		for q, v := range quals {
			row.Cell = append(row.Cell, cell{
				Column: enc.EncodeToString([]byte(family + ":" + q)),
				Value:  enc.EncodeToString(v),
			})
		}
	}

	path := "/" + url.PathEscape(table) + "/" + url.PathEscape(key)
	resp, err := d.do(ctx, http.MethodPut, path, cellSet{Row: []cellSetRow{row}})
	if err != nil {
		return mapError(err, "put row failed")
	}
	defer drain(resp)

	if !success(resp.StatusCode) {
		return statusError(resp.StatusCode, "put row failed")
	}
	return nil
}

// DeleteRow issues DELETE /{table}/{key}.
func (d *Driver) DeleteRow(ctx context.Context, table, key string) error {
	path := "/" + url.PathEscape(table) + "/" + url.PathEscape(key)
	resp, err := d.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return mapError(err, "delete row failed")
	}
	defer drain(resp)

	if !success(resp.StatusCode) {
		return statusError(resp.StatusCode, "delete row failed")
	}
	return nil
}

// --- transport helpers ---

// do builds and sends one JSON request against the gateway.
func (d *Driver) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return d.hc.Do(req)
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func success(status int) bool {
	return status >= 200 && status < 300
}
