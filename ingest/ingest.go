package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/neogo/model"
)

// Load reads both data sets concurrently and returns the unlinked record
// collections, ready for neogo.New.
func Load(ctx context.Context, neoPath, cadPath string) ([]*model.Body, []*model.Approach, error) {
	var (
		bodies     []*model.Body
		approaches []*model.Approach
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bodies, err = LoadBodies(neoPath)
		return err
	})
	g.Go(func() error {
		var err error
		approaches, err = LoadApproaches(cadPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return bodies, approaches, nil
}

// LoadBodies reads near-Earth object records from a CSV file.
//
// Columns are resolved by header name: "pdes" (primary designation),
// "name", "diameter" (km), and "pha" (potentially hazardous, "Y"/"N").
// An empty name means unnamed and an empty diameter means unknown (NaN).
func LoadBodies(path string) ([]*model.Body, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest %s: read header: %w", path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("ingest %s: missing column %q", path, name)
		}
	}

	var bodies []*model.Body
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest %s: row %d: %w", path, row, err)
		}

		diameter := math.NaN()
		if s := record[col["diameter"]]; s != "" {
			diameter, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("ingest %s: row %d: diameter: %w", path, row, err)
			}
		}

		bodies = append(bodies, model.NewBody(
			record[col["pdes"]],
			record[col["name"]],
			diameter,
			record[col["pha"]] == "Y",
		))
	}
	return bodies, nil
}

// cadDocument is the envelope of the NASA close-approach data set: a
// column-name header plus rows of string cells.
type cadDocument struct {
	Fields []string   `json:"fields"`
	Data   [][]string `json:"data"`
}

// LoadApproaches reads close approach records from a JSON file.
//
// Columns are resolved from the document's "fields" header: "des"
// (designation), "cd" (calendar date/time), "dist" (au), and "v_rel"
// (km/s).
func LoadApproaches(path string) ([]*model.Approach, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc cadDocument
	if err := gojson.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ingest %s: decode: %w", path, err)
	}

	col := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		col[name] = i
	}
	for _, name := range []string{"des", "cd", "dist", "v_rel"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("ingest %s: missing field %q", path, name)
		}
	}

	approaches := make([]*model.Approach, 0, len(doc.Data))
	for i, record := range doc.Data {
		if len(record) != len(doc.Fields) {
			return nil, fmt.Errorf("ingest %s: row %d: has %d cells, want %d", path, i, len(record), len(doc.Fields))
		}

		t, err := model.ParseTime(record[col["cd"]])
		if err != nil {
			return nil, fmt.Errorf("ingest %s: row %d: %w", path, i, err)
		}
		dist, err := parseFloat(record[col["dist"]])
		if err != nil {
			return nil, fmt.Errorf("ingest %s: row %d: dist: %w", path, i, err)
		}
		vel, err := parseFloat(record[col["v_rel"]])
		if err != nil {
			return nil, fmt.Errorf("ingest %s: row %d: v_rel: %w", path, i, err)
		}

		approaches = append(approaches, model.NewApproach(record[col["des"]], t, dist, vel))
	}
	return approaches, nil
}

// parseFloat parses a numeric cell, mapping an empty cell to NaN.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// open opens a data file, decompressing transparently when the path ends
// in ".gz".
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("ingest %s: gzip: %w", path, err)
	}
	return &gzipReadCloser{zr: zr, f: f}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	if err := g.zr.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
