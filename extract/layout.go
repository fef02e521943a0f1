package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
)

// TimestampLayout prefixes every file written by one extraction.
const TimestampLayout = "20060102_150405"

// output trees under the sink root
const (
	jsonDir = "json"
	csvDir  = "csv"
)

// JSONPath is json/<subdir>/<ts>_<name>.json.
func JSONPath(subdir, timestamp, name string) string {
	return path.Join(jsonDir, subdir, timestamp+"_"+name+".json")
}

// CSVPath is csv/<subdir>/<ts>_<name>.csv.
func CSVPath(subdir, timestamp, name string) string {
	return path.Join(csvDir, subdir, timestamp+"_"+name+".csv")
}

// ArtefactPath is <subdir>/<ts>_<file>, used for contract source and ABI.
func ArtefactPath(subdir, timestamp, file string) string {
	return path.Join(subdir, timestamp+"_"+file)
}

func (e *Extractor) saveJSON(ctx context.Context, p string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", p, err)
	}
	return e.save(ctx, p, data)
}

// saveCSV writes records with the dataset's columns. Nothing is written for
// an empty list and the returned location is "".
func (e *Extractor) saveCSV(ctx context.Context, p string, dataset Dataset, records []map[string]any) (string, error) {
	if len(records) == 0 {
		e.logger.Warn("no data to save", "file", p)
		return "", nil
	}
	data, err := EncodeCSV(Columns(dataset, records), records)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", p, err)
	}
	return e.save(ctx, p, data)
}

func (e *Extractor) save(ctx context.Context, p string, data []byte) (string, error) {
	if err := e.sink.Write(ctx, p, data); err != nil {
		return "", err
	}
	location := e.sink.Location(p)
	e.logger.Info("saved file", "path", location)
	return location, nil
}

// record stores a location in the result unless nothing was written.
func (r *Result) record(name, location string) {
	if location != "" {
		r.Files[name] = location
	}
}
