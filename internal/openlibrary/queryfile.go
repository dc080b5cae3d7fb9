// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openlibrary

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookscout/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A search can be saved to a file and rendered again later without
// re-querying the API.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Results []types.Book `yaml:"results"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Title  string   `yaml:"title"`
	Fields []string `yaml:"fields,omitempty"`
	Limit  int      `yaml:"limit,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	NumFound  int       `yaml:"num_found"`
	Returned  int       `yaml:"returned"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, q Query, resp *SearchResponse) error {
	qf := QueryFile{
		Query: QueryParams{
			Title:  q.Title,
			Fields: q.Fields,
			Limit:  q.Limit,
		},
		Summary: QuerySummary{
			Timestamp: time.Now(),
		},
	}

	if resp != nil {
		qf.Summary.NumFound = resp.NumFound
		qf.Summary.Returned = len(resp.Docs)
		qf.Results = make([]types.Book, 0, len(resp.Docs))
		for _, d := range resp.Docs {
			qf.Results = append(qf.Results, d.Book())
		}
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Response reconstructs a SearchResponse from the stored results so the
// usual formatters can render a loaded file.
func (qf *QueryFile) Response() *SearchResponse {
	resp := &SearchResponse{
		NumFound: qf.Summary.NumFound,
		Docs:     make([]Doc, 0, len(qf.Results)),
	}
	for _, b := range qf.Results {
		resp.Docs = append(resp.Docs, Doc{
			Key:              b.Key,
			Title:            b.Title,
			AuthorName:       b.Authors,
			FirstPublishYear: b.Year,
		})
	}
	return resp
}
