// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openlibrary

import (
	"github.com/pdiddy/bookscout/pkg/types"
)

// SearchResponse is the decoded JSON payload of a search call.
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Start    int   `json:"start"`
	Docs     []Doc `json:"docs"`
}

// Doc is one book record ("document") in a search response. Every field
// is optional; absent fields decode to their zero values.
type Doc struct {
	Key              string   `json:"key,omitempty"`
	Title            string   `json:"title,omitempty"`
	AuthorName       []string `json:"author_name,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
}

// Book converts the document into the normalized record persisted by the
// history store and query files.
func (d Doc) Book() types.Book {
	return types.Book{
		Key:     d.Key,
		Title:   d.Title,
		Authors: append([]string(nil), d.AuthorName...),
		Year:    d.FirstPublishYear,
	}
}
