// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookscout CLI:
// the normalized Book record and the configuration tree.
package types

// Book is a normalized book record extracted from an Open Library
// search document. It is what the history store and query files persist.
type Book struct {
	// Key is the Open Library work key (e.g. "/works/OL45883W").
	Key string `json:"key" yaml:"key"`

	// Title is the book title as returned by the API.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the first publication year, zero when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`
}
