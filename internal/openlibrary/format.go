// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openlibrary

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Display sentinels. FirstResult returns these exact strings, so they are
// part of the CLI's observable contract.
const (
	noResultsMsg     = "No results found."
	unknownTitle     = "Unknown Title"
	unknownAuthor    = "Unknown Author"
	processingErrMsg = "An error occurred while processing your request."
)

// FirstResult renders the first document as a two-line display string:
//
//	Title: <title>
//	Author: <first author>
//
// Missing fields fall back to "Unknown Title" / "Unknown Author". An
// empty docs list yields "No results found."; a nil response yields a
// generic error message.
func FirstResult(resp *SearchResponse) string {
	if resp == nil {
		return processingErrMsg
	}
	if len(resp.Docs) == 0 {
		return noResultsMsg
	}

	doc := resp.Docs[0]
	title := doc.Title
	if title == "" {
		title = unknownTitle
	}
	author := unknownAuthor
	if len(doc.AuthorName) > 0 {
		author = doc.AuthorName[0]
	}
	return fmt.Sprintf("Title: %s\nAuthor: %s", title, author)
}

// FormatTable writes the documents as a human-readable table to w.
func FormatTable(resp *SearchResponse, w io.Writer) {
	if resp == nil || len(resp.Docs) == 0 {
		fmt.Fprintln(w, noResultsMsg)
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-24s  %s\n", "Rank", "Title", "Authors", "Year")
	fmt.Fprintln(w, strings.Repeat("-", 86))

	for i, d := range resp.Docs {
		title := d.Title
		if title == "" {
			title = unknownTitle
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		year := ""
		if d.FirstPublishYear > 0 {
			year = strconv.Itoa(d.FirstPublishYear)
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-24s  %s\n", i+1, title, formatAuthors(d.AuthorName), year)
	}

	fmt.Fprintf(w, "\n%d of %d results\n", len(resp.Docs), resp.NumFound)
}

// FormatJSON writes the documents as indented JSON to w.
func FormatJSON(resp *SearchResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if resp == nil {
		return enc.Encode([]Doc{})
	}
	return enc.Encode(resp.Docs)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return unknownAuthor
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
