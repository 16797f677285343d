// Package mail defines the contract between the polling service and the
// external mail-retrieval client. The concrete client (Gmail API, IMAP)
// lives outside this repository; spendlens only depends on the interface.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Message is one fetched email.
type Message struct {
	ID       string
	ThreadID string
	From     string
	Subject  string
	Body     string
	Date     time.Time
}

// Query describes one fetch: which sender domains to search, how far back,
// and how many messages at most.
type Query struct {
	Domains    []string
	After      time.Time
	MaxResults int
}

// Client fetches messages matching a query. Implementations are expected to
// return only transport errors; an empty result is not an error.
type Client interface {
	Fetch(ctx context.Context, q Query) ([]Message, error)
}

// BuildQuery renders a Query as a Gmail-style search string:
// "from:d1 OR from:d2 after:<unix>".
func BuildQuery(q Query) string {
	terms := make([]string, 0, len(q.Domains))
	for _, domain := range q.Domains {
		if domain == "" {
			continue
		}
		terms = append(terms, "from:"+domain)
	}

	query := strings.Join(terms, " OR ")
	if !q.After.IsZero() {
		if query != "" {
			query += " "
		}
		query += fmt.Sprintf("after:%d", q.After.Unix())
	}
	return query
}
