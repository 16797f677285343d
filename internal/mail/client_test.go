package mail

import (
	"fmt"
	"testing"
	"time"
)

func TestBuildQuery(t *testing.T) {
	after := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		q    Query
		want string
	}{
		{
			name: "domains and cutoff",
			q:    Query{Domains: []string{"hdfcbank", "icicibank"}, After: after},
			want: fmt.Sprintf("from:hdfcbank OR from:icicibank after:%d", after.Unix()),
		},
		{
			name: "single domain",
			q:    Query{Domains: []string{"paytm"}},
			want: "from:paytm",
		},
		{
			name: "empty domains skipped",
			q:    Query{Domains: []string{"", "sbi", ""}, After: after},
			want: fmt.Sprintf("from:sbi after:%d", after.Unix()),
		},
		{
			name: "cutoff only",
			q:    Query{After: after},
			want: fmt.Sprintf("after:%d", after.Unix()),
		},
		{
			name: "empty query",
			q:    Query{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.q); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
