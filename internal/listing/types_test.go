package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"NEW", "OLD"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := ParseStatus("VIEWED"); err == nil {
		t.Error("ParseStatus(\"VIEWED\") expected error, got nil")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Error("ParseStatus(\"\") expected error, got nil")
	}
}

func TestKey(t *testing.T) {
	withID := Listing{ID: 123, Link: "https://hh.ru/vacancy/123"}
	assert.Equal(t, "id:123", withID.Key())

	linkOnly := Listing{Link: "https://hh.ru/vacancy/123"}
	assert.Equal(t, "https://hh.ru/vacancy/123", linkOnly.Key())
}

func TestRecencyTime_PrefersLoadedAt(t *testing.T) {
	l := Listing{PublishedAt: "2024-01-01", LoadedAt: "2024-01-02 10:30:00"}
	want, _ := time.Parse(TimeLayout, "2024-01-02 10:30:00")
	assert.Equal(t, want, l.RecencyTime())
}

func TestRecencyTime_FallsBackToPublishedAt(t *testing.T) {
	l := Listing{PublishedAt: "2024-01-01", LoadedAt: "garbage"}
	want, _ := time.Parse(DateLayout, "2024-01-01")
	assert.Equal(t, want, l.RecencyTime())
}

func TestRecencyTime_MalformedSortsOldest(t *testing.T) {
	l := Listing{PublishedAt: "not-a-date", LoadedAt: ""}
	assert.True(t, l.RecencyTime().IsZero())
}
