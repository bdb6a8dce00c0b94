package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "nba-projection-service", "dev")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "nba-projection-service" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "dev" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldPlayer, "Jayson Tatum")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldPlayer {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldSource, FieldRequestID, FieldPath, FieldMethod,
		FieldStatusCode, FieldDate, FieldCount, FieldDurationMS, FieldPlayer, FieldStat,
		FieldFile, FieldClientIP, FieldQuery,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate log field key %q", k)
		}
		seen[k] = true
	}
}
