package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/homonym-flow/internal/catalog"
	"github.com/nguyentantai21042004/homonym-flow/internal/config"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

func TestFixText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		normalize bool
		want      string
	}{
		{"corrects", "I no the answer.", false, "I know the answer.\n"},
		{"normalizes", "i no the answer.this is it", true, "I know the answer. This is it\n"},
		{"blank", "", false, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			var out bytes.Buffer
			if err := fixText(context.Background(), cfg, logger.Nop(), strings.NewReader(tt.input), &out, tt.normalize); err != nil {
				t.Fatalf("fixText() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("fixText() = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestFixTextSkipsLedger(t *testing.T) {
	// An address nothing answers on; fix must not try to reach it
	cfg := &config.Config{Ledger: config.LedgerConfig{RedisAddr: "10.255.255.1:6379"}}

	start := time.Now()
	var out bytes.Buffer
	if err := fixText(context.Background(), cfg, logger.Nop(), strings.NewReader("We went their yesterday."), &out, false); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("fixText() took %s, want no ledger round trip", elapsed)
	}
	if out.String() != "We went there yesterday.\n" {
		t.Errorf("fixText() = %q", out.String())
	}
}

func TestFixTextBadRule(t *testing.T) {
	cfg := &config.Config{Correction: config.CorrectionConfig{
		Rules: []catalog.Definition{{Canonical: "peace", Alternatives: []string{"piece"}}},
	}}
	var out bytes.Buffer
	if err := fixText(context.Background(), cfg, logger.Nop(), strings.NewReader("x"), &out, false); err == nil {
		t.Fatal("fixText() should fail when a configured rule has no justify patterns")
	}
}
