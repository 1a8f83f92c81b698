package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.TOC.HeaderPriority != 3 || cfg.TOC.Type != "github" || cfg.TOC.Header != "# Table of Contents" || !cfg.TOC.Write {
		t.Errorf("unexpected defaults: %+v", cfg.TOC)
	}
}

func TestTOCConfig_TypeNormalised(t *testing.T) {
	cfg := TOCConfig{HeaderPriority: 2, Type: " Bear ", Header: "# TOC"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mixed-case type should pass: %v", err)
	}
	if cfg.Type != "bear" {
		t.Errorf("type = %q, want %q", cfg.Type, "bear")
	}
}

func TestTOCConfig_InvalidType(t *testing.T) {
	cfg := TOCConfig{HeaderPriority: 3, Type: "confluence", Header: "# TOC"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown type should fail validation")
	}
}

func TestTOCConfig_HeaderPriorityTooLow(t *testing.T) {
	cfg := TOCConfig{HeaderPriority: 0, Type: "github", Header: "# TOC"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("header priority 0 should fail validation")
	}
	cfg.HeaderPriority = -2
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative header priority should fail validation")
	}
}

func TestTOCConfig_EmptyHeader(t *testing.T) {
	cfg := TOCConfig{HeaderPriority: 3, Type: "github"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("empty header should fail validation")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "header") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplicationConfig_LogFormat(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty log format should default: %v", err)
	}
	if cfg.LogFormat != LogFormatText {
		t.Errorf("log format = %q, want %q", cfg.LogFormat, LogFormatText)
	}
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log format should fail validation")
	}
}

func TestFullConfig_BearPathOnlyRequiredForBear(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Bear.DatabasePath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("github type should not need a bear path: %v", err)
	}
	cfg.TOC.Type = "bear"
	if err := cfg.Validate(); err == nil {
		t.Fatal("bear type without database path should fail")
	}
}
