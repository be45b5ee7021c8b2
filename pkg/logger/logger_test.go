package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetConcurrent(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get() = nil, expected a non-nil logger")
	}

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if Get() == nil {
					t.Errorf("Get() = nil in goroutine %d", g)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestConfigureSetsLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if Configure(zerolog.Disabled) != Get() {
		t.Error("Configure and Get returned different loggers")
	}
	if zerolog.GlobalLevel() != zerolog.Disabled {
		t.Errorf("global level = %v, want disabled", zerolog.GlobalLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
