package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/doeshing/appgen/internal/domain"
)

func TestGenerationResult_ElapsedSeconds(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{1234 * time.Millisecond, 1.23},
		{1500 * time.Millisecond, 1.5},
		{2004 * time.Millisecond, 2},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		got := domain.GenerationResult{Elapsed: tt.elapsed}.ElapsedSeconds()
		if got != tt.want {
			t.Errorf("ElapsedSeconds(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestStageErrorKind(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("run: %w", domain.NewStageError(domain.KindPersistence, cause))

	if kind := domain.KindOf(err); kind != domain.KindPersistence {
		t.Fatalf("KindOf() = %q", kind)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if kind := domain.KindOf(cause); kind != "" {
		t.Fatalf("plain error kind = %q, want empty", kind)
	}
}

func TestPipelineStateTerminal(t *testing.T) {
	for _, s := range []domain.PipelineState{domain.StateIdle, domain.StateCompleted, domain.StateCompletedWithWarning, domain.StateFailed} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if domain.StateGenerating.Terminal() {
		t.Error("generating should not be terminal")
	}
}
