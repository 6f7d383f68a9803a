package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

func TestGameConfigCyclesAlgorithms(t *testing.T) {
	gc, err := gameConfig(1, 3, config.Hard, []string{registry.Greedy, registry.Random})
	if err != nil {
		t.Fatalf("gameConfig: %v", err)
	}

	expected := []string{"", registry.Greedy, registry.Random, registry.Greedy}
	if len(gc.Algorithms) != len(expected) {
		t.Fatalf("algorithms = %v, expected %v", gc.Algorithms, expected)
	}
	for i := range expected {
		if gc.Algorithms[i] != expected[i] {
			t.Errorf("slot %d = %q, expected %q", i, gc.Algorithms[i], expected[i])
		}
	}
	if gc.Players != 1 || gc.Bots != 3 || gc.Difficulty != config.Hard {
		t.Errorf("unexpected config %+v", gc)
	}
}

func TestGameConfigRejectsUnknownAlgorithm(t *testing.T) {
	tests := []struct {
		name       string
		algorithms []string
		wantErr    bool
	}{
		{"none given", nil, false},
		{"all known", []string{registry.Heuristic, registry.Straight}, false},
		{"unknown", []string{registry.Heuristic, "minimax"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gameConfig(0, 2, config.Normal, tt.algorithms)
			if (err != nil) != tt.wantErr {
				t.Fatalf("gameConfig error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "minimax") {
				t.Errorf("error %q should name the algorithm", err)
			}
		})
	}
}
