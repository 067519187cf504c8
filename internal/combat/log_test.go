package combat

import (
	"fmt"
	"testing"
)

func TestBattleLogEvictsOldest(t *testing.T) {
	var log BattleLog
	for i := 1; i <= 9; i++ {
		log.Addf("line %d", i)
	}

	lines := log.Lines()
	if len(lines) != MaxLogLines {
		t.Fatalf("Expected %d lines, got %d", MaxLogLines, len(lines))
	}
	for i, line := range lines {
		want := fmt.Sprintf("line %d", i+2)
		if line != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, line)
		}
	}
}

func TestBattleLogClear(t *testing.T) {
	var log BattleLog
	log.Add("one")
	log.Add("two")
	log.Clear()
	if log.Len() != 0 {
		t.Errorf("Expected empty log after clear, got %d lines", log.Len())
	}
	log.Add("three")
	if log.Len() != 1 || log.Lines()[0] != "three" {
		t.Errorf("Expected single line after reuse, got %v", log.Lines())
	}
}
