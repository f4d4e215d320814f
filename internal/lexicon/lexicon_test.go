package lexicon

import "testing"

func testEntries() []WordEntry {
	return []WordEntry{
		{Base: "run", POS: "verb", Level: A1},
		{Base: "run", POS: "noun", Level: B1},
		{Base: "beautiful", POS: "adjective", Level: B1},
		{Base: "paradigm", POS: "noun", Level: C1},
		{Base: "cat", POS: "noun", Level: A1},
	}
}

func TestLookup_ExactKeyWins(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	e, ok := lx.Lookup("run", "noun")
	if !ok {
		t.Fatal("run/noun not found")
	}
	if e.Level != B1 {
		t.Errorf("run/noun level = %s, want B1", e.Level)
	}
}

func TestLookup_FallsBackToBase(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	// POS variant that has no entry: falls back to base-only lookup.
	e, ok := lx.Lookup("run", "adjective")
	if !ok {
		t.Fatal("run fallback not found")
	}
	if e.Level != A1 {
		t.Errorf("fallback level = %s, want A1 (lowest policy)", e.Level)
	}
}

func TestLookupBase_TiebreakPolicies(t *testing.T) {
	lowest := NewLexicon(testEntries(), TiebreakLowest)
	highest := NewLexicon(testEntries(), TiebreakHighest)

	e, _ := lowest.LookupBase("run")
	if e.Level != A1 {
		t.Errorf("lowest policy level = %s, want A1", e.Level)
	}
	e, _ = highest.LookupBase("RUN")
	if e.Level != B1 {
		t.Errorf("highest policy level = %s, want B1", e.Level)
	}
}

func TestLookup_NotFoundIsSentinel(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	if _, ok := lx.Lookup("xyzzy", "noun"); ok {
		t.Error("absent word reported as found")
	}
	if d := lx.Difficulty("xyzzy", "noun"); d != 0 {
		t.Errorf("absent word difficulty = %d, want 0", d)
	}
}

func TestLookup_Idempotent(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	first, ok1 := lx.Lookup("beautiful", "adjective")
	second, ok2 := lx.Lookup("beautiful", "adjective")
	if !ok1 || !ok2 || first != second {
		t.Errorf("repeated lookups differ: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}

func TestDifficulty(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	if d := lx.Difficulty("cat", "noun"); d != 1 {
		t.Errorf("cat difficulty = %d, want 1", d)
	}
	if d := lx.Difficulty("paradigm", "noun"); d != 5 {
		t.Errorf("paradigm difficulty = %d, want 5", d)
	}
}

func TestWordsByLevel_SortedAndDeduplicated(t *testing.T) {
	entries := append(testEntries(), WordEntry{Base: "run", POS: "verb", Level: C2})
	lx := NewLexicon(entries, TiebreakLowest)

	b1 := lx.WordsByLevel(B1)
	want := []WordEntry{
		{Base: "beautiful", POS: "adjective", Level: B1},
		{Base: "run", POS: "noun", Level: B1},
	}
	if len(b1) != len(want) {
		t.Fatalf("len = %d, want %d", len(b1), len(want))
	}
	for i := range want {
		if b1[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, b1[i], want[i])
		}
	}
}

func TestUnusedWords_DisjointFromPresent(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)
	present := map[string]struct{}{"cat": {}, "run": {}}

	unused := lx.UnusedWords(A1, present)
	for base := range unused {
		if _, used := present[base]; used {
			t.Errorf("unused result contains present word %q", base)
		}
	}
	if len(unused) != 0 {
		t.Errorf("all A1 entries are present, got %v", unused)
	}

	c1 := lx.UnusedWords(C1, present)
	if _, ok := c1["paradigm"]; !ok {
		t.Error("paradigm should be unused at C1")
	}
	if c1["paradigm"] != "noun" {
		t.Errorf("paradigm POS = %q, want noun", c1["paradigm"])
	}
}

func TestGroupedCounts(t *testing.T) {
	lx := NewLexicon(testEntries(), TiebreakLowest)

	counts := lx.GroupedCounts()
	if counts[A1] != 2 || counts[B1] != 2 || counts[C1] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" b2 ")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if l != B2 {
		t.Errorf("level = %s, want B2", l)
	}
	if _, err := ParseLevel("D1"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelRank_AscendingOrder(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Levels[i].Rank() <= Levels[i-1].Rank() {
			t.Errorf("rank(%s) <= rank(%s)", Levels[i], Levels[i-1])
		}
	}
}
