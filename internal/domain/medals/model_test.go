package medals

import "testing"

func TestSortAndRank_OrdersByGoldSilverBronze(t *testing.T) {
	t.Parallel()

	entries := []TableEntry{
		{Country: "Sweden", Gold: 5, Silver: 2, Bronze: 1, Total: 8},
		{Country: "Norway", Gold: 9, Silver: 7, Bronze: 6, Total: 22},
		{Country: "Austria", Gold: 5, Silver: 4, Bronze: 2, Total: 11},
		{Country: "Germany", Gold: 9, Silver: 5, Bronze: 3, Total: 17},
	}

	SortAndRank(entries)

	wantOrder := []string{"Norway", "Germany", "Austria", "Sweden"}
	for i, want := range wantOrder {
		if entries[i].Country != want {
			t.Fatalf("position %d = %s, want %s", i, entries[i].Country, want)
		}
		if entries[i].Rank != i+1 {
			t.Fatalf("%s rank = %d, want %d", want, entries[i].Rank, i+1)
		}
	}
}

func TestSortAndRank_TiesShareDenseRank(t *testing.T) {
	t.Parallel()

	entries := []TableEntry{
		{Country: "Italy", Gold: 3, Silver: 3, Bronze: 3},
		{Country: "France", Gold: 3, Silver: 3, Bronze: 3},
		{Country: "Japan", Gold: 2, Silver: 0, Bronze: 0},
	}

	SortAndRank(entries)

	if entries[0].Rank != 1 || entries[1].Rank != 1 {
		t.Fatalf("tied entries ranked %d/%d, want 1/1", entries[0].Rank, entries[1].Rank)
	}
	if entries[2].Rank != 2 {
		t.Fatalf("next distinct rank = %d, want dense 2", entries[2].Rank)
	}
}

func TestBreakdown_Matches(t *testing.T) {
	t.Parallel()

	b := Breakdown{Gold: 7, Silver: 11, Bronze: 6}

	if !b.Matches(TableEntry{Gold: 7, Silver: 11, Bronze: 6}) {
		t.Fatal("identical totals must match")
	}
	if b.Matches(TableEntry{Gold: 7, Silver: 12, Bronze: 6}) {
		t.Fatal("silver mismatch must not match")
	}
}

func TestCountryDetail_Totals(t *testing.T) {
	t.Parallel()

	d := CountryDetail{Wins: []MedalWin{
		{Tier: TierGold},
		{Tier: TierGold},
		{Tier: TierSilver},
		{Tier: TierBronze},
	}}

	gold, silver, bronze := d.Totals()
	if gold != 2 || silver != 1 || bronze != 1 {
		t.Fatalf("totals = %d/%d/%d, want 2/1/1", gold, silver, bronze)
	}
}
