package medals

import "sort"

const (
	TierGold   = "gold"
	TierSilver = "silver"
	TierBronze = "bronze"
)

// TableEntry is one nation's cumulative standing.
type TableEntry struct {
	Rank    int    `json:"rank"`
	Country string `json:"country"`
	Code    string `json:"code"`
	Flag    string `json:"flag"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
	Total   int    `json:"total"`
}

// SortAndRank orders entries by gold, then silver, then bronze, all
// descending, and re-derives dense ranks from the sorted order: tied medal
// lines share a rank and the next distinct line increments it by one.
// Sources are only approximately pre-sorted, so this runs on every extract.
func SortAndRank(entries []TableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Gold != entries[j].Gold {
			return entries[i].Gold > entries[j].Gold
		}
		if entries[i].Silver != entries[j].Silver {
			return entries[i].Silver > entries[j].Silver
		}
		return entries[i].Bronze > entries[j].Bronze
	})

	rank := 0
	for i := range entries {
		if i == 0 || !sameMedalLine(entries[i], entries[i-1]) {
			rank++
		}
		entries[i].Rank = rank
	}
}

func sameMedalLine(a, b TableEntry) bool {
	return a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze
}

// SportTally is one discipline's medal line inside a national breakdown.
type SportTally struct {
	Sport  string `json:"sport"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
}

// Breakdown is a nation's medals grouped by discipline.
type Breakdown struct {
	Country string       `json:"country"`
	Code    string       `json:"code"`
	Sports  []SportTally `json:"sports"`
	Gold    int          `json:"gold"`
	Silver  int          `json:"silver"`
	Bronze  int          `json:"bronze"`
	Total   int          `json:"total"`
}

// SortSports orders the breakdown's disciplines by gold, silver, bronze
// descending, name as the final tiebreaker for deterministic output.
func (b *Breakdown) SortSports() {
	sort.SliceStable(b.Sports, func(i, j int) bool {
		si, sj := b.Sports[i], b.Sports[j]
		if si.Gold != sj.Gold {
			return si.Gold > sj.Gold
		}
		if si.Silver != sj.Silver {
			return si.Silver > sj.Silver
		}
		if si.Bronze != sj.Bronze {
			return si.Bronze > sj.Bronze
		}
		return si.Sport < sj.Sport
	})
}

// Matches reports whether the breakdown's summed tallies equal the medal
// table's line for the same nation. A mismatch means the derivation missed
// or double-counted a winner and the caller should prefer authoritative data.
func (b Breakdown) Matches(entry TableEntry) bool {
	return b.Gold == entry.Gold && b.Silver == entry.Silver && b.Bronze == entry.Bronze
}

// MedalWin is one medal inside a country's detail index.
type MedalWin struct {
	Sport    string `json:"sport"`
	Event    string `json:"event"`
	Tier     string `json:"tier"`
	Medalist string `json:"medalist"`
}

// CountryDetail is a country's full medal-event list, built in winners-list
// order.
type CountryDetail struct {
	Code    string     `json:"code"`
	Country string     `json:"country"`
	Flag    string     `json:"flag"`
	Wins    []MedalWin `json:"wins"`
}

// Totals sums the detail's wins per tier.
func (d CountryDetail) Totals() (gold, silver, bronze int) {
	for _, win := range d.Wins {
		switch win.Tier {
		case TierGold:
			gold++
		case TierSilver:
			silver++
		case TierBronze:
			bronze++
		}
	}
	return gold, silver, bronze
}
