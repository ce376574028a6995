// Package staticdata ships the authoritative fallback content served when a
// category's live providers are exhausted. Captured through competition day 8,
// revise alongside the official Milano Cortina program.
package staticdata

import (
	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/media"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
)

func SeedMedalTable() []medals.TableEntry {
	return []medals.TableEntry{
		{Rank: 1, Country: "Norway", Code: "NOR", Flag: "🇳🇴", Gold: 8, Silver: 5, Bronze: 5, Total: 18},
		{Rank: 2, Country: "Germany", Code: "GER", Flag: "🇩🇪", Gold: 6, Silver: 5, Bronze: 4, Total: 15},
		{Rank: 3, Country: "United States", Code: "USA", Flag: "🇺🇸", Gold: 5, Silver: 6, Bronze: 4, Total: 15},
		{Rank: 4, Country: "Netherlands", Code: "NED", Flag: "🇳🇱", Gold: 5, Silver: 2, Bronze: 2, Total: 9},
		{Rank: 5, Country: "Austria", Code: "AUT", Flag: "🇦🇹", Gold: 4, Silver: 5, Bronze: 3, Total: 12},
		{Rank: 6, Country: "Sweden", Code: "SWE", Flag: "🇸🇪", Gold: 4, Silver: 3, Bronze: 2, Total: 9},
		{Rank: 7, Country: "Italy", Code: "ITA", Flag: "🇮🇹", Gold: 3, Silver: 4, Bronze: 4, Total: 11},
		{Rank: 8, Country: "France", Code: "FRA", Flag: "🇫🇷", Gold: 3, Silver: 3, Bronze: 2, Total: 8},
		{Rank: 9, Country: "Switzerland", Code: "SUI", Flag: "🇨🇭", Gold: 3, Silver: 2, Bronze: 3, Total: 8},
		{Rank: 10, Country: "Canada", Code: "CAN", Flag: "🇨🇦", Gold: 2, Silver: 4, Bronze: 5, Total: 11},
		{Rank: 11, Country: "Japan", Code: "JPN", Flag: "🇯🇵", Gold: 2, Silver: 3, Bronze: 3, Total: 8},
		{Rank: 12, Country: "China", Code: "CHN", Flag: "🇨🇳", Gold: 2, Silver: 2, Bronze: 1, Total: 5},
		{Rank: 13, Country: "South Korea", Code: "KOR", Flag: "🇰🇷", Gold: 1, Silver: 2, Bronze: 1, Total: 4},
	}
}

// SeedBreakdown sums to the SeedMedalTable United States line. Keep the two
// in lockstep or the validation pass flags every offline snapshot.
func SeedBreakdown() medals.Breakdown {
	return medals.Breakdown{
		Country: "United States",
		Code:    "USA",
		Sports: []medals.SportTally{
			{Sport: "Speed skating", Gold: 2, Silver: 2, Bronze: 0},
			{Sport: "Figure skating", Gold: 2, Silver: 1, Bronze: 0},
			{Sport: "Alpine skiing", Gold: 1, Silver: 2, Bronze: 1},
			{Sport: "Cross-country skiing", Gold: 0, Silver: 1, Bronze: 1},
			{Sport: "Snowboarding", Gold: 0, Silver: 0, Bronze: 2},
		},
		Gold:   5,
		Silver: 6,
		Bronze: 4,
		Total:  15,
	}
}

func SeedWinners() []results.WinnerEvent {
	return []results.WinnerEvent{
		{Sport: "Biathlon", Event: "Mixed relay",
			Gold: "Norway", Silver: "France", Bronze: "Germany"},
		{Sport: "Speed skating", Event: "Men's 5000 m",
			Gold: "Patrick Roest (NED)", Silver: "Davide Ghiotto (ITA)", Bronze: "Sander Eitrem (NOR)"},
		{Sport: "Cross-country skiing", Event: "Women's skiathlon",
			Gold: "Therese Johaug (NOR)", Silver: "Jessie Diggins (USA)", Bronze: "Frida Karlsson (SWE)"},
		{Sport: "Ski jumping", Event: "Men's normal hill individual",
			Gold: "Ryoyu Kobayashi (JPN)", Silver: "Stefan Kraft (AUT)", Bronze: "Andreas Wellinger (GER)"},
		{Sport: "Alpine skiing", Event: "Men's downhill",
			Gold: "Marco Odermatt (SUI)", Silver: "Vincent Kriechmayr (AUT)", Bronze: "Ryan Cochran-Siegle (USA)"},
		{Sport: "Speed skating", Event: "Women's 3000 m",
			Gold: "Joy Beune (NED)", Silver: "Ragne Wiklund (NOR)", Bronze: "Isabelle Weidemann (CAN)"},
		{Sport: "Snowboarding", Event: "Women's slopestyle",
			Gold: "Anna Gasser (AUT)", Silver: "Zoi Sadowski-Synnott (NZL)", Bronze: "Julia Marino (USA)"},
		{Sport: "Figure skating", Event: "Team event",
			Gold: "United States", Silver: "Japan", Bronze: "Italy"},
		{Sport: "Luge", Event: "Men's singles",
			Gold: "Max Langenhan (GER)", Silver: "Jonas Müller (AUT)", Bronze: "Dominik Fischnaller (ITA)"},
		{Sport: "Alpine skiing", Event: "Women's giant slalom",
			Gold: "Federica Brignone (ITA)", Silver: "Mikaela Shiffrin (USA)", Bronze: "Lara Gut-Behrami (SUI)"},
		{Sport: "Curling", Event: "Mixed doubles",
			Gold: "Italy", Silver: "Norway", Bronze: "Sweden"},
		{Sport: "Short track", Event: "Mixed team relay",
			Gold: "China", Silver: "Netherlands", Bronze: "South Korea"},
		{Sport: "Biathlon", Event: "Women's 15 km individual",
			Gold: "Lisa Vittozzi (ITA)", Silver: "Franziska Preuß (GER)", Bronze: "Justine Braisaz-Bouchet (FRA)"},
		{Sport: "Speed skating", Event: "Men's 1500 m",
			Gold: "Jordan Stolz (USA)", Silver: "Kjeld Nuis (NED)", Bronze: "Connor Howe (CAN)"},
		{Sport: "Snowboarding", Event: "Men's halfpipe",
			Gold: "Ayumu Hirano (JPN)", Silver: "Scotty James (AUS)", Bronze: "Chase Josey (USA)"},
		{Sport: "Biathlon", Event: "Men's 20 km individual",
			Gold: "Sturla Holm Lægreid (NOR)", Silver: "Quentin Fillon Maillet (FRA)", Bronze: "Tommaso Giacomel (ITA)"},
		{Sport: "Luge", Event: "Women's singles",
			Gold: "Julia Taubitz (GER)", Silver: "Madeleine Egle (AUT)", Bronze: "Emily Sweeney (USA)"},
		{Sport: "Alpine skiing", Event: "Men's super-G",
			Gold: "Marco Odermatt (SUI)", Silver: "Raphael Haaser (AUT)", Bronze: "Adrian Smiseth Sejersted (NOR)"},
		{Sport: "Figure skating", Event: "Men's singles",
			Gold: "Ilia Malinin (USA)", Silver: "Yuma Kagiyama (JPN)", Bronze: "Adam Siao Him Fa (FRA)"},
		{Sport: "Cross-country skiing", Event: "Women's sprint free",
			Gold: "Jonna Sundling (SWE)", Silver: "Kristine Stavås Skistad (NOR)", Bronze: "Jessie Diggins (USA)"},
	}
}

// SeedCountryDetails carries the spotlighted teams only, wins in the same
// order the winners list yields them.
func SeedCountryDetails() []medals.CountryDetail {
	return []medals.CountryDetail{
		{Code: "USA", Country: "United States", Flag: "🇺🇸", Wins: []medals.MedalWin{
			{Sport: "Cross-country skiing", Event: "Women's skiathlon", Tier: medals.TierSilver, Medalist: "Jessie Diggins (USA)"},
			{Sport: "Alpine skiing", Event: "Men's downhill", Tier: medals.TierBronze, Medalist: "Ryan Cochran-Siegle (USA)"},
			{Sport: "Snowboarding", Event: "Women's slopestyle", Tier: medals.TierBronze, Medalist: "Julia Marino (USA)"},
			{Sport: "Figure skating", Event: "Team event", Tier: medals.TierGold, Medalist: "United States"},
			{Sport: "Alpine skiing", Event: "Women's giant slalom", Tier: medals.TierSilver, Medalist: "Mikaela Shiffrin (USA)"},
			{Sport: "Speed skating", Event: "Men's 1500 m", Tier: medals.TierGold, Medalist: "Jordan Stolz (USA)"},
			{Sport: "Snowboarding", Event: "Men's halfpipe", Tier: medals.TierBronze, Medalist: "Chase Josey (USA)"},
			{Sport: "Figure skating", Event: "Men's singles", Tier: medals.TierGold, Medalist: "Ilia Malinin (USA)"},
			{Sport: "Cross-country skiing", Event: "Women's sprint free", Tier: medals.TierBronze, Medalist: "Jessie Diggins (USA)"},
		}},
		{Code: "NOR", Country: "Norway", Flag: "🇳🇴", Wins: []medals.MedalWin{
			{Sport: "Biathlon", Event: "Mixed relay", Tier: medals.TierGold, Medalist: "Norway"},
			{Sport: "Speed skating", Event: "Men's 5000 m", Tier: medals.TierBronze, Medalist: "Sander Eitrem (NOR)"},
			{Sport: "Cross-country skiing", Event: "Women's skiathlon", Tier: medals.TierGold, Medalist: "Therese Johaug (NOR)"},
			{Sport: "Speed skating", Event: "Women's 3000 m", Tier: medals.TierSilver, Medalist: "Ragne Wiklund (NOR)"},
			{Sport: "Curling", Event: "Mixed doubles", Tier: medals.TierSilver, Medalist: "Norway"},
			{Sport: "Biathlon", Event: "Men's 20 km individual", Tier: medals.TierGold, Medalist: "Sturla Holm Lægreid (NOR)"},
			{Sport: "Alpine skiing", Event: "Men's super-G", Tier: medals.TierBronze, Medalist: "Adrian Smiseth Sejersted (NOR)"},
			{Sport: "Cross-country skiing", Event: "Women's sprint free", Tier: medals.TierSilver, Medalist: "Kristine Stavås Skistad (NOR)"},
		}},
		{Code: "ITA", Country: "Italy", Flag: "🇮🇹", Wins: []medals.MedalWin{
			{Sport: "Speed skating", Event: "Men's 5000 m", Tier: medals.TierSilver, Medalist: "Davide Ghiotto (ITA)"},
			{Sport: "Figure skating", Event: "Team event", Tier: medals.TierBronze, Medalist: "Italy"},
			{Sport: "Luge", Event: "Men's singles", Tier: medals.TierBronze, Medalist: "Dominik Fischnaller (ITA)"},
			{Sport: "Alpine skiing", Event: "Women's giant slalom", Tier: medals.TierGold, Medalist: "Federica Brignone (ITA)"},
			{Sport: "Curling", Event: "Mixed doubles", Tier: medals.TierGold, Medalist: "Italy"},
			{Sport: "Biathlon", Event: "Women's 15 km individual", Tier: medals.TierGold, Medalist: "Lisa Vittozzi (ITA)"},
			{Sport: "Biathlon", Event: "Men's 20 km individual", Tier: medals.TierBronze, Medalist: "Tommaso Giacomel (ITA)"},
		}},
	}
}

// SeedLatestResults mirrors the derived grouping, newest day first.
func SeedLatestResults() []results.DayResults {
	return []results.DayResults{
		{Day: 8, DateLabel: "Feb 13", Events: []results.WinnerEvent{
			{Sport: "Alpine skiing", Event: "Men's super-G",
				Gold: "Marco Odermatt (SUI)", Silver: "Raphael Haaser (AUT)", Bronze: "Adrian Smiseth Sejersted (NOR)"},
			{Sport: "Figure skating", Event: "Men's singles",
				Gold: "Ilia Malinin (USA)", Silver: "Yuma Kagiyama (JPN)", Bronze: "Adam Siao Him Fa (FRA)"},
			{Sport: "Cross-country skiing", Event: "Women's sprint free",
				Gold: "Jonna Sundling (SWE)", Silver: "Kristine Stavås Skistad (NOR)", Bronze: "Jessie Diggins (USA)"},
		}},
		{Day: 7, DateLabel: "Feb 12", Events: []results.WinnerEvent{
			{Sport: "Snowboarding", Event: "Men's halfpipe",
				Gold: "Ayumu Hirano (JPN)", Silver: "Scotty James (AUS)", Bronze: "Chase Josey (USA)"},
			{Sport: "Biathlon", Event: "Men's 20 km individual",
				Gold: "Sturla Holm Lægreid (NOR)", Silver: "Quentin Fillon Maillet (FRA)", Bronze: "Tommaso Giacomel (ITA)"},
			{Sport: "Luge", Event: "Women's singles",
				Gold: "Julia Taubitz (GER)", Silver: "Madeleine Egle (AUT)", Bronze: "Emily Sweeney (USA)"},
		}},
		{Day: 6, DateLabel: "Feb 11", Events: []results.WinnerEvent{
			{Sport: "Biathlon", Event: "Women's 15 km individual",
				Gold: "Lisa Vittozzi (ITA)", Silver: "Franziska Preuß (GER)", Bronze: "Justine Braisaz-Bouchet (FRA)"},
			{Sport: "Speed skating", Event: "Men's 1500 m",
				Gold: "Jordan Stolz (USA)", Silver: "Kjeld Nuis (NED)", Bronze: "Connor Howe (CAN)"},
		}},
	}
}

// SeedHeadlines points readers at pages that stay correct without a feed.
func SeedHeadlines() []media.Headline {
	return []media.Headline{
		{Title: "Milano Cortina 2026 live updates", URL: "https://www.olympics.com/en/milano-cortina-2026", Source: "Olympics.com", DateLabel: "Feb 2026"},
		{Title: "Official medal standings", URL: "https://www.olympics.com/en/milano-cortina-2026/medals", Source: "Olympics.com", DateLabel: "Feb 2026"},
		{Title: "Competition schedule and results", URL: "https://www.olympics.com/en/milano-cortina-2026/schedule", Source: "Olympics.com", DateLabel: "Feb 2026"},
		{Title: "Team USA news and features", URL: "https://www.nbcolympics.com", Source: "NBC Olympics", DateLabel: "Feb 2026"},
	}
}

func SeedVideos() []media.Video {
	return []media.Video{
		{ID: "olympics-channel", Title: "Olympics highlights and replays", URL: "https://www.youtube.com/@Olympics", Source: "Olympics", DateLabel: "Feb 2026", Emoji: "🏅"},
		{ID: "milano-cortina-playlist", Title: "Milano Cortina 2026 official playlist", URL: "https://www.youtube.com/@Olympics/playlists", Source: "Olympics", DateLabel: "Feb 2026", Emoji: "⛷️"},
		{ID: "nbc-olympics", Title: "NBC Olympics highlights", URL: "https://www.youtube.com/@NBCOlympics", Source: "NBC Olympics", DateLabel: "Feb 2026", Emoji: "🏒"},
		{ID: "eurosport-winter", Title: "Eurosport winter sports", URL: "https://www.youtube.com/@eurosport", Source: "Eurosport", DateLabel: "Feb 2026", Emoji: "⛸️"},
		{ID: "fis-alpine", Title: "FIS Alpine World Cup channel", URL: "https://www.youtube.com/@fisalpine", Source: "FIS", DateLabel: "Feb 2026", Emoji: "🎿"},
	}
}

func SeedAthletes() []snapshot.AthleteSpotlight {
	return []snapshot.AthleteSpotlight{
		{Name: "Jordan Stolz", Sport: "Speed skating", Medal: medals.TierGold, MedalEmoji: "🥇", Bio: "Won gold in Men's 1500 m"},
		{Name: "Ilia Malinin", Sport: "Figure skating", Medal: medals.TierGold, MedalEmoji: "🥇", Bio: "Won gold in Men's singles"},
		{Name: "Mikaela Shiffrin", Sport: "Alpine skiing", Medal: medals.TierSilver, MedalEmoji: "🥈", Bio: "Won silver in Women's giant slalom"},
		{Name: "Jessie Diggins", Sport: "Cross-country skiing", Medal: medals.TierSilver, MedalEmoji: "🥈", Bio: "Won silver in Women's skiathlon"},
	}
}
