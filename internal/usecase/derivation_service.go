package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/country"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/medals"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/results"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/snapshot"
	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

const (
	latestResultsDays = 3
	maxSpotlights     = 8
)

var codeTokenRegex = regexp.MustCompile(`\b[A-Z]{3}\b`)

var tierEmojis = map[string]string{
	medals.TierGold:   "🥇",
	medals.TierSilver: "🥈",
	medals.TierBronze: "🥉",
}

// DerivationService builds the secondary views of one winners list: the
// target nation's per-sport breakdown, the per-country detail index, the
// latest-results day grouping and the athlete spotlights.
type DerivationService struct {
	countries *country.Table
	logger    *logging.Logger
}

func NewDerivationService(countries *country.Table, logger *logging.Logger) *DerivationService {
	if countries == nil {
		countries = country.NewDefaultTable()
	}
	if logger == nil {
		logger = logging.Default().Named("derivation")
	}
	return &DerivationService{countries: countries, logger: logger}
}

// NationalBreakdown tallies one nation's medals per sport from the winners
// list. The caller cross-validates the summed tallies against the medal
// table before trusting the result.
func (s *DerivationService) NationalBreakdown(ctx context.Context, winners []results.WinnerEvent, nation country.Ref) (medals.Breakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DerivationService.NationalBreakdown")
	defer span.End()

	if len(winners) == 0 {
		return medals.Breakdown{}, fmt.Errorf("%w: national breakdown", ErrEmptyDerivation)
	}

	tallies := make(map[string]*medals.SportTally)
	var order []string
	bump := func(sport, text, tier string) {
		if !mentionsNation(text, nation) {
			return
		}
		tally, ok := tallies[sport]
		if !ok {
			tally = &medals.SportTally{Sport: sport}
			tallies[sport] = tally
			order = append(order, sport)
		}
		switch tier {
		case medals.TierGold:
			tally.Gold++
		case medals.TierSilver:
			tally.Silver++
		case medals.TierBronze:
			tally.Bronze++
		}
	}

	for _, w := range winners {
		bump(w.Sport, w.Gold, medals.TierGold)
		bump(w.Sport, w.Silver, medals.TierSilver)
		bump(w.Sport, w.Bronze, medals.TierBronze)
	}

	breakdown := medals.Breakdown{Country: nation.Name, Code: nation.Code}
	for _, sport := range order {
		tally := tallies[sport]
		breakdown.Sports = append(breakdown.Sports, *tally)
		breakdown.Gold += tally.Gold
		breakdown.Silver += tally.Silver
		breakdown.Bronze += tally.Bronze
	}
	breakdown.Total = breakdown.Gold + breakdown.Silver + breakdown.Bronze
	breakdown.SortSports()

	s.logger.DebugContext(ctx, "national breakdown derived",
		"nation", nation.Code, "sports", len(breakdown.Sports), "medals", breakdown.Total)
	return breakdown, nil
}

// CountryDetails indexes every medalist text by resolved country. An
// explicit known 3-letter code wins over a full-name substring match;
// texts resolving to neither are skipped. Records keep winners-list order,
// countries appear in order of their first medal.
func (s *DerivationService) CountryDetails(ctx context.Context, winners []results.WinnerEvent) ([]medals.CountryDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DerivationService.CountryDetails")
	defer span.End()

	if len(winners) == 0 {
		return nil, fmt.Errorf("%w: country details", ErrEmptyDerivation)
	}

	index := make(map[string]*medals.CountryDetail)
	var order []string
	record := func(w results.WinnerEvent, tier, text string) {
		code := s.resolveCode(text)
		if code == "" {
			return
		}
		detail, ok := index[code]
		if !ok {
			detail = &medals.CountryDetail{Code: code}
			if ref, known := s.countries.ByCode(code); known {
				detail.Country = ref.Name
				detail.Flag = ref.Flag
			}
			index[code] = detail
			order = append(order, code)
		}
		detail.Wins = append(detail.Wins, medals.MedalWin{
			Sport:    w.Sport,
			Event:    w.Event,
			Tier:     tier,
			Medalist: strings.TrimSpace(text),
		})
	}

	for _, w := range winners {
		record(w, medals.TierGold, w.Gold)
		record(w, medals.TierSilver, w.Silver)
		record(w, medals.TierBronze, w.Bronze)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no medalist text resolved to a country", ErrEmptyDerivation)
	}

	details := make([]medals.CountryDetail, 0, len(order))
	for _, code := range order {
		details = append(details, *index[code])
	}

	s.logger.DebugContext(ctx, "country details derived", "countries", len(details))
	return details, nil
}

// LatestResults partitions the winners list into the last few competition
// days. The winners source carries no per-day timestamps, so the partition
// is proportional: total events over elapsed days, newest slice assigned to
// the newest day, newest day first.
func (s *DerivationService) LatestResults(ctx context.Context, winners []results.WinnerEvent, day int) ([]results.DayResults, error) {
	_, span := startUsecaseSpan(ctx, "usecase.DerivationService.LatestResults")
	defer span.End()

	if len(winners) == 0 {
		return nil, fmt.Errorf("%w: latest results", ErrEmptyDerivation)
	}
	if day < 1 {
		day = 1
	}

	perDay := len(winners) / day
	if perDay < 1 {
		perDay = 1
	}

	var days []results.DayResults
	for i := 0; i < latestResultsDays; i++ {
		dayNum := day - i
		if dayNum < 1 {
			break
		}
		end := len(winners) - perDay*i
		if end <= 0 {
			break
		}
		start := end - perDay
		if start < 0 {
			start = 0
		}
		chunk := winners[start:end]
		if len(chunk) == 0 {
			continue
		}
		days = append(days, results.DayResults{
			Day:       dayNum,
			DateLabel: games.DayDate(dayNum).Format("Jan 2"),
			Events:    chunk,
		})
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: latest results", ErrEmptyDerivation)
	}
	return days, nil
}

// AthleteSpotlights picks the target nation's medalists out of the winners
// list, first medal first, one entry per athlete, capped at eight. Team
// entries that name only the nation produce no spotlight.
func (s *DerivationService) AthleteSpotlights(ctx context.Context, winners []results.WinnerEvent, nation country.Ref) ([]snapshot.AthleteSpotlight, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DerivationService.AthleteSpotlights")
	defer span.End()

	if len(winners) == 0 {
		return nil, fmt.Errorf("%w: athlete spotlights", ErrEmptyDerivation)
	}

	seen := make(map[string]bool)
	var spotlights []snapshot.AthleteSpotlight
	add := func(w results.WinnerEvent, tier, text string) {
		if len(spotlights) >= maxSpotlights || !mentionsNation(text, nation) {
			return
		}
		for _, name := range athleteNames(text) {
			if len(spotlights) >= maxSpotlights {
				return
			}
			if _, isCountry := s.countries.MatchSegment(name); isCountry {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			spotlights = append(spotlights, snapshot.AthleteSpotlight{
				Name:       name,
				Sport:      w.Sport,
				Medal:      tier,
				MedalEmoji: tierEmojis[tier],
				Bio:        fmt.Sprintf("Won %s in %s", tier, w.Event),
			})
		}
	}

	for _, w := range winners {
		add(w, medals.TierGold, w.Gold)
		add(w, medals.TierSilver, w.Silver)
		add(w, medals.TierBronze, w.Bronze)
	}
	if len(spotlights) == 0 {
		return nil, fmt.Errorf("%w: no %s medalists found", ErrEmptyDerivation, nation.Code)
	}

	s.logger.DebugContext(ctx, "athlete spotlights derived",
		"nation", nation.Code, "athletes", len(spotlights))
	return spotlights, nil
}

// resolveCode pulls the country out of one medalist text. An explicit
// 3-letter token that is a known code wins; otherwise the text is scanned
// for an embedded full country name.
func (s *DerivationService) resolveCode(text string) string {
	if results.IsPlaceholder(text) {
		return ""
	}
	for _, token := range codeTokenRegex.FindAllString(text, -1) {
		if ref, ok := s.countries.ByCode(token); ok {
			return ref.Code
		}
	}
	if ref, ok := s.countries.FindNameIn(text); ok {
		return ref.Code
	}
	return ""
}

// mentionsNation reports whether a medalist text names the nation, by full
// name (case-insensitive) or by code (exact case), as a whole word.
func mentionsNation(text string, nation country.Ref) bool {
	if results.IsPlaceholder(text) {
		return false
	}
	if wholeWordMatch(text, nation.Name, true) {
		return true
	}
	return wholeWordMatch(text, nation.Code, false)
}

func wholeWordMatch(text, word string, foldCase bool) bool {
	if word == "" || text == "" {
		return false
	}
	pattern := `\b` + regexp.QuoteMeta(word) + `\b`
	if foldCase {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return strings.Contains(strings.ToLower(text), strings.ToLower(word))
	}
	return re.MatchString(text)
}

// athleteNames splits a medalist text into individual athlete names,
// dropping the trailing code annotation. A bare code yields none.
func athleteNames(text string) []string {
	text = strings.TrimSpace(text)
	if idx := strings.LastIndex(text, "("); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	if text == "" {
		return nil
	}
	if len(text) == 3 && codeTokenRegex.MatchString(text) {
		return nil
	}

	var names []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
