package staticdata

import (
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/domain/games"
	"github.com/mcgregorb/olympics-dashboard/internal/domain/schedule"
)

// at places a session on a competition day at a source-zone wall time.
// Sessions before 08:00 CET belong to the previous display day, the seed
// program keeps everything at 09:00 or later so day indexes stay stable.
func at(day, hour, minute int) time.Time {
	date := games.DayDate(day)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, games.SourceZone)
}

// SeedCalendar is the published session program, one entry per televised
// block rather than per heat. Medal flags mark the blocks that end in a
// victory ceremony.
func SeedCalendar() schedule.Calendar {
	return schedule.NewCalendar(map[int][]schedule.ScrapedRow{
		1: {
			{Sport: "Curling", Event: "Mixed doubles round robin", Start: at(1, 10, 0)},
			{Sport: "Curling", Event: "Mixed doubles round robin", Start: at(1, 19, 0)},
			{Sport: "Ceremony", Event: "Opening ceremony", Start: at(1, 20, 0)},
		},
		2: {
			{Sport: "Curling", Event: "Mixed doubles round robin", Start: at(2, 9, 0)},
			{Sport: "Cross-country skiing", Event: "Women's skiathlon", Start: at(2, 11, 0), Medal: true},
			{Sport: "Biathlon", Event: "Mixed relay", Start: at(2, 14, 30), Medal: true},
			{Sport: "Speed skating", Event: "Men's 5000 m", Start: at(2, 16, 0), Medal: true},
			{Sport: "Ski jumping", Event: "Men's normal hill individual", Start: at(2, 18, 0), Medal: true},
		},
		3: {
			{Sport: "Snowboarding", Event: "Women's slopestyle qualification", Start: at(3, 10, 30)},
			{Sport: "Alpine skiing", Event: "Men's downhill", Start: at(3, 11, 30), Medal: true},
			{Sport: "Speed skating", Event: "Women's 3000 m", Start: at(3, 15, 0), Medal: true},
			{Sport: "Luge", Event: "Men's singles run 1", Start: at(3, 17, 0)},
		},
		4: {
			{Sport: "Figure skating", Event: "Team event", Start: at(4, 10, 0), Medal: true},
			{Sport: "Snowboarding", Event: "Women's slopestyle", Start: at(4, 12, 0), Medal: true},
			{Sport: "Luge", Event: "Men's singles run 3", Start: at(4, 17, 0)},
			{Sport: "Luge", Event: "Men's singles run 4", Start: at(4, 18, 45), Medal: true},
			{Sport: "Curling", Event: "Mixed doubles semifinals", Start: at(4, 19, 0)},
		},
		5: {
			{Sport: "Alpine skiing", Event: "Women's giant slalom run 1", Start: at(5, 10, 0)},
			{Sport: "Alpine skiing", Event: "Women's giant slalom run 2", Start: at(5, 13, 30), Medal: true},
			{Sport: "Short track", Event: "Mixed team relay", Start: at(5, 19, 30), Medal: true},
			{Sport: "Curling", Event: "Mixed doubles final", Start: at(5, 20, 0), Medal: true},
		},
		6: {
			{Sport: "Snowboarding", Event: "Men's halfpipe qualification", Start: at(6, 12, 30)},
			{Sport: "Biathlon", Event: "Women's 15 km individual", Start: at(6, 14, 15), Medal: true},
			{Sport: "Ice hockey", Event: "Women's preliminary round", Start: at(6, 16, 40)},
			{Sport: "Speed skating", Event: "Men's 1500 m", Start: at(6, 18, 0), Medal: true},
		},
		7: {
			{Sport: "Figure skating", Event: "Men's short program", Start: at(7, 11, 0)},
			{Sport: "Snowboarding", Event: "Men's halfpipe", Start: at(7, 12, 0), Medal: true},
			{Sport: "Biathlon", Event: "Men's 20 km individual", Start: at(7, 14, 15), Medal: true},
			{Sport: "Luge", Event: "Women's singles run 4", Start: at(7, 18, 30), Medal: true},
		},
		8: {
			{Sport: "Figure skating", Event: "Men's singles", Start: at(8, 11, 0), Medal: true},
			{Sport: "Alpine skiing", Event: "Men's super-G", Start: at(8, 11, 30), Medal: true},
			{Sport: "Skeleton", Event: "Women's heats", Start: at(8, 16, 0)},
			{Sport: "Cross-country skiing", Event: "Women's sprint free", Start: at(8, 16, 30), Medal: true},
		},
		9: {
			{Sport: "Biathlon", Event: "Women's 7.5 km sprint", Start: at(9, 14, 30), Medal: true},
			{Sport: "Speed skating", Event: "Women's 500 m", Start: at(9, 15, 45), Medal: true},
			{Sport: "Skeleton", Event: "Women's final heats", Start: at(9, 17, 0), Medal: true},
			{Sport: "Ice hockey", Event: "Men's preliminary round", Start: at(9, 20, 10)},
		},
		10: {
			{Sport: "Alpine skiing", Event: "Women's slalom run 1", Start: at(10, 10, 0)},
			{Sport: "Snowboarding", Event: "Women's halfpipe", Start: at(10, 12, 0), Medal: true},
			{Sport: "Alpine skiing", Event: "Women's slalom run 2", Start: at(10, 13, 30), Medal: true},
			{Sport: "Biathlon", Event: "Men's 10 km sprint", Start: at(10, 14, 30), Medal: true},
		},
		11: {
			{Sport: "Curling", Event: "Women's round robin", Start: at(11, 9, 0)},
			{Sport: "Cross-country skiing", Event: "Men's 10 km classic", Start: at(11, 11, 0), Medal: true},
			{Sport: "Luge", Event: "Doubles run 2", Start: at(11, 18, 15), Medal: true},
			{Sport: "Freestyle skiing", Event: "Women's aerials", Start: at(11, 19, 30), Medal: true},
		},
		12: {
			{Sport: "Figure skating", Event: "Ice dance free dance", Start: at(12, 10, 30), Medal: true},
			{Sport: "Snowboarding", Event: "Men's snowboard cross", Start: at(12, 13, 30), Medal: true},
			{Sport: "Biathlon", Event: "Women's 10 km pursuit", Start: at(12, 14, 45), Medal: true},
			{Sport: "Ice hockey", Event: "Women's quarterfinals", Start: at(12, 16, 40)},
		},
		13: {
			{Sport: "Alpine skiing", Event: "Men's giant slalom run 1", Start: at(13, 10, 0)},
			{Sport: "Alpine skiing", Event: "Men's giant slalom run 2", Start: at(13, 13, 30), Medal: true},
			{Sport: "Speed skating", Event: "Women's 5000 m", Start: at(13, 16, 0), Medal: true},
			{Sport: "Bobsleigh", Event: "Two-man heats", Start: at(13, 19, 0)},
		},
		14: {
			{Sport: "Figure skating", Event: "Women's short program", Start: at(14, 11, 0)},
			{Sport: "Freestyle skiing", Event: "Men's halfpipe", Start: at(14, 12, 30), Medal: true},
			{Sport: "Bobsleigh", Event: "Two-man final heats", Start: at(14, 19, 15), Medal: true},
			{Sport: "Curling", Event: "Men's semifinals", Start: at(14, 20, 0)},
		},
		15: {
			{Sport: "Figure skating", Event: "Women's singles", Start: at(15, 11, 0), Medal: true},
			{Sport: "Cross-country skiing", Event: "Men's 4 x 7.5 km relay", Start: at(15, 13, 0), Medal: true},
			{Sport: "Speed skating", Event: "Men's 1000 m", Start: at(15, 17, 0), Medal: true},
			{Sport: "Ice hockey", Event: "Women's gold medal game", Start: at(15, 20, 10), Medal: true},
		},
		16: {
			{Sport: "Bobsleigh", Event: "Four-man heats", Start: at(16, 9, 30)},
			{Sport: "Alpine skiing", Event: "Mixed team parallel", Start: at(16, 11, 0), Medal: true},
			{Sport: "Cross-country skiing", Event: "Women's 50 km mass start", Start: at(16, 12, 0), Medal: true},
			{Sport: "Curling", Event: "Men's final", Start: at(16, 15, 0), Medal: true},
		},
		17: {
			{Sport: "Cross-country skiing", Event: "Men's 50 km mass start", Start: at(17, 9, 30), Medal: true},
			{Sport: "Bobsleigh", Event: "Four-man final heats", Start: at(17, 10, 15), Medal: true},
			{Sport: "Ice hockey", Event: "Men's gold medal game", Start: at(17, 13, 10), Medal: true},
			{Sport: "Ceremony", Event: "Closing ceremony", Start: at(17, 20, 0)},
		},
	})
}
