package engine

// Weekday order for schedule scanning. Monday first; ties on score resolve
// to the earliest day, then the earliest hour.
var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Additive score weights. The final score is clamped to [0,100].
const (
	weightPlatformDay  = 40
	weightPlatformPeak = 20
	weightNiche        = 25
	weightMorning      = 10
	weightLunch        = 15
	weightEvening      = 15
	weightWeekendMid   = 10
)

// platformGoodHours is the per-platform, per-weekday set of historically
// strong posting hours. Enumerated audience data, not derived.
var platformGoodHours = map[string]map[string][]int{
	PlatformInstagram: {
		"Monday":    {11, 13, 17},
		"Tuesday":   {9, 11, 13},
		"Wednesday": {11, 15, 17},
		"Thursday":  {11, 12, 17},
		"Friday":    {9, 11, 14},
		"Saturday":  {10, 11},
		"Sunday":    {10, 17},
	},
	PlatformTikTok: {
		"Monday":    {18, 19, 21},
		"Tuesday":   {16, 18, 21},
		"Wednesday": {19, 21, 23},
		"Thursday":  {12, 19, 21},
		"Friday":    {17, 19, 21},
		"Saturday":  {11, 19, 20},
		"Sunday":    {16, 19, 20},
	},
	// YouTube's audience concentrates in the afternoon slot; Thursday and
	// Friday carry an extra hour of the upload window.
	PlatformYouTube: {
		"Monday":    {10, 11},
		"Tuesday":   {10, 11},
		"Wednesday": {10, 11},
		"Thursday":  {15, 16},
		"Friday":    {15, 16},
		"Saturday":  {10},
		"Sunday":    {10},
	},
	PlatformTwitter: {
		"Monday":    {8, 10, 12},
		"Tuesday":   {8, 9, 12},
		"Wednesday": {9, 12, 17},
		"Thursday":  {8, 12, 17},
		"Friday":    {8, 9, 12},
		"Saturday":  {9, 11},
		"Sunday":    {9, 11},
	},
}

// platformPeakHours are platform-wide peak activity hours, independent of
// weekday and niche.
var platformPeakHours = map[string][]int{
	PlatformInstagram: {9, 12, 17},
	PlatformTikTok:    {12, 19, 21},
	PlatformYouTube:   {14, 15, 16},
	PlatformTwitter:   {8, 12, 17},
}

// nicheGoodHours are the hours each content category's audience is known to
// be active.
var nicheGoodHours = map[string][]int{
	"business":      {7, 8, 9, 12, 17, 18},
	"finance":       {7, 8, 9, 16, 17},
	"fitness":       {6, 7, 8, 17, 18, 19},
	"lifestyle":     {10, 11, 12, 19, 20},
	"tech":          {9, 10, 14, 15, 20},
	"beauty":        {11, 12, 18, 19, 20},
	"entertainment": {19, 20, 21, 22},
	"gaming":        {15, 16, 20, 21, 22},
}

// RecommendBestTimes scores every (weekday, hour) slot for a platform and
// niche and returns the non-zero slots plus the single best one.
//
// Scoring is pure table lookup and additive bonuses; no randomness, no
// history. Unknown platforms or niches simply contribute nothing from their
// table, so the day-part bonuses still produce a non-empty schedule.
func RecommendBestTimes(platform, niche string) WeeklySchedule {
	platform = normalizeKey(platform)
	niche = normalizeKey(niche)

	goodByDay := platformGoodHours[platform]
	peak := platformPeakHours[platform]
	nicheHours := nicheGoodHours[niche]

	schedule := WeeklySchedule{Platform: platform, Niche: niche}

	for _, day := range weekdays {
		weekend := day == "Saturday" || day == "Sunday"
		for hour := 0; hour < 24; hour++ {
			score := 0
			if containsHour(goodByDay[day], hour) {
				score += weightPlatformDay
			}
			if containsHour(peak, hour) {
				score += weightPlatformPeak
			}
			if containsHour(nicheHours, hour) {
				score += weightNiche
			}
			switch {
			case hour >= 7 && hour <= 9:
				score += weightMorning
			case hour >= 11 && hour <= 13:
				score += weightLunch
			case hour >= 17 && hour <= 21:
				score += weightEvening
			}
			if weekend && hour >= 10 && hour <= 14 {
				score += weightWeekendMid
			}
			if score > 100 {
				score = 100
			}
			if score == 0 {
				continue
			}

			slot := TimeSlotScore{Weekday: day, Hour: hour, Score: score}
			schedule.Slots = append(schedule.Slots, slot)
			// First occurrence wins on ties.
			if score > schedule.Best.Score {
				schedule.Best = slot
			}
		}
	}

	return schedule
}

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
