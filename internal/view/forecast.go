package view

import (
	"sort"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Display slot counts of the fixed dashboard layout.
const (
	dailySlots  = 5
	hourlySlots = 6
)

// HourlyCard is one entry of the hourly strip widget.
type HourlyCard struct {
	Time  string `json:"time"`
	TempC int    `json:"tempC"`
	Icon  string `json:"icon"`
}

// DailyRow is one row of the coming-days widget.
type DailyRow struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	TempC   int    `json:"tempC"`
	Icon    string `json:"icon"`
}

// DailyForecast groups 3-hourly entries by calendar day in the location's
// UTC offset, averages the temperature per day and drops the current day's
// bucket. At most dailySlots rows come back.
func DailyForecast(entries []weather.ForecastEntry, offsetSeconds int) []DailyRow {
	if len(entries) == 0 {
		return nil
	}

	type dayBucket struct {
		tempSum float64
		count   int
		sample  weather.ForecastEntry
	}

	buckets := make(map[string]*dayBucket)
	for _, e := range entries {
		key := LocalTime(e.Dt, offsetSeconds).Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{sample: e}
			buckets[key] = b
		}
		b.tempSum += e.Main.Temp
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// The first bucket is the current day; the widget shows what comes after.
	rows := make([]DailyRow, 0, dailySlots)
	for _, key := range keys[1:] {
		if len(rows) >= dailySlots {
			break
		}

		b := buckets[key]
		sample := b.sample
		cond := firstCondition(sample.Weather)
		day := IsDay(cond.Icon, sample.Dt, 0, 0, offsetSeconds)

		rows = append(rows, DailyRow{
			Weekday: LocalTime(sample.Dt, offsetSeconds).Format("Mon"),
			Date:    FormatDate(sample.Dt, offsetSeconds),
			TempC:   RoundTemp(b.tempSum / float64(b.count)),
			Icon:    IconFor(cond.ID, cond.Description, day),
		})
	}
	return rows
}

// HourlyStrip returns a forward-looking slice of up to hourlySlots entries,
// starting at the first entry whose timestamp is not in the past.
func HourlyStrip(entries []weather.ForecastEntry, offsetSeconds int, now time.Time) []HourlyCard {
	start := 0
	for start < len(entries) && entries[start].Dt < now.Unix() {
		start++
	}

	cards := make([]HourlyCard, 0, hourlySlots)
	for _, e := range entries[start:] {
		if len(cards) >= hourlySlots {
			break
		}

		cond := firstCondition(e.Weather)
		day := IsDay(cond.Icon, e.Dt, 0, 0, offsetSeconds)

		cards = append(cards, HourlyCard{
			Time:  FormatClock(e.Dt, offsetSeconds),
			TempC: RoundTemp(e.Main.Temp),
			Icon:  IconFor(cond.ID, cond.Description, day),
		})
	}
	return cards
}

func firstCondition(conds []weather.Condition) weather.Condition {
	if len(conds) == 0 {
		return weather.Condition{}
	}
	return conds[0]
}
