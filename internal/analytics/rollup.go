package analytics

import (
	"fmt"
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// periodAccum gathers one period's raw numbers before the finished PeriodStat
// is built. Periods with no active days never get an accumulator, so the
// resulting maps carry no zero-division artifacts.
type periodAccum struct {
	total  int
	active int
	max    int
	months map[time.Month]bool
}

func (p *periodAccum) add(count int, month time.Month) {
	p.total += count
	p.active++
	if count > p.max {
		p.max = count
	}
	if p.months != nil {
		p.months[month] = true
	}
}

func (p *periodAccum) stat() entity.PeriodStat {
	return entity.PeriodStat{
		TotalSubmissions:         p.total,
		ActiveDays:               p.active,
		MaxSubmissionsInDay:      p.max,
		AverageSubmissionsPerDay: fmt.Sprintf("%.2f", float64(p.total)/float64(p.active)),
	}
}

// MonthlyRollup aggregates the active days of a daily series per "YYYY-MM".
func MonthlyRollup(series []entity.Submission) map[string]entity.PeriodStat {
	accum := make(map[string]*periodAccum)
	for _, sub := range series {
		d, ok := activeDay(sub)
		if !ok {
			continue
		}
		key := d.Format("2006-01")
		p := accum[key]
		if p == nil {
			p = &periodAccum{}
			accum[key] = p
		}
		p.add(sub.Count, d.Month())
	}

	out := make(map[string]entity.PeriodStat, len(accum))
	for key, p := range accum {
		out[key] = p.stat()
	}
	return out
}

// YearlyRollup aggregates per "YYYY", additionally tracking how many distinct
// months of the year saw activity.
func YearlyRollup(series []entity.Submission) map[string]entity.YearlyStat {
	accum := make(map[string]*periodAccum)
	for _, sub := range series {
		d, ok := activeDay(sub)
		if !ok {
			continue
		}
		key := d.Format("2006")
		p := accum[key]
		if p == nil {
			p = &periodAccum{months: make(map[time.Month]bool)}
			accum[key] = p
		}
		p.add(sub.Count, d.Month())
	}

	out := make(map[string]entity.YearlyStat, len(accum))
	for key, p := range accum {
		out[key] = entity.YearlyStat{
			PeriodStat:   p.stat(),
			ActiveMonths: len(p.months),
		}
	}
	return out
}

func activeDay(sub entity.Submission) (time.Time, bool) {
	if sub.Count <= 0 {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DateLayout, sub.Date, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
