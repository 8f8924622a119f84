package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// YearBucket — разбивка по дням плюс сумма за окно.
type YearBucket struct {
	Daily map[string]int `json:"daily"`
	Total int            `json:"total"`
}

// ProgressReport — прогресс по годам плюс скользящее окно "current"
// (последние 365 дней включительно). Дата может попасть и в свой год,
// и в "current" одновременно.
type ProgressReport struct {
	Current YearBucket
	Years   map[int]*YearBucket
}

// AggregateCalendar раскладывает календарь сабмитов (unix-секунды строкой -> счётчик)
// по годам. Даты считаем в UTC — той же зоне, в которой LeetCode собирает календарь;
// другая зона сдвинет границы суток. today передаётся один раз на запрос,
// чтобы окно "current" не поехало посреди вычисления.
func AggregateCalendar(calendar map[string]int, today time.Time) (ProgressReport, error) {
	report := ProgressReport{
		Current: YearBucket{Daily: make(map[string]int)},
		Years:   make(map[int]*YearBucket),
	}

	today = truncateToDay(today.UTC())
	oneYearAgo := today.AddDate(0, 0, -365)

	for tsStr, count := range calendar {
		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			return ProgressReport{}, fmt.Errorf("invalid calendar timestamp %q: %w", tsStr, err)
		}

		date := truncateToDay(time.Unix(ts, 0).UTC())
		year := date.Year()
		dateStr := date.Format("2006-01-02")

		bucket, ok := report.Years[year]
		if !ok {
			bucket = &YearBucket{Daily: make(map[string]int)}
			report.Years[year] = bucket
		}
		bucket.Daily[dateStr] = count
		bucket.Total += count

		// Окно включительно с обеих сторон
		if !date.Before(oneYearAgo) && !date.After(today) {
			report.Current.Daily[dateStr] = count
			report.Current.Total += count
		}
	}

	return report, nil
}

// MarshalJSON отдаёт "current" первым, затем годы по убыванию.
// Порядок ключей — часть контракта ответа, поэтому обычная map не подходит.
func (p ProgressReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"current":`)

	current, err := json.Marshal(p.Current)
	if err != nil {
		return nil, err
	}
	buf.Write(current)

	years := make([]int, 0, len(p.Years))
	for year := range p.Years {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	for _, year := range years {
		bucket, err := json.Marshal(p.Years[year])
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"` + strconv.Itoa(year) + `":`)
		buf.Write(bucket)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
