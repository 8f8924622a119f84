package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func tsKey(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func TestAggregateCalendar_FixedScenario(t *testing.T) {
	// 1700000000 -> 2023-11-14 UTC, 1732000000 -> 2024-11-19 UTC
	calendar := map[string]int{
		"1700000000": 3,
		"1732000000": 2,
	}
	today := day(2025, time.January, 15)

	report, err := AggregateCalendar(calendar, today)
	require.NoError(t, err)

	require.Len(t, report.Years, 2)
	require.Contains(t, report.Years, 2023)
	require.Contains(t, report.Years, 2024)

	assert.Equal(t, map[string]int{"2023-11-14": 3}, report.Years[2023].Daily)
	assert.Equal(t, 3, report.Years[2023].Total)
	assert.Equal(t, map[string]int{"2024-11-19": 2}, report.Years[2024].Daily)
	assert.Equal(t, 2, report.Years[2024].Total)

	// Окно 2024-01-16..2025-01-15 захватывает только вторую запись
	assert.Equal(t, map[string]int{"2024-11-19": 2}, report.Current.Daily)
	assert.Equal(t, 2, report.Current.Total)
}

func TestAggregateCalendar_CurrentWindowBoundaries(t *testing.T) {
	today := day(2024, time.June, 15)

	tests := []struct {
		name      string
		date      time.Time
		inCurrent bool
	}{
		{"today", day(2024, time.June, 15), true},
		{"365 days ago", day(2023, time.June, 16), true},
		{"366 days ago", day(2023, time.June, 15), false},
		{"tomorrow", day(2024, time.June, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendar := map[string]int{tsKey(tt.date): 1}

			report, err := AggregateCalendar(calendar, today)
			require.NoError(t, err)

			dateStr := tt.date.Format("2006-01-02")
			if tt.inCurrent {
				assert.Equal(t, 1, report.Current.Daily[dateStr])
				assert.Equal(t, 1, report.Current.Total)
			} else {
				assert.NotContains(t, report.Current.Daily, dateStr)
				assert.Equal(t, 0, report.Current.Total)
			}
			// В годовую корзину дата попадает всегда
			assert.Equal(t, 1, report.Years[tt.date.Year()].Daily[dateStr])
		})
	}
}

func TestAggregateCalendar_CountConservation(t *testing.T) {
	calendar := map[string]int{
		tsKey(day(2022, time.March, 1)):     4,
		tsKey(day(2022, time.December, 31)): 1,
		tsKey(day(2023, time.July, 7)):      9,
		tsKey(day(2024, time.January, 2)):   5,
	}
	today := day(2024, time.June, 1)

	report, err := AggregateCalendar(calendar, today)
	require.NoError(t, err)

	inputSum := 0
	for _, count := range calendar {
		inputSum += count
	}

	yearSum := 0
	for _, bucket := range report.Years {
		bucketSum := 0
		for _, count := range bucket.Daily {
			bucketSum += count
		}
		assert.Equal(t, bucket.Total, bucketSum)
		yearSum += bucket.Total
	}
	assert.Equal(t, inputSum, yearSum)
}

func TestAggregateCalendar_Deterministic(t *testing.T) {
	calendar := map[string]int{
		tsKey(day(2023, time.February, 3)): 2,
		tsKey(day(2023, time.February, 4)): 7,
		tsKey(day(2024, time.May, 30)):     1,
	}
	today := day(2024, time.June, 1)

	first, err := AggregateCalendar(calendar, today)
	require.NoError(t, err)
	second, err := AggregateCalendar(calendar, today)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAggregateCalendar_InvalidTimestamp(t *testing.T) {
	_, err := AggregateCalendar(map[string]int{"not-a-number": 1}, day(2024, time.June, 1))
	assert.Error(t, err)
}

func TestAggregateCalendar_EmptyCalendar(t *testing.T) {
	report, err := AggregateCalendar(map[string]int{}, day(2024, time.June, 1))
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":{"daily":{},"total":0}}`, string(data))
}

func TestProgressReport_MarshalOrder(t *testing.T) {
	calendar := map[string]int{
		tsKey(day(2022, time.April, 1)): 1,
		tsKey(day(2024, time.April, 1)): 1,
		tsKey(day(2023, time.April, 1)): 1,
	}

	report, err := AggregateCalendar(calendar, day(2024, time.June, 1))
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	raw := string(data)
	assert.True(t, strings.HasPrefix(raw, `{"current":`))

	posCurrent := strings.Index(raw, `"current"`)
	pos2024 := strings.Index(raw, `"2024"`)
	pos2023 := strings.Index(raw, `"2023"`)
	pos2022 := strings.Index(raw, `"2022"`)
	assert.True(t, posCurrent < pos2024)
	assert.True(t, pos2024 < pos2023)
	assert.True(t, pos2023 < pos2022)
}
