// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are the date-time forms accepted in catalog data,
// tried in order. Layouts with an offset keep the offset as the
// parsed location, so Hour and Minute report the written clock fields.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a catalog date-time. The returned time carries
// the clock fields exactly as written; no conversion to the local or
// UTC zone is applied.
func ParseTimestamp(timestamp string) (time.Time, error) {
	trimmed := strings.TrimSpace(timestamp)
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", timestamp)
}

// DecimalHour returns hour + minute/60 of a catalog timestamp. Seconds
// are ignored. The second result is false when the timestamp cannot be
// parsed.
func DecimalHour(timestamp string) (float64, bool) {
	parsed, err := ParseTimestamp(timestamp)
	if err != nil {
		return 0, false
	}
	return float64(parsed.Hour()) + float64(parsed.Minute())/60, true
}

// FormatHour renders a decimal hour in 12-hour form: 13.5 becomes
// "1:30 PM". Both 0 and 24 render as "12:00 AM".
func FormatHour(hour float64) string {
	hourPart := int(math.Floor(hour))
	minutePart := int(math.Round((hour - float64(hourPart)) * 60))
	if minutePart == 60 {
		hourPart++
		minutePart = 0
	}
	hourPart = ((hourPart % 24) + 24) % 24

	period := "AM"
	if hourPart >= 12 {
		period = "PM"
	}
	displayHour := hourPart % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minutePart, period)
}

// FormatClock renders the written clock time of a catalog timestamp as
// "03:04 PM". Unparseable input is returned unchanged.
func FormatClock(timestamp string) string {
	parsed, err := ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}
	return parsed.Format("03:04 PM")
}

// FormatDuration renders a minute count carried as text ("135") as
// "2h 15m". Input that is not a non-negative integer is returned
// unchanged.
func FormatDuration(minutes string) string {
	total, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil || total < 0 {
		return minutes
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
