// Package cleaner turns a raw spreadsheet into the typed exam table the
// analytics engines consume: date normalization, numeric coercion, topic
// parsing and the row-level fixes a hand-maintained sheet needs.
package cleaner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
	"github.com/AhmetBilalOzgun/nettrack/internal/sheets"
)

const (
	nameColumn     = "Deneme Adı"
	dateColumn     = "Tarih"
	durationColumn = "Süre (dk)"
	topicSuffix    = " Yanlış Konular"

	maxExamNameLength = 50
	minYear           = 2020
)

// accepted date layouts, tried in order
var dateLayouts = []string{
	"02.01.2006", "02/01/2006", "02-01-2006", "2006-01-02", "02.01.06", "02/01/06",
}

// strips everything but letters (Turkish included), digits, spaces,
// parentheses and hyphens from a topic
var topicSanitizer = regexp.MustCompile(`[^a-zA-ZğüşöçıİĞÜŞÖÇ0-9\s()\-]`)

// Report summarizes what one cleaning run changed.
type Report struct {
	RowsRemoved int      `json:"rows_removed"`
	ValuesFixed int      `json:"values_fixed"`
	Warnings    []string `json:"warnings"`
}

// Cleaner converts raw sheets into exam tables. In strict mode rows with a
// missing name, date or total net are dropped; otherwise only undated and
// fully-empty rows are removed and missing nets are filled with zero.
type Cleaner struct {
	profile config.ExamProfile
	total   string
	strict  bool
	log     *logger.Logger
}

// New creates a Cleaner for the given exam profile. totalSubject names the
// aggregate net column treated as critical in strict mode.
func New(profile config.ExamProfile, totalSubject string, strict bool) *Cleaner {
	return &Cleaner{
		profile: profile,
		total:   totalSubject,
		strict:  strict,
		log:     logger.Default().WithPrefix("cleaner"),
	}
}

// Clean runs the full pipeline over a raw sheet and returns the typed table
// plus a report of every fix and warning.
func (c *Cleaner) Clean(sheet *sheets.RawSheet) (*exam.Table, Report, error) {
	report := Report{}
	if sheet == nil || len(sheet.Header) == 0 {
		return nil, report, fmt.Errorf("sheet has no header row")
	}

	header := make([]string, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = strings.TrimSpace(h)
	}

	cols := indexColumns(header)
	if cols.date < 0 {
		return nil, report, fmt.Errorf("required column %q not found", dateColumn)
	}

	c.log.Info("cleaning %d rows for %s", len(sheet.Rows), c.profile.Type)

	now := time.Now()
	records := make([]models.ExamRecord, 0, len(sheet.Rows))
	futureDates, oldDates, shortDur, longDur := 0, 0, 0, 0

	for i, row := range sheet.Rows {
		if rowEmpty(row) {
			report.RowsRemoved++
			continue
		}

		date, ok := parseDate(cell(row, cols.date))
		if !ok {
			c.log.Warn("row %d: date could not be parsed: %q", i+2, cell(row, cols.date))
			report.RowsRemoved++
			continue
		}
		if date.After(now) {
			futureDates++
		}
		if date.Year() < minYear {
			oldDates++
		}

		name := strings.TrimSpace(cell(row, cols.name))
		if runes := []rune(name); len(runes) > maxExamNameLength {
			name = string(runes[:maxExamNameLength]) + "..."
			report.ValuesFixed++
		}

		rec := models.ExamRecord{
			Name:        name,
			Date:        date,
			NetScores:   map[string]float64{},
			WrongTopics: map[string][]string{},
		}

		totalMissing := false
		for col, idx := range cols.nets {
			v, ok := parseFloat(cell(row, idx))
			if !ok {
				if col == c.total {
					totalMissing = true
				}
				// missing nets count as zero
				v = 0
				report.ValuesFixed++
			}
			rec.NetScores[col] = v
		}

		if c.strict && (name == "" || totalMissing) {
			c.log.Warn("row %d: dropped due to critical missing data", i+2)
			report.RowsRemoved++
			continue
		}

		if cols.duration >= 0 {
			if d, ok := parseFloat(cell(row, cols.duration)); ok {
				switch {
				case d < 0:
					// negative durations are unusable, leave unset
					report.ValuesFixed++
				default:
					minutes := int(d)
					rec.DurationMinutes = &minutes
					if minutes > 0 && minutes < c.profile.MinDuration {
						shortDur++
					}
					if minutes > c.profile.MaxDuration {
						longDur++
					}
				}
			}
		}

		for col, idx := range cols.topics {
			subject := strings.TrimSuffix(col, topicSuffix)
			if topics := ParseTopics(cell(row, idx)); len(topics) > 0 {
				rec.WrongTopics[subject] = topics
			}
		}

		records = append(records, rec)
	}

	if futureDates > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d date(s) in the future", futureDates))
	}
	if oldDates > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d date(s) older than %d", oldDates, minYear))
	}
	if shortDur > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d unusually short duration(s)", shortDur))
	}
	if longDur > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%d unusually long duration(s)", longDur))
	}

	c.log.Info("cleaning complete: %d -> %d rows (%d fixed values, %d warnings)",
		len(sheet.Rows), len(records), report.ValuesFixed, len(report.Warnings))

	return exam.New(records, header), report, nil
}

// ParseTopics splits a comma-separated topic cell into cleaned, deduplicated
// topics. Dedup is case-insensitive and keeps the first casing seen;
// single-character fragments are discarded.
func ParseTopics(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var topics []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		topic := strings.TrimSpace(part)
		if utf8.RuneCountInString(topic) <= 1 {
			continue
		}
		topic = strings.TrimSpace(topicSanitizer.ReplaceAllString(topic, ""))
		if topic == "" {
			continue
		}
		key := strings.ToLower(topic)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		topics = append(topics, topic)
	}
	return topics
}

type columnIndex struct {
	name     int
	date     int
	duration int
	nets     map[string]int
	topics   map[string]int
}

func indexColumns(header []string) columnIndex {
	cols := columnIndex{
		name:     -1,
		date:     -1,
		duration: -1,
		nets:     map[string]int{},
		topics:   map[string]int{},
	}
	for i, h := range header {
		switch {
		case h == nameColumn:
			cols.name = i
		case h == dateColumn:
			cols.date = i
		case h == durationColumn:
			cols.duration = i
		case strings.HasSuffix(h, topicSuffix):
			cols.topics[h] = i
		case strings.Contains(h, "Net"):
			cols.nets[h] = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFloat accepts both dot and comma decimal separators.
func parseFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
