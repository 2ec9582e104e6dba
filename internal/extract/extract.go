// Package extract recovers structured form fields from raw OCR text.
//
// Receipt scans are noisy: keywords arrive half-garbled ("T0TAL", "SUMA",
// "P4YABLE"), legal suffixes lose letters to digits ("Sp. z 0.0") and dates
// show up in several formats. Every field is extracted by an ordered chain of
// heuristics where the first successful match wins, and every field degrades
// to a zero value instead of failing. The package is pure: no I/O, no errors,
// deterministic for identical input.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Fields holds the best-effort suggestions for the document form.
type Fields struct {
	Amount  float64
	Company string
	Date    *time.Time
}

// FromText runs all extractors over the raw OCR text.
func FromText(text string) Fields {
	return Fields{
		Amount:  Amount(text),
		Company: Company(text),
		Date:    Date(text),
	}
}

var (
	// Keyword-anchored amount: a total/sum/amount/payable token (tolerating
	// common OCR misreads), an optional currency, then a numeric literal.
	amountKeywordRe = regexp.MustCompile(
		`(?i)(SU[BM][A4]|SU[A4]|T[O0]TAL\s*DUE|T[O0]TAL|[A4]M[O0]UNT\s*PAID|[A4]M[O0]UNT|PAYMENT|P[A4]Y[A4]BLE)\s*(PLN|EUR|USD|£|\$|€)?\s*([\d\s,.]+\d)`)

	// Fallback: any currency token directly followed by a numeric literal.
	amountCurrencyRe = regexp.MustCompile(`(?i)(PLN|EUR|USD|£|\$|€)\s*([\d\s,.]+\d)`)
)

// Amount extracts a monetary amount, rounded to 2 decimal places.
// Returns 0 when nothing amount-shaped is found.
func Amount(text string) float64 {
	if m := amountKeywordRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[3]); ok {
			return v
		}
	}
	if m := amountCurrencyRe.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[2]); ok {
			return v
		}
	}
	return 0
}

// parseAmount normalizes a raw numeric capture: spaces stripped, the first
// comma treated as the decimal separator, then the leading float prefix
// parsed so trailing OCR garbage ("123.45.") does not reject the value.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	v, ok := parseLeadingFloat(cleaned)
	if !ok {
		return 0, false
	}
	return math.Round(v*100) / 100, true
}

func parseLeadingFloat(s string) (float64, bool) {
	i := 0
	seenDigit := false
	seenDot := false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot:
			seenDot = true
		default:
			goto done
		}
		i++
	}
done:
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Lines matching any of these are never company-name candidates:
// symbol-only separators, receipt boilerplate and tax-ID lines.
var companyExclusions = []*regexp.Regexp{
	regexp.MustCompile(`^[|~*]+$`),
	regexp.MustCompile(`(?i)^PARAGON`),
	regexp.MustCompile(`(?i)^FISKALNY`),
	regexp.MustCompile(`(?i)^nr wydr`),
	regexp.MustCompile(`(?i)^NIP`),
	regexp.MustCompile(`(?i)^SUMA PLN`),
	regexp.MustCompile(`(?i)^ROZLICZENIE`),
}

// Legal-entity suffixes, including OCR-garbled digit variants of
// "Sp. z o.o." and "S.A.".
var legalSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(sp|5p)[.,]?\s*[z2][.,]?\s*[o0]\.?\s*[o0]\.?`),
	regexp.MustCompile(`(?i)\b[s86]\.\s*a\b\.?`),
	regexp.MustCompile(`(?i)\bltd\b`),
	regexp.MustCompile(`(?i)\binc\b`),
	regexp.MustCompile(`(?i)\bs\.r\.o\.`),
}

// Company extracts the merchant name. Preference order: first line carrying a
// legal-entity suffix, then first line of at least two multi-character words,
// then the first non-excluded line, else empty string.
func Company(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if matchesAny(line, companyExclusions) {
			continue
		}
		lines = append(lines, line)
	}

	for _, line := range lines {
		if matchesAny(line, legalSuffixes) {
			return cleanCompanyName(line)
		}
	}

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) < 2 {
			continue
		}
		allLong := true
		for _, w := range words {
			if utf8.RuneCountInString(w) <= 1 {
				allLong = false
				break
			}
		}
		if allLong {
			return cleanCompanyName(line)
		}
	}

	if len(lines) > 0 {
		return cleanCompanyName(lines[0])
	}
	return ""
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

var (
	edgeJunkLeadRe  = regexp.MustCompile(`^[|~*]+`)
	edgeJunkTrailRe = regexp.MustCompile(`[|~*]+$`)
	spZooLettersRe  = regexp.MustCompile(`(?i)(sp|5p)[.,]?\s*[z2][.,]?\s*([o0][.,]?\s*){2}`)
	spZooDigitsRe   = regexp.MustCompile(`(?i)(sp|5p)\.?\s*[z2]\s*\d\.\d`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// cleanCompanyName strips edge symbols and normalizes garbled Polish
// legal-form suffixes back to the canonical "Sp. z o.o.".
func cleanCompanyName(name string) string {
	name = edgeJunkLeadRe.ReplaceAllString(name, "")
	name = edgeJunkTrailRe.ReplaceAllString(name, "")
	name = spZooLettersRe.ReplaceAllString(name, "Sp. z o.o.")
	name = spZooDigitsRe.ReplaceAllString(name, "Sp. z o.o.")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

var (
	// YYYY-MM-DD HH:MM or DD-MM-YYYY HH:MM with -, ., / or \ separators
	dateTimeRe = regexp.MustCompile(
		`(\d{4})[-./\\](\d{1,2})[-./\\](\d{1,2})[ T](\d{1,2}):(\d{1,2})|(\d{1,2})[-./\\](\d{1,2})[-./\\](\d{4})[ T](\d{1,2}):(\d{1,2})`)
	isoDateRe      = regexp.MustCompile(`(\d{4})[-./\\](\d{1,2})[-./\\](\d{1,2})`)
	dayFirstDateRe = regexp.MustCompile(`(\d{1,2})[-./\\](\d{1,2})[-./\\](\d{4})`)

	// Keyword cues that commonly precede the transaction date on receipts,
	// including Polish equivalents.
	dateCues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)invoice\s*date:?\s*`),
		regexp.MustCompile(`(?i)receipt\s*date:?\s*`),
		regexp.MustCompile(`(?i)purchase\s*date:?\s*`),
		regexp.MustCompile(`(?i)transaction\s*date:?\s*`),
		regexp.MustCompile(`(?i)issued\s*on:?\s*`),
		regexp.MustCompile(`(?i)data\s*zakupu:?\s*`),
		regexp.MustCompile(`(?i)data\s*sprzedaży:?\s*`),
		regexp.MustCompile(`(?i)date:?\s*`),
	}
)

// dateMatcher tries one date pattern against a fragment of text.
type dateMatcher func(s string) (time.Time, bool)

var dateMatchers = []dateMatcher{matchDateTime, matchISODate, matchDayFirstDate}

// Date extracts the transaction date, preferring matches on the same line as
// a keyword cue, then falling back to an unanchored scan of the whole text.
// The three patterns are tried in priority order: date-with-time, ISO
// date-only, day-first date-only. Returns nil when nothing matches.
func Date(text string) *time.Time {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		for _, cue := range dateCues {
			loc := cue.FindStringIndex(line)
			if loc == nil {
				continue
			}
			afterCue := strings.TrimSpace(line[loc[1]:])
			if t, ok := firstDateMatch(afterCue); ok {
				return &t
			}
		}
	}

	for _, line := range lines {
		if t, ok := firstDateMatch(line); ok {
			return &t
		}
	}

	return nil
}

func firstDateMatch(s string) (time.Time, bool) {
	for _, match := range dateMatchers {
		if t, ok := match(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func matchDateTime(s string) (time.Time, bool) {
	m := dateTimeRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	if m[1] != "" {
		// YYYY-MM-DD HH:MM
		return makeDate(m[1], m[2], m[3], m[4], m[5])
	}
	// DD-MM-YYYY HH:MM
	return makeDate(m[8], m[7], m[6], m[9], m[10])
}

func matchISODate(s string) (time.Time, bool) {
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return makeDate(m[1], m[2], m[3], "0", "0")
}

func matchDayFirstDate(s string) (time.Time, bool) {
	m := dayFirstDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return makeDate(m[3], m[2], m[1], "0", "0")
}

func makeDate(year, month, day, hour, minute string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)
	if mo < 1 || mo > 12 || d < 1 || d > 31 || h > 23 || mi > 59 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, h, mi, 0, 0, time.Local), true
}
