package islamic

// envelope is the common wrapper on every response. Code mirrors the HTTP
// status and is checked independently of it.
type envelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

// TimingsResponse is the response of the prayer-time endpoint.
type TimingsResponse struct {
	envelope
	Data TimingsData `json:"data"`
}

// TimingsData carries the day's prayer schedule plus the contextual blocks
// rendered alongside it.
type TimingsData struct {
	// Times maps schedule keys ("Fajr", "Sunrise", ...) to wall-clock
	// strings, usually 12-hour with an AM/PM suffix.
	Times           map[string]string `json:"times"`
	Date            DateInfo          `json:"date"`
	Qibla           Qibla             `json:"qibla"`
	ProhibitedTimes ProhibitedTimes   `json:"prohibited_times"`
	Timezone        Timezone          `json:"timezone"`
}

// DateInfo pairs the Gregorian date with its Hijri equivalent.
type DateInfo struct {
	Readable  string        `json:"readable"`
	Timestamp string        `json:"timestamp"`
	Hijri     HijriDate     `json:"hijri"`
	Gregorian GregorianDate `json:"gregorian"`
}

// HijriDate is a day on the Islamic calendar.
type HijriDate struct {
	Date        string      `json:"date"`
	Day         string      `json:"day"`
	Month       HijriMonth  `json:"month"`
	Year        string      `json:"year"`
	Weekday     Weekday     `json:"weekday"`
	Designation Designation `json:"designation"`
}

type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
	Days   int    `json:"days"`
}

// GregorianDate is a day on the Gregorian calendar.
type GregorianDate struct {
	Date        string         `json:"date"`
	Day         string         `json:"day"`
	Month       GregorianMonth `json:"month"`
	Year        string         `json:"year"`
	Weekday     Weekday        `json:"weekday"`
	Designation Designation    `json:"designation"`
}

type GregorianMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
}

type Weekday struct {
	En string `json:"en"`
	Ar string `json:"ar,omitempty"`
}

type Designation struct {
	Abbreviated string `json:"abbreviated"`
	Expanded    string `json:"expanded"`
}

// Qibla describes the direction and distance to the Kaaba from the queried
// coordinates.
type Qibla struct {
	Direction QiblaDirection `json:"direction"`
	Distance  QiblaDistance  `json:"distance"`
}

type QiblaDirection struct {
	Degrees   float64 `json:"degrees"`
	From      string  `json:"from"`
	Clockwise bool    `json:"clockwise"`
}

type QiblaDistance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ProhibitedTimes lists the three daily windows in which voluntary prayer is
// discouraged.
type ProhibitedTimes struct {
	Sunrise TimeWindow `json:"sunrise"`
	Noon    TimeWindow `json:"noon"`
	Sunset  TimeWindow `json:"sunset"`
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Timezone struct {
	Name         string `json:"name"`
	UTCOffset    string `json:"utc_offset"`
	Abbreviation string `json:"abbreviation"`
}

// FastingResponse is the response of the fasting endpoint. Range describes
// the covered span, a single day or a whole month.
type FastingResponse struct {
	envelope
	Range string      `json:"range"`
	Data  FastingData `json:"data"`
}

type FastingData struct {
	Fasting   []FastingDay `json:"fasting"`
	WhiteDays *WhiteDays   `json:"white_days,omitempty"`
}

// FastingDay is one day's sahur and iftar schedule.
type FastingDay struct {
	Date          string      `json:"date"`
	Day           string      `json:"day,omitempty"`
	Hijri         string      `json:"hijri"`
	HijriReadable string      `json:"hijri_readable"`
	Time          FastingTime `json:"time"`
}

type FastingTime struct {
	Sahur    string `json:"sahur"`
	Iftar    string `json:"iftar"`
	Duration string `json:"duration"`
}

// WhiteDays marks the 13th, 14th, and 15th of the Hijri month, the
// recommended voluntary fasting days.
type WhiteDays struct {
	Status string            `json:"status"`
	Days   map[string]string `json:"days"`
}

// RamadanResponse is the response of the ramadan endpoint: the full month's
// fasting schedule plus an optional dua and hadith resource block.
type RamadanResponse struct {
	envelope
	Range       string           `json:"range"`
	RamadanYear int              `json:"ramadan_year"`
	Data        FastingData      `json:"data"`
	Resource    *RamadanResource `json:"resource,omitempty"`
}

type RamadanResource struct {
	Dua    *Dua            `json:"dua,omitempty"`
	Hadith *ResourceHadith `json:"hadith,omitempty"`
}

type Dua struct {
	Title           string `json:"title"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration"`
	Reference       string `json:"reference"`
}

type ResourceHadith struct {
	Arabic  string `json:"arabic"`
	English string `json:"english"`
	Source  string `json:"source"`
	Grade   string `json:"grade"`
}

// NisabResponse is the response of the zakat-nisab endpoint.
type NisabResponse struct {
	envelope
	CalculationStandard string    `json:"calculation_standard"`
	Currency            string    `json:"currency"`
	WeightUnit          string    `json:"weight_unit"`
	UpdatedAt           string    `json:"updated_at"`
	Data                NisabData `json:"data"`
}

type NisabData struct {
	NisabThresholds NisabThresholds `json:"nisab_thresholds"`
	ZakatRate       string          `json:"zakat_rate"`
	Notes           string          `json:"notes,omitempty"`
}

type NisabThresholds struct {
	Gold   NisabMetal `json:"gold"`
	Silver NisabMetal `json:"silver"`
}

// NisabMetal is one metal's threshold: the nisab weight, the current unit
// price, and their product.
type NisabMetal struct {
	Weight      float64 `json:"weight"`
	UnitPrice   float64 `json:"unit_price"`
	NisabAmount float64 `json:"nisab_amount"`
}

// NamesResponse is the response of the asma-ul-husna endpoint.
type NamesResponse struct {
	envelope
	Data NamesData `json:"data"`
}

type NamesData struct {
	Names              []Name `json:"names"`
	Total              int    `json:"total"`
	Language           string `json:"language"`
	LanguageCode       string `json:"language_code"`
	Title              string `json:"title"`
	ArabicTitle        string `json:"arabic_title"`
	Description        string `json:"description"`
	RecitationBenefits string `json:"recitation_benefits"`
	Hadith             string `json:"hadith"`
}

// Name is one of the 99 names of Allah.
type Name struct {
	Number          int    `json:"number"`
	Name            string `json:"name"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Meaning         string `json:"meaning"`
	Audio           string `json:"audio"`
}
