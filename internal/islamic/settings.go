package islamic

// Default calculation settings applied when neither flags nor config set a
// value.
const (
	DefaultMethod   = 1 // University of Islamic Sciences, Karachi
	DefaultSchool   = 2 // Hanafi
	DefaultShifting = 0
	DefaultCalendar = "UAQ"

	DefaultNisabStandard = "classical"
	DefaultNisabUnit     = "g"

	DefaultLanguage = "en"
)

// Method is a prayer time calculation method supported by the API.
type Method struct {
	ID   int
	Name string
}

// Methods lists the supported calculation methods. ID 6 is unassigned
// upstream.
var Methods = []Method{
	{0, "Jafari / Shia Ithna-Ashari"},
	{1, "University of Islamic Sciences, Karachi"},
	{2, "Islamic Society of North America"},
	{3, "Muslim World League"},
	{4, "Umm Al-Qura University, Makkah"},
	{5, "Egyptian General Authority of Survey"},
	{7, "Institute of Geophysics, Tehran"},
	{8, "Gulf Region"},
	{9, "Kuwait"},
	{10, "Qatar"},
	{11, "MUIS, Singapore"},
	{12, "UOIF, France"},
	{13, "Diyanet, Turkey"},
	{14, "Russia"},
	{15, "Moonsighting Committee Worldwide"},
	{16, "Dubai (experimental)"},
	{17, "JAKIM, Malaysia"},
	{18, "Tunisia"},
	{19, "Algeria"},
	{20, "KEMENAG, Indonesia"},
	{21, "Morocco"},
	{22, "Lisbon, Portugal"},
	{23, "Jordan"},
}

// Schools maps the Asr juristic school parameter to its name.
var Schools = map[int]string{
	1: "Shafi",
	2: "Hanafi",
}

// Calendars lists the supported Hijri calendar calculation methods.
var Calendars = []string{"HJCoSA", "UAQ", "DIYANET", "MATHEMATICAL"}

// NisabStandards lists the supported nisab calculation standards.
var NisabStandards = []string{"classical", "common"}

// ValidMethod reports whether id names a known calculation method.
func ValidMethod(id int) bool {
	for _, m := range Methods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// ValidCalendar reports whether name is a known calendar method.
func ValidCalendar(name string) bool {
	for _, c := range Calendars {
		if c == name {
			return true
		}
	}
	return false
}

// ValidShifting reports whether the Hijri date adjustment is in the
// supported -2..+2 range.
func ValidShifting(n int) bool {
	return n >= -2 && n <= 2
}
