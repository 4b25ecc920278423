package models

// PersonScrapingFields selects which sections of a person profile are
// visited. Each base flag owns one bit; presets are unions of base flags.
type PersonScrapingFields uint8

const (
	// PersonBasicInfo covers name, headline, location and about, all read
	// from the main profile page (~2s).
	PersonBasicInfo PersonScrapingFields = 1 << iota
	// PersonExperience is the work history under details/experience (~5s).
	PersonExperience
	// PersonEducation is the education history under details/education (~5s).
	PersonEducation
	// PersonInterests is followed companies and people under details/interests (~5s).
	PersonInterests
	// PersonAccomplishments is honors and languages, two navigations (~6s).
	PersonAccomplishments
	// PersonContacts is contact info and connections, modal plus navigation (~8s).
	PersonContacts
)

// Presets. The durations are rough wall-clock guidance, nothing enforces them.
const (
	// PersonMinimal is basic info only (~2s).
	PersonMinimal = PersonBasicInfo
	// PersonCareer is basic info, experience and education (~12s).
	PersonCareer = PersonBasicInfo | PersonExperience | PersonEducation
	// PersonAll is the complete profile (~30s).
	PersonAll = PersonBasicInfo | PersonExperience | PersonEducation |
		PersonInterests | PersonAccomplishments | PersonContacts
)

var personBase = []namedFlag[PersonScrapingFields]{
	{PersonBasicInfo, "BASIC_INFO"},
	{PersonExperience, "EXPERIENCE"},
	{PersonEducation, "EDUCATION"},
	{PersonInterests, "INTERESTS"},
	{PersonAccomplishments, "ACCOMPLISHMENTS"},
	{PersonContacts, "CONTACTS"},
}

var personNames = append(append([]namedFlag[PersonScrapingFields]{}, personBase...),
	namedFlag[PersonScrapingFields]{PersonMinimal, "MINIMAL"},
	namedFlag[PersonScrapingFields]{PersonCareer, "CAREER"},
	namedFlag[PersonScrapingFields]{PersonAll, "ALL"},
	namedFlag[PersonScrapingFields]{0, "NONE"},
)

// Union returns the fields selected by either f or o.
func (f PersonScrapingFields) Union(o PersonScrapingFields) PersonScrapingFields { return f | o }

// Intersect returns the fields selected by both f and o.
func (f PersonScrapingFields) Intersect(o PersonScrapingFields) PersonScrapingFields { return f & o }

// Has reports whether every flag in o is selected in f.
func (f PersonScrapingFields) Has(o PersonScrapingFields) bool { return f&o == o }

// Valid reports whether f sets no bit outside PersonAll.
func (f PersonScrapingFields) Valid() bool { return f&^PersonAll == 0 }

// Flags returns the selected base flags in declaration order.
func (f PersonScrapingFields) Flags() []PersonScrapingFields { return splitFlags(f, personBase) }

// String joins the selected flag names with "|". The zero value is NONE.
func (f PersonScrapingFields) String() string { return formatFlags(f, personBase, "NONE") }

func (f PersonScrapingFields) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *PersonScrapingFields) UnmarshalText(text []byte) error {
	v, err := ParsePersonFields(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SetValue lets cleanenv decode the type from an environment variable.
func (f *PersonScrapingFields) SetValue(s string) error { return f.UnmarshalText([]byte(s)) }

// ParsePersonFields parses a list such as "career", "basic_info|education"
// or "BASIC_INFO,CONTACTS". The empty string parses as no fields.
func ParsePersonFields(s string) (PersonScrapingFields, error) {
	return parseFlags(s, personNames)
}
