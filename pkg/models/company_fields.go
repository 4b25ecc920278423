package models

// CompanyScrapingFields gates the optional navigations of a company scrape.
// The about page is always visited and has no flag. Employee depth is a
// separate page count and is not part of this set.
type CompanyScrapingFields uint8

const (
	// CompanyAffiliatedPages opens the "Show all" modal for showcase pages
	// and affiliated companies (~5s). Without it the about sidebar still
	// lists 3-5 of them.
	CompanyAffiliatedPages CompanyScrapingFields = 1 << iota
	// CompanyFollowerDetails scrapes the people following the company
	// (~10s per 100 followers).
	CompanyFollowerDetails
)

const (
	// CompanyMinimal visits the about page only (~3s).
	CompanyMinimal CompanyScrapingFields = 0
	// CompanyAll enables every additional navigation (~20s+).
	CompanyAll = CompanyAffiliatedPages | CompanyFollowerDetails
)

var companyBase = []namedFlag[CompanyScrapingFields]{
	{CompanyAffiliatedPages, "AFFILIATED_PAGES"},
	{CompanyFollowerDetails, "FOLLOWER_DETAILS"},
}

var companyNames = append(append([]namedFlag[CompanyScrapingFields]{}, companyBase...),
	namedFlag[CompanyScrapingFields]{CompanyMinimal, "MINIMAL"},
	namedFlag[CompanyScrapingFields]{CompanyAll, "ALL"},
)

// Union returns the fields selected by either f or o.
func (f CompanyScrapingFields) Union(o CompanyScrapingFields) CompanyScrapingFields { return f | o }

// Intersect returns the fields selected by both f and o.
func (f CompanyScrapingFields) Intersect(o CompanyScrapingFields) CompanyScrapingFields { return f & o }

// Has reports whether every flag in o is selected in f.
func (f CompanyScrapingFields) Has(o CompanyScrapingFields) bool { return f&o == o }

// Valid reports whether f sets no bit outside CompanyAll.
func (f CompanyScrapingFields) Valid() bool { return f&^CompanyAll == 0 }

// Flags returns the selected base flags in declaration order.
func (f CompanyScrapingFields) Flags() []CompanyScrapingFields { return splitFlags(f, companyBase) }

// String joins the selected flag names with "|". The zero value is MINIMAL.
func (f CompanyScrapingFields) String() string { return formatFlags(f, companyBase, "MINIMAL") }

func (f CompanyScrapingFields) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *CompanyScrapingFields) UnmarshalText(text []byte) error {
	v, err := ParseCompanyFields(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SetValue lets cleanenv decode the type from an environment variable.
func (f *CompanyScrapingFields) SetValue(s string) error { return f.UnmarshalText([]byte(s)) }

// ParseCompanyFields parses names like "all", "minimal" or
// "affiliated_pages|follower_details".
func ParseCompanyFields(s string) (CompanyScrapingFields, error) {
	return parseFlags(s, companyNames)
}
