package qtm

// countryNames maps OECD location codes to display names.
var countryNames = map[string]string{
	"AUS":  "Australia",
	"BRA":  "Brazil",
	"CAN":  "Canada",
	"CHE":  "Switzerland",
	"CHL":  "Chile",
	"CHN":  "China",
	"COL":  "Colombia",
	"CRI":  "Costa Rica",
	"CZE":  "Czechia",
	"DNK":  "Denmark",
	"EA19": "Eurozone",
	"GBR":  "United Kingdom",
	"HUN":  "Hungary",
	"IDN":  "Indonesia",
	"IND":  "India",
	"ISL":  "Iceland",
	"ISR":  "Israel",
	"JPN":  "Japan",
	"KOR":  "South Korea",
	"MEX":  "Mexico",
	"NOR":  "Norway",
	"NZL":  "New Zealand",
	"POL":  "Poland",
	"RUS":  "Russia",
	"SWE":  "Sweden",
	"TUR":  "Turkey",
	"USA":  "United States",
	"ZAF":  "South Africa",
}

// CountryName returns the display name of an OECD location code.
func CountryName(code string) (string, bool) {
	name, ok := countryNames[code]
	return name, ok
}
