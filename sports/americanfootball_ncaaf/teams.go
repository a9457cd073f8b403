package americanfootball_ncaaf

// ncaafTeamAliases lists football programs. Schools shared with the NCAAB
// table keep the same canonical name so both leagues resolve identically.
var ncaafTeamAliases = map[string][]string{
	"Alabama Crimson Tide":      {"alabama", "bama", "roll tide"},
	"Appalachian State":         {"app state", "appalachian state"},
	"Army Black Knights":        {"army"},
	"Auburn Tigers":             {"auburn"},
	"Boise State Broncos":       {"boise state", "boise"},
	"Clemson Tigers":            {"clemson"},
	"Colorado Buffaloes":        {"colorado buffaloes", "buffs"},
	"Florida Gators":            {"florida gators", "gators"},
	"Florida State Seminoles":   {"florida state", "fsu", "noles"},
	"Georgia Bulldogs":          {"georgia", "uga", "dawgs"},
	"Iowa Hawkeyes":             {"iowa", "hawkeyes"},
	"Kansas State Wildcats":     {"kansas state", "k-state"},
	"LSU Tigers":                {"lsu"},
	"Miami (FL) Hurricanes":     {"miami fl", "miami (fl)"},
	"Michigan Wolverines":       {"michigan", "wolverines"},
	"Navy Midshipmen":           {"navy", "midshipmen"},
	"Notre Dame Fighting Irish": {"notre dame", "nd"},
	"Ohio State Buckeyes":       {"ohio state", "osu", "buckeyes"},
	"Oklahoma Sooners":          {"oklahoma", "sooners"},
	"Ole Miss Rebels":           {"ole miss"},
	"Oregon Ducks":              {"oregon"},
	"Penn State Nittany Lions":  {"penn state", "psu", "nittany lions"},
	"SMU Mustangs":              {"smu", "mustangs"},
	"Tennessee Volunteers":      {"vols", "volunteers"},
	"Texas Longhorns":           {"longhorns"},
	"Texas A&M Aggies":          {"texas a&m", "tamu"},
	"Tulane Green Wave":         {"tulane", "green wave"},
	"USC Trojans":               {"usc", "trojans"},
	"Utah Utes":                 {"utes"},
	"Washington Huskies":        {"huskies", "uw"},
	"Wisconsin Badgers":         {"wisconsin", "badgers"},
	"UNLV Rebels":               {"unlv"},
}
