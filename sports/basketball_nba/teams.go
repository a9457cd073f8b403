package basketball_nba

// nbaTeamAliases maps canonical franchise names to the nicknames, cities and
// abbreviations people actually type. City names that are shared with other
// leagues resolve here first since NBA is registered first.
var nbaTeamAliases = map[string][]string{
	"Atlanta Hawks":          {"hawks", "atlanta", "atl"},
	"Boston Celtics":         {"celtics", "boston", "bos", "cs"},
	"Brooklyn Nets":          {"nets", "brooklyn", "bkn", "bk"},
	"Charlotte Hornets":      {"hornets", "charlotte", "cha", "cho"},
	"Chicago Bulls":          {"bulls", "chicago", "chi"},
	"Cleveland Cavaliers":    {"cavaliers", "cavs", "cleveland", "cle"},
	"Dallas Mavericks":       {"mavericks", "mavs", "dallas", "dal"},
	"Denver Nuggets":         {"nuggets", "denver", "den"},
	"Detroit Pistons":        {"pistons", "detroit", "det"},
	"Golden State Warriors":  {"warriors", "golden state", "gsw", "gs", "dubs"},
	"Houston Rockets":        {"rockets", "houston", "hou"},
	"Indiana Pacers":         {"pacers", "indiana", "ind"},
	"Los Angeles Clippers":   {"clippers", "la clippers", "lac", "clips"},
	"Los Angeles Lakers":     {"lakers", "la lakers", "lal"},
	"Memphis Grizzlies":      {"grizzlies", "grizz", "memphis", "mem"},
	"Miami Heat":             {"heat", "miami", "mia"},
	"Milwaukee Bucks":        {"bucks", "milwaukee", "mil"},
	"Minnesota Timberwolves": {"timberwolves", "wolves", "twolves", "minnesota"},
	"New Orleans Pelicans":   {"pelicans", "pels", "new orleans", "nop"},
	"New York Knicks":        {"knicks", "new york knicks", "nyk"},
	"Oklahoma City Thunder":  {"thunder", "oklahoma city", "okc"},
	"Orlando Magic":          {"magic", "orlando", "orl"},
	"Philadelphia 76ers":     {"76ers", "sixers", "philadelphia", "phi", "philly"},
	"Phoenix Suns":           {"suns", "phoenix", "phx"},
	"Portland Trail Blazers": {"trail blazers", "blazers", "portland", "por"},
	"Sacramento Kings":       {"kings", "sacramento", "sac"},
	"San Antonio Spurs":      {"spurs", "san antonio", "sas"},
	"Toronto Raptors":        {"raptors", "toronto", "tor"},
	"Utah Jazz":              {"jazz", "utah", "uta"},
	"Washington Wizards":     {"wizards", "wiz", "washington", "wsh"},
}
