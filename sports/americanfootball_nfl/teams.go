package americanfootball_nfl

// nflTeamAliases maps canonical NFL team names to common variants.
// Bare city names mostly belong to the NBA table; the NFL scope picks them up
// when the league is known.
var nflTeamAliases = map[string][]string{
	"Arizona Cardinals":     {"cardinals", "arizona", "ari", "cards"},
	"Atlanta Falcons":       {"falcons", "atlanta"},
	"Baltimore Ravens":      {"ravens", "baltimore", "bal"},
	"Buffalo Bills":         {"bills", "buffalo", "buf"},
	"Carolina Panthers":     {"panthers", "carolina"},
	"Chicago Bears":         {"bears", "chicago"},
	"Cincinnati Bengals":    {"bengals", "cincinnati", "cin"},
	"Cleveland Browns":      {"browns", "cleveland"},
	"Dallas Cowboys":        {"cowboys", "dallas"},
	"Denver Broncos":        {"broncos", "denver"},
	"Detroit Lions":         {"lions", "detroit"},
	"Green Bay Packers":     {"packers", "green bay", "gb", "pack"},
	"Houston Texans":        {"texans", "houston"},
	"Indianapolis Colts":    {"colts", "indianapolis", "indy"},
	"Jacksonville Jaguars":  {"jaguars", "jags", "jacksonville", "jax"},
	"Kansas City Chiefs":    {"chiefs", "kansas city", "kc"},
	"Las Vegas Raiders":     {"raiders", "las vegas", "lv", "lvr"},
	"Los Angeles Chargers":  {"chargers", "la chargers", "lac chargers"},
	"Los Angeles Rams":      {"rams", "la rams", "lar"},
	"Miami Dolphins":        {"dolphins", "fins", "miami"},
	"Minnesota Vikings":     {"vikings", "vikes", "minnesota"},
	"New England Patriots":  {"patriots", "pats", "new england"},
	"New Orleans Saints":    {"saints", "new orleans"},
	"New York Giants":       {"giants", "ny giants", "nyg"},
	"New York Jets":         {"jets", "ny jets", "nyj"},
	"Philadelphia Eagles":   {"eagles", "philadelphia"},
	"Pittsburgh Steelers":   {"steelers", "pittsburgh", "pit"},
	"San Francisco 49ers":   {"49ers", "niners", "san francisco", "sf"},
	"Seattle Seahawks":      {"seahawks", "hawks", "seattle"},
	"Tampa Bay Buccaneers":  {"buccaneers", "bucs", "tampa bay", "tampa", "tb"},
	"Tennessee Titans":      {"titans", "tennessee"},
	"Washington Commanders": {"commanders", "washington"},
}
