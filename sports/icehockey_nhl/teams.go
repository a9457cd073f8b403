package icehockey_nhl

var nhlTeamAliases = map[string][]string{
	"Anaheim Ducks":         {"ducks", "anaheim", "ana"},
	"Boston Bruins":         {"bruins", "boston"},
	"Buffalo Sabres":        {"sabres", "buffalo"},
	"Calgary Flames":        {"flames", "calgary", "cgy"},
	"Carolina Hurricanes":   {"hurricanes", "canes", "carolina"},
	"Chicago Blackhawks":    {"blackhawks", "hawks", "chicago"},
	"Colorado Avalanche":    {"avalanche", "avs", "colorado"},
	"Columbus Blue Jackets": {"blue jackets", "jackets", "columbus", "cbj"},
	"Dallas Stars":          {"stars", "dallas"},
	"Detroit Red Wings":     {"red wings", "wings", "detroit"},
	"Edmonton Oilers":       {"oilers", "edmonton", "edm"},
	"Florida Panthers":      {"panthers", "florida", "fla"},
	"Los Angeles Kings":     {"kings", "la kings"},
	"Minnesota Wild":        {"wild", "minnesota"},
	"Montréal Canadiens":    {"canadiens", "habs", "montreal", "mtl"},
	"Nashville Predators":   {"predators", "preds", "nashville", "nsh"},
	"New Jersey Devils":     {"devils", "new jersey", "njd"},
	"New York Islanders":    {"islanders", "isles", "nyi"},
	"New York Rangers":      {"rangers", "ny rangers", "nyr"},
	"Ottawa Senators":       {"senators", "sens", "ottawa", "ott"},
	"Philadelphia Flyers":   {"flyers", "philadelphia"},
	"Pittsburgh Penguins":   {"penguins", "pens", "pittsburgh"},
	"San Jose Sharks":       {"sharks", "san jose", "sj"},
	"Seattle Kraken":        {"kraken", "seattle"},
	"St. Louis Blues":       {"blues", "st louis", "st. louis"},
	"Tampa Bay Lightning":   {"lightning", "bolts", "tampa bay", "tampa"},
	"Toronto Maple Leafs":   {"maple leafs", "leafs", "toronto"},
	"Utah Hockey Club":      {"utah hc", "utah", "uhc"},
	"Vancouver Canucks":     {"canucks", "vancouver", "van"},
	"Vegas Golden Knights":  {"golden knights", "knights", "vegas", "vgk"},
	"Washington Capitals":   {"capitals", "caps", "washington"},
	"Winnipeg Jets":         {"jets", "winnipeg", "wpg"},
}
