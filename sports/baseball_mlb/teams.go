package baseball_mlb

var mlbTeamAliases = map[string][]string{
	"Arizona Diamondbacks":  {"diamondbacks", "dbacks", "d-backs", "arizona"},
	"Atlanta Braves":        {"braves", "atlanta"},
	"Baltimore Orioles":     {"orioles", "baltimore"},
	"Boston Red Sox":        {"red sox", "boston"},
	"Chicago Cubs":          {"cubs", "chc"},
	"Chicago White Sox":     {"white sox", "chw", "cws"},
	"Cincinnati Reds":       {"reds", "cincinnati"},
	"Cleveland Guardians":   {"guardians", "cleveland"},
	"Colorado Rockies":      {"rockies", "colorado", "col"},
	"Detroit Tigers":        {"tigers", "detroit"},
	"Houston Astros":        {"astros", "stros", "houston"},
	"Kansas City Royals":    {"royals", "kansas city"},
	"Los Angeles Angels":    {"angels", "la angels", "laa"},
	"Los Angeles Dodgers":   {"dodgers", "la dodgers", "lad"},
	"Miami Marlins":         {"marlins", "miami"},
	"Milwaukee Brewers":     {"brewers", "milwaukee"},
	"Minnesota Twins":       {"twins", "minnesota"},
	"New York Mets":         {"mets", "ny mets", "nym"},
	"New York Yankees":      {"yankees", "yanks", "ny yankees", "nyy"},
	"Oakland Athletics":     {"athletics", "oakland", "oak"},
	"Philadelphia Phillies": {"phillies", "philadelphia"},
	"Pittsburgh Pirates":    {"pirates", "bucs", "pittsburgh"},
	"San Diego Padres":      {"padres", "san diego", "sd"},
	"San Francisco Giants":  {"giants", "sf giants", "san francisco"},
	"Seattle Mariners":      {"mariners", "seattle", "sea"},
	"St. Louis Cardinals":   {"cardinals", "st louis", "st. louis", "stl"},
	"Tampa Bay Rays":        {"rays", "tampa bay", "tampa"},
	"Texas Rangers":         {"rangers", "texas", "tex"},
	"Toronto Blue Jays":     {"blue jays", "jays", "toronto"},
	"Washington Nationals":  {"nationals", "nats", "washington"},
}
