package basketball_ncaab

// ncaabTeamAliases covers the programs that show up on most boards. School
// abbreviations and conference-qualified spellings ("miami fl", "miami oh")
// are listed alongside nicknames. Remote registries extend this table.
var ncaabTeamAliases = map[string][]string{
	"Alabama Crimson Tide":       {"alabama", "bama", "crimson tide"},
	"Arizona Wildcats":           {"arizona wildcats", "zona"},
	"Arizona State Sun Devils":   {"arizona state", "asu", "sun devils"},
	"Arkansas Razorbacks":        {"arkansas", "razorbacks", "hogs"},
	"Auburn Tigers":              {"auburn"},
	"Baylor Bears":               {"baylor"},
	"Boston College Eagles":      {"boston college", "bc"},
	"BYU Cougars":                {"byu", "brigham young"},
	"Butler Bulldogs":            {"butler"},
	"California Golden Bears":    {"california", "cal"},
	"Cincinnati Bearcats":        {"bearcats"},
	"Clemson Tigers":             {"clemson"},
	"Colorado Buffaloes":         {"colorado buffaloes", "buffs"},
	"UConn Huskies":              {"uconn", "connecticut"},
	"Creighton Bluejays":         {"creighton"},
	"Dayton Flyers":              {"dayton"},
	"Duke Blue Devils":           {"duke", "blue devils"},
	"Florida Gators":             {"florida gators", "gators", "uf"},
	"Florida Atlantic Owls":      {"fau", "florida atlantic"},
	"Florida State Seminoles":    {"florida state", "fsu", "seminoles", "noles"},
	"Georgetown Hoyas":           {"georgetown", "hoyas"},
	"Georgia Bulldogs":           {"georgia", "uga"},
	"Gonzaga Bulldogs":           {"gonzaga", "zags"},
	"Houston Cougars":            {"houston cougars", "uh"},
	"Illinois Fighting Illini":   {"illinois", "illini"},
	"Indiana Hoosiers":           {"hoosiers", "iu"},
	"Iowa Hawkeyes":              {"iowa", "hawkeyes"},
	"Iowa State Cyclones":        {"iowa state", "isu", "cyclones"},
	"Kansas Jayhawks":            {"kansas", "ku", "jayhawks"},
	"Kansas State Wildcats":      {"kansas state", "k-state", "ksu"},
	"Kentucky Wildcats":          {"kentucky", "uk"},
	"Louisville Cardinals":       {"louisville", "uofl"},
	"LSU Tigers":                 {"lsu"},
	"Marquette Golden Eagles":    {"marquette"},
	"Maryland Terrapins":         {"maryland", "terps"},
	"Memphis Tigers":             {"memphis tigers"},
	"Miami (FL) Hurricanes":      {"miami fl", "miami (fl)", "miami florida"},
	"Miami (OH) RedHawks":        {"miami oh", "miami (oh)", "miami ohio", "redhawks"},
	"Michigan Wolverines":        {"michigan", "wolverines"},
	"Michigan State Spartans":    {"michigan state", "msu", "spartans"},
	"Mississippi State Bulldogs": {"mississippi state", "miss state", "msst"},
	"Missouri Tigers":            {"missouri", "mizzou"},
	"North Carolina Tar Heels":   {"north carolina", "unc", "tar heels"},
	"NC State Wolfpack":          {"nc state", "ncsu", "wolfpack"},
	"Nebraska Cornhuskers":       {"nebraska", "huskers"},
	"Northwestern Wildcats":      {"northwestern"},
	"Notre Dame Fighting Irish":  {"notre dame", "nd", "fighting irish"},
	"Ohio State Buckeyes":        {"ohio state", "osu", "buckeyes"},
	"Oklahoma Sooners":           {"oklahoma", "sooners"},
	"Ole Miss Rebels":            {"ole miss", "mississippi"},
	"Oregon Ducks":               {"oregon"},
	"Penn State Nittany Lions":   {"penn state", "psu"},
	"Pittsburgh Panthers":        {"pitt"},
	"Providence Friars":          {"providence", "friars"},
	"Purdue Boilermakers":        {"purdue", "boilermakers"},
	"Saint Mary's Gaels":         {"saint marys", "saint mary's", "st marys", "st. mary's", "smc"},
	"San Diego State Aztecs":     {"san diego state", "sdsu", "aztecs"},
	"Seton Hall Pirates":         {"seton hall"},
	"South Carolina Gamecocks":   {"south carolina", "gamecocks"},
	"St. John's Red Storm":       {"st johns", "st. john's", "st john's", "red storm"},
	"Stanford Cardinal":          {"stanford"},
	"Syracuse Orange":            {"syracuse", "cuse"},
	"TCU Horned Frogs":           {"tcu", "horned frogs"},
	"Tennessee Volunteers":       {"vols", "volunteers"},
	"Texas Longhorns":            {"longhorns"},
	"Texas A&M Aggies":           {"texas a&m", "tamu", "aggies"},
	"Texas Tech Red Raiders":     {"texas tech", "red raiders"},
	"UCLA Bruins":                {"ucla"},
	"USC Trojans":                {"usc", "trojans"},
	"Utah State Aggies":          {"utah state", "usu"},
	"Villanova Wildcats":         {"villanova", "nova"},
	"Virginia Cavaliers":         {"virginia", "uva", "wahoos"},
	"Virginia Tech Hokies":       {"virginia tech", "vt", "hokies"},
	"Wake Forest Demon Deacons":  {"wake forest", "wake"},
	"West Virginia Mountaineers": {"west virginia", "wvu", "mountaineers"},
	"Wisconsin Badgers":          {"wisconsin", "badgers"},
	"Xavier Musketeers":          {"xavier"},
}
