package teams

// fbsTeams is the static team table, grouped by conference.
var fbsTeams = []teamRow{
	// SEC
	{"333", "alabama", "Alabama", "Crimson Tide", "ALA", "sec"},
	{"8", "arkansas", "Arkansas", "Razorbacks", "ARK", "sec"},
	{"2", "auburn", "Auburn", "Tigers", "AUB", "sec"},
	{"57", "florida", "Florida", "Gators", "FLA", "sec"},
	{"61", "georgia", "Georgia", "Bulldogs", "UGA", "sec"},
	{"96", "kentucky", "Kentucky", "Wildcats", "UK", "sec"},
	{"99", "lsu", "LSU", "Tigers", "LSU", "sec"},
	{"344", "mississippi-state", "Mississippi State", "Bulldogs", "MSST", "sec"},
	{"142", "missouri", "Missouri", "Tigers", "MIZ", "sec"},
	{"201", "oklahoma", "Oklahoma", "Sooners", "OU", "sec"},
	{"145", "ole-miss", "Ole Miss", "Rebels", "MISS", "sec"},
	{"2579", "south-carolina", "South Carolina", "Gamecocks", "SC", "sec"},
	{"2633", "tennessee", "Tennessee", "Volunteers", "TENN", "sec"},
	{"251", "texas", "Texas", "Longhorns", "TEX", "sec"},
	{"245", "texas-am", "Texas A&M", "Aggies", "TA&M", "sec"},
	{"238", "vanderbilt", "Vanderbilt", "Commodores", "VAN", "sec"},
	// Big Ten
	{"356", "illinois", "Illinois", "Fighting Illini", "ILL", "big-ten"},
	{"84", "indiana", "Indiana", "Hoosiers", "IU", "big-ten"},
	{"2294", "iowa", "Iowa", "Hawkeyes", "IOWA", "big-ten"},
	{"120", "maryland", "Maryland", "Terrapins", "MD", "big-ten"},
	{"130", "michigan", "Michigan", "Wolverines", "MICH", "big-ten"},
	{"127", "michigan-state", "Michigan State", "Spartans", "MSU", "big-ten"},
	{"135", "minnesota", "Minnesota", "Golden Gophers", "MINN", "big-ten"},
	{"158", "nebraska", "Nebraska", "Cornhuskers", "NEB", "big-ten"},
	{"77", "northwestern", "Northwestern", "Wildcats", "NU", "big-ten"},
	{"194", "ohio-state", "Ohio State", "Buckeyes", "OSU", "big-ten"},
	{"2483", "oregon", "Oregon", "Ducks", "ORE", "big-ten"},
	{"213", "penn-state", "Penn State", "Nittany Lions", "PSU", "big-ten"},
	{"2509", "purdue", "Purdue", "Boilermakers", "PUR", "big-ten"},
	{"164", "rutgers", "Rutgers", "Scarlet Knights", "RUTG", "big-ten"},
	{"26", "ucla", "UCLA", "Bruins", "UCLA", "big-ten"},
	{"30", "usc", "USC", "Trojans", "USC", "big-ten"},
	{"264", "washington", "Washington", "Huskies", "WASH", "big-ten"},
	{"275", "wisconsin", "Wisconsin", "Badgers", "WIS", "big-ten"},
	// ACC
	{"228", "clemson", "Clemson", "Tigers", "CLEM", "acc"},
	{"52", "florida-state", "Florida State", "Seminoles", "FSU", "acc"},
	{"2390", "miami", "Miami", "Hurricanes", "MIA", "acc"},
	{"153", "north-carolina", "North Carolina", "Tar Heels", "UNC", "acc"},
	{"152", "nc-state", "NC State", "Wolfpack", "NCST", "acc"},
	{"97", "louisville", "Louisville", "Cardinals", "LOU", "acc"},
	{"259", "virginia-tech", "Virginia Tech", "Hokies", "VT", "acc"},
	{"150", "duke", "Duke", "Blue Devils", "DUKE", "acc"},
	{"2567", "smu", "SMU", "Mustangs", "SMU", "acc"},
	{"59", "georgia-tech", "Georgia Tech", "Yellow Jackets", "GT", "acc"},
	// Big 12
	{"2641", "texas-tech", "Texas Tech", "Red Raiders", "TTU", "big-12"},
	{"254", "utah", "Utah", "Utes", "UTAH", "big-12"},
	{"252", "byu", "BYU", "Cougars", "BYU", "big-12"},
	{"2306", "kansas-state", "Kansas State", "Wildcats", "KSU", "big-12"},
	{"197", "oklahoma-state", "Oklahoma State", "Cowboys", "OKST", "big-12"},
	{"2628", "tcu", "TCU", "Horned Frogs", "TCU", "big-12"},
	{"239", "baylor", "Baylor", "Bears", "BAY", "big-12"},
	{"38", "colorado", "Colorado", "Buffaloes", "COLO", "big-12"},
	{"9", "arizona-state", "Arizona State", "Sun Devils", "ASU", "big-12"},
	{"66", "iowa-state", "Iowa State", "Cyclones", "ISU", "big-12"},
	// FBS Independents
	{"87", "notre-dame", "Notre Dame", "Fighting Irish", "ND", "independent"},
}

// conferenceNames maps conference slugs to display names.
var conferenceNames = map[string]string{
	"sec":         "SEC",
	"big-ten":     "Big Ten",
	"acc":         "ACC",
	"big-12":      "Big 12",
	"independent": "FBS Independents",
}
