package geodata

// district is one URA postal district: region plus a representative
// centroid for the sectors it covers.
type district struct {
	region string
	lat    float64
	lon    float64
}

// districtSectors maps each postal district to the two-digit sectors it
// covers, following the national postal sector scheme.
var districtSectors = []struct {
	sectors []string
	d       district
}{
	{[]string{"01", "02", "03", "04", "05", "06"}, district{"Central", 1.2838, 103.8515}}, // Raffles Place, Marina
	{[]string{"07", "08"}, district{"Central", 1.3038, 103.8554}},                         // Rochor, Bugis
	{[]string{"14", "15", "16"}, district{"Central", 1.2897, 103.8123}},                   // Queenstown, Tiong Bahru
	{[]string{"09", "10"}, district{"Central", 1.2650, 103.8220}},                         // Telok Blangah, HarbourFront
	{[]string{"11", "12", "13"}, district{"West", 1.2966, 103.7764}},                      // Pasir Panjang, Clementi
	{[]string{"17"}, district{"Central", 1.2931, 103.8462}},                               // High Street
	{[]string{"18", "19"}, district{"Central", 1.3000, 103.8555}},                         // Middle Road
	{[]string{"20", "21"}, district{"Central", 1.3119, 103.8399}},                         // Little India
	{[]string{"22", "23"}, district{"Central", 1.3048, 103.8318}},                         // Orchard
	{[]string{"24", "25", "26", "27"}, district{"Central", 1.3114, 103.8070}},             // Tanglin, Holland
	{[]string{"28", "29", "30"}, district{"Central", 1.3201, 103.8421}},                   // Newton, Novena
	{[]string{"31", "32", "33"}, district{"Central", 1.3318, 103.8568}},                   // Toa Payoh, Balestier
	{[]string{"34", "35", "36", "37"}, district{"Central", 1.3273, 103.8823}},             // Macpherson, Potong Pasir
	{[]string{"38", "39", "40", "41"}, district{"East", 1.3170, 103.8930}},                // Geylang, Eunos
	{[]string{"42", "43", "44", "45"}, district{"East", 1.3028, 103.9074}},                // Katong, Marine Parade
	{[]string{"46", "47", "48"}, district{"East", 1.3236, 103.9273}},                      // Bedok, Upper East Coast
	{[]string{"49", "50", "81"}, district{"East", 1.3644, 103.9915}},                      // Loyang, Changi
	{[]string{"51", "52"}, district{"East", 1.3530, 103.9449}},                            // Tampines, Pasir Ris
	{[]string{"53", "54", "55", "82"}, district{"North-East", 1.3554, 103.8870}},          // Serangoon, Hougang, Punggol
	{[]string{"56", "57"}, district{"North-East", 1.3692, 103.8455}},                      // Bishan, Ang Mo Kio
	{[]string{"58", "59"}, district{"Central", 1.3404, 103.7769}},                         // Upper Bukit Timah
	{[]string{"60", "61", "62", "63", "64"}, district{"West", 1.3329, 103.7436}},          // Jurong
	{[]string{"65", "66", "67", "68"}, district{"West", 1.3774, 103.7640}},                // Bukit Batok, Choa Chu Kang
	{[]string{"69", "70", "71"}, district{"North", 1.4240, 103.7600}},                     // Lim Chu Kang, Tengah
	{[]string{"72", "73"}, district{"North", 1.4382, 103.7890}},                           // Kranji, Woodlands
	{[]string{"77", "78"}, district{"North-East", 1.4043, 103.8710}},                      // Upper Thomson, Springleaf
	{[]string{"75", "76"}, district{"North", 1.4491, 103.8185}},                           // Yishun, Sembawang
	{[]string{"79", "80"}, district{"North-East", 1.3916, 103.8951}},                      // Seletar
}

func buildDistrictIndex() map[string]district {
	idx := make(map[string]district, 82)
	for _, entry := range districtSectors {
		for _, sector := range entry.sectors {
			idx[sector] = entry.d
		}
	}
	return idx
}

// embeddedStations is a representative MRT station table covering every
// line. Deployments with a fuller dataset pass an override file to Load.
var embeddedStations = []Station{
	{"Jurong East", "EW", 1.3330, 103.7422},
	{"Boon Lay", "EW", 1.3386, 103.7060},
	{"Clementi", "EW", 1.3151, 103.7652},
	{"Buona Vista", "EW", 1.3070, 103.7900},
	{"Outram Park", "EW", 1.2802, 103.8395},
	{"Raffles Place", "EW", 1.2840, 103.8515},
	{"Bugis", "EW", 1.3005, 103.8561},
	{"Kallang", "EW", 1.3114, 103.8714},
	{"Aljunied", "EW", 1.3164, 103.8829},
	{"Paya Lebar", "EW", 1.3177, 103.8926},
	{"Eunos", "EW", 1.3196, 103.9030},
	{"Bedok", "EW", 1.3240, 103.9300},
	{"Tanah Merah", "EW", 1.3273, 103.9465},
	{"Simei", "EW", 1.3432, 103.9534},
	{"Tampines", "EW", 1.3532, 103.9453},
	{"Pasir Ris", "EW", 1.3725, 103.9493},
	{"Marsiling", "NS", 1.4326, 103.7743},
	{"Woodlands", "NS", 1.4369, 103.7865},
	{"Sembawang", "NS", 1.4491, 103.8200},
	{"Yishun", "NS", 1.4294, 103.8350},
	{"Ang Mo Kio", "NS", 1.3700, 103.8496},
	{"Bishan", "NS", 1.3513, 103.8491},
	{"Toa Payoh", "NS", 1.3327, 103.8474},
	{"Newton", "NS", 1.3138, 103.8381},
	{"Orchard", "NS", 1.3044, 103.8322},
	{"City Hall", "NS", 1.2931, 103.8520},
	{"Marina Bay", "NS", 1.2763, 103.8545},
	{"HarbourFront", "NE", 1.2653, 103.8210},
	{"Chinatown", "NE", 1.2847, 103.8443},
	{"Little India", "NE", 1.3066, 103.8492},
	{"Serangoon", "NE", 1.3498, 103.8734},
	{"Kovan", "NE", 1.3600, 103.8850},
	{"Hougang", "NE", 1.3713, 103.8924},
	{"Sengkang", "NE", 1.3916, 103.8955},
	{"Punggol", "NE", 1.4053, 103.9022},
	{"Dhoby Ghaut", "CC", 1.2993, 103.8455},
	{"MacPherson", "CC", 1.3267, 103.8900},
	{"Holland Village", "CC", 1.3119, 103.7961},
	{"Caldecott", "CC", 1.3376, 103.8396},
	{"Botanic Gardens", "CC", 1.3222, 103.8155},
	{"Bukit Panjang", "DT", 1.3784, 103.7625},
	{"Beauty World", "DT", 1.3412, 103.7758},
	{"Newton East", "DT", 1.3127, 103.8388},
	{"Bencoolen", "DT", 1.2985, 103.8500},
	{"Expo", "DT", 1.3354, 103.9614},
	{"Woodlands North", "TE", 1.4482, 103.7850},
	{"Springleaf", "TE", 1.3977, 103.8180},
	{"Upper Thomson", "TE", 1.3543, 103.8330},
	{"Orchard Boulevard", "TE", 1.3022, 103.8253},
	{"Marine Parade", "TE", 1.3026, 103.9054},
	{"Choa Chu Kang", "NS", 1.3854, 103.7443},
	{"Bukit Batok", "NS", 1.3490, 103.7496},
	{"Kranji", "NS", 1.4252, 103.7619},
	{"Changi Airport", "EW", 1.3574, 103.9884},
	{"Bartley", "CC", 1.3424, 103.8797},
	{"Paya Lebar CC", "CC", 1.3177, 103.8930},
	{"Seletar", "TE", 1.4052, 103.8690},
}
