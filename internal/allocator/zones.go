package allocator

import "strings"

const GenericZone = "GEN"

var zoneCodes = map[string]string{
	"karachi":     "KHI",
	"lahore":      "LHE",
	"islamabad":   "ISB",
	"rawalpindi":  "RWP",
	"faisalabad":  "FSD",
	"multan":      "MLT",
	"peshawar":    "PES",
	"quetta":      "QTA",
	"hyderabad":   "HYD",
	"gujranwala":  "GJW",
	"sialkot":     "SKT",
	"sargodha":    "SRG",
	"bahawalpur":  "BWP",
	"sukkur":      "SKR",
	"larkana":     "LKN",
	"nawabshah":   "NWS",
	"mirpur khas": "MKS",
	"jacobabad":   "JBD",
	"shikarpur":   "SKP",
	"khairpur":    "KHP",
}

// ZoneCode maps a city to its three-letter zone. Unknown cities get GEN.
func ZoneCode(city string) string {
	key := strings.ToLower(strings.Join(strings.Fields(city), " "))
	if code, ok := zoneCodes[key]; ok {
		return code
	}
	return GenericZone
}
