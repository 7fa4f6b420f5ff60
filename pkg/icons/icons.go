package icons

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KMLColor marks a table entry whose colour comes from the KML styleUrl
// rather than from the table.
const KMLColor = "KMLCOLOR"

// Unknown is the fallback entry used for icon IDs absent from the table.
const Unknown = "unknown"

// Waypt is one OSMAnd icon assignment: icon name, HTML hex colour (or
// KMLColor) and background shape (circle, octagon or square).
type Waypt struct {
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
	Shape string `yaml:"shape"`
}

// Table maps a Google My Maps icon ID to its OSMAnd equivalent.
type Table map[string]Waypt

// The KML icon ID is the number embedded in an exported placemark's
// styleUrl, e.g. #icon-1739-0288D1-nodesc => "1739". OSMAnd icon names are
// the ones the app writes into favorites.gpx.
var builtin = Table{
	Unknown: {"special_symbol_question_mark", "e044bb", "octagon"},
	"1765":  {"tourism_camp_site", KMLColor, "circle"},          // campsite
	"1525":  {"leisure_marina", "a71de1", "octagon"},            // river access
	"1739":  {"special_number_0", KMLColor, "circle"},           // mileage marker
	"1596":  {"special_trekking", KMLColor, "circle"},           // hiking trailhead
	"1369":  {"special_trekking", KMLColor, "circle"},           // hiking trailhead, old style
	"1371":  {"special_trekking", KMLColor, "circle"},           // hiking trailhead, old style
	"1723":  {"tourism_viewpoint", KMLColor, "octagon"},         // rapid
	"1602":  {"tourism_hotel", KMLColor, "circle"},              // hotel, lodge
	"1528":  {"bridge_structure_suspension", "10c0f0", "circle"}, // bridge
	"1577":  {"restaurants", KMLColor, "circle"},                // restaurant
	"1085":  {"restaurants", KMLColor, "circle"},                // restaurant, old style
	"1650":  {"tourism_picnic_site", "eecc22", "circle"},        // picnic site
	"1644":  {"amenity_parking", KMLColor, "circle"},            // parking area
	"1578":  {"shop_supermarket", KMLColor, "circle"},           // grocery store
	"1685":  {"shop_supermarket", KMLColor, "circle"},           // grocery store
	"1023":  {"shop_supermarket", KMLColor, "circle"},           // grocery store, old style
	"1504":  {"air_transport", "10c0f0", "circle"},              // airport, airstrip
	"1581":  {"fuel", KMLColor, "circle"},                       // gas station
	"1733":  {"amenity_toilets", "10c0f0", "circle"},            // toilet, restroom
	"1624":  {"amenity_doctors", "d00d0d", "circle"},            // hospital, emergency room
	"1608":  {"tourism_information", "1010a0", "circle"},        // tourism information
	"1203":  {"tourism_information", "1010a0", "circle"},        // tourism information, old style
	"1535":  {"special_photo_camera", KMLColor, "circle"},       // POI, camera
	"993":   {"special_photo_camera", KMLColor, "circle"},       // POI, camera, old style
	"1574":  {"special_flag_start", KMLColor, "circle"},         // POI, flag
	"1899":  {"special_marker", KMLColor, "circle"},             // POI, pin
	"1502":  {"special_star", KMLColor, "circle"},               // POI, star
	"1501":  {"special_symbol_plus", KMLColor, "circle"},        // POI, plus/diamond
	"1500":  {"special_flag_start", KMLColor, "circle"},         // POI, square flag
	"1592":  {"special_heart", KMLColor, "circle"},              // POI, heart
	"1729":  {"tourism_viewpoint", KMLColor, "circle"},          // vista point
	"503":   {"special_marker", KMLColor, "circle"},             // old school map point
	"1603":  {"special_house", "eecc22", "circle"},              // house
	"1879":  {"amenity_biergarten", KMLColor, "circle"},         // brewery, brew pub
	"1541":  {"special_symbol_exclamation_mark", "ff0000", "octagon"}, // danger "!"
	"1898":  {"special_symbol_exclamation_mark", KMLColor, "octagon"}, // danger "X"
	"1564":  {"amenity_fire_station", "ff0000", "octagon"},      // danger, fire
	"1710":  {"special_arrow_up_and_down", "10c0f0", "circle"},  // river gauge
	"1655":  {"amenity_police", "1010a0", "circle"},             // ranger/police station
	"1657":  {"amenity_police", "1010a0", "circle"},             // ranger/police station
	"1720":  {"wood", "eecc22", "circle"},                       // park
	"1701":  {"sport_swimming", "eecc22", "circle"},             // lake, swimmer
	"1395":  {"sport_swimming", "eecc22", "circle"},             // lake, old style
	"1811":  {"special_sun", "eecc22", "circle"},                // hot spring
	"1716":  {"route_railway_ref", KMLColor, "circle"},          // train station
	"1532":  {"route_bus_ref", KMLColor, "circle"},              // bus stop
	"1626":  {"route_monorail_ref", KMLColor, "circle"},         // metro stop
	"1534":  {"amenity_cafe", KMLColor, "circle"},               // cafe
	"1607":  {"amenity_cafe", KMLColor, "circle"},               // cafe, old style
	"1892":  {"waterfall", "eecc22", "circle"},                  // waterfall
	"1634":  {"building_type_pyramid", "eecc22", "circle"},      // mountain peak
	"1684":  {"shop_department_store", "10c0f0", "circle"},      // store
	"1095":  {"shop_department_store", "10c0f0", "circle"},      // store, old style
	"1517":  {"amenity_bar", KMLColor, "circle"},                // bar, lounge
	"979":   {"special_sail_boat", "a71de1", "circle"},          // passenger ferry
	"1537":  {"special_sail_boat", KMLColor, "circle"},          // auto ferry
	"1498":  {"place_town", "0244D1", "circle"},                 // town, village
	"1521":  {"leisure_beach_resort", "eecc22", "circle"},       // beach
	"1703":  {"amenity_drinking_water", "00842b", "circle"},     // water faucet
	"1781":  {"sanitary_dump_station", "10c0f0", "circle"},      // RV dump station
	"1798":  {"Winery", KMLColor, "circle"},                     // winery
	"1636":  {"Museum", KMLColor, "circle"},                     // museum
	"1289":  {"Museum", "10c0f0", "circle"},                     // museum, old style
	"1741":  {"special_wagon", KMLColor, "circle"},              // car rental
	"1538":  {"special_wagon", KMLColor, "circle"},              // car rental
	"1590":  {"shop_car_repair", "10c0f0", "circle"},            // car/tire repair
	"1659":  {"amenity_post_box", "10c0f0", "circle"},           // post office
	"1512":  {"amenity_atm", "10c0f0", "circle"},                // bank, atm
	"1870":  {"sport_scuba_diving", KMLColor, "octagon"},        // dive site
	"1882":  {"reef", KMLColor, "octagon"},                      // reef, tide pool
	"1573":  {"reef", KMLColor, "octagon"},                      // reef, fishing spot
	"1569":  {"special_sail_boat", KMLColor, "circle"},          // passenger ferry
	"1709":  {"amenity_cinema", KMLColor, "circle"},             // cinema
	"1615":  {"sport_canoe", KMLColor, "circle"},                // kayak
	"1598":  {"historic_castle", KMLColor, "circle"},            // castle, ruins
	"1670":  {"building_type_church", KMLColor, "circle"},       // church, mosque, temple
	"1877":  {"special_arrow_up_arrow_down", KMLColor, "circle"}, // stairway
}

// Builtin returns a copy of the builtin table so per-run overrides never
// touch the shared value.
func Builtin() Table {
	t := make(Table, len(builtin))
	for k, v := range builtin {
		t[k] = v
	}
	return t
}

// Lookup maps a KML icon ID to its OSMAnd assignment. The second return
// is false when the ID was absent and the Unknown entry was used instead.
func (t Table) Lookup(id string) (Waypt, bool) {
	if w, ok := t[id]; ok {
		return w, true
	}
	return t[Unknown], false
}

// Load merges a YAML override file over the builtin table. Entries are
// keyed by icon ID; partial entries inherit nothing, they replace the
// whole assignment.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	over := Table{}
	if err = yaml.NewDecoder(f).Decode(&over); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t := Builtin()
	for k, v := range over {
		t[k] = v
	}
	return t, nil
}
