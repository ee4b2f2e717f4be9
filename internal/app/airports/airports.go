// Package airports is the read-only airport coordinate table.
//
// The table is built once at package initialization and never mutated,
// so lookups are safe from any number of goroutines.
package airports

import (
	"sort"
	"strings"

	"github.com/francois-poidevin/flightsun/internal/app/geo"
)

// Airport is one entry of the table. Code is the uppercase IATA code.
type Airport struct {
	Code string         `json:"code"`
	Name string         `json:"name"`
	geo.Coordinate
}

var table = build([]Airport{
	// India
	{"DEL", "Indira Gandhi International, Delhi", geo.Coordinate{Lat: 28.5562, Lon: 77.1000}},
	{"JAI", "Jaipur International", geo.Coordinate{Lat: 26.8282, Lon: 75.8056}},
	{"BOM", "Chhatrapati Shivaji Maharaj International, Mumbai", geo.Coordinate{Lat: 19.0896, Lon: 72.8656}},
	{"BLR", "Kempegowda International, Bengaluru", geo.Coordinate{Lat: 13.1986, Lon: 77.7066}},
	{"MAA", "Chennai International", geo.Coordinate{Lat: 12.9941, Lon: 80.1709}},
	{"CCU", "Netaji Subhas Chandra Bose International, Kolkata", geo.Coordinate{Lat: 22.6547, Lon: 88.4467}},
	{"HYD", "Rajiv Gandhi International, Hyderabad", geo.Coordinate{Lat: 17.2403, Lon: 78.4294}},
	{"COK", "Cochin International", geo.Coordinate{Lat: 10.1520, Lon: 76.4019}},
	{"GOI", "Goa International, Dabolim", geo.Coordinate{Lat: 15.3808, Lon: 73.8314}},
	{"AMD", "Sardar Vallabhbhai Patel International, Ahmedabad", geo.Coordinate{Lat: 23.0772, Lon: 72.6347}},
	{"PNQ", "Pune", geo.Coordinate{Lat: 18.5822, Lon: 73.9197}},
	{"LKO", "Chaudhary Charan Singh International, Lucknow", geo.Coordinate{Lat: 26.7606, Lon: 80.8893}},
	{"ATQ", "Sri Guru Ram Dass Jee International, Amritsar", geo.Coordinate{Lat: 31.7096, Lon: 74.7973}},
	{"SXR", "Sheikh ul-Alam International, Srinagar", geo.Coordinate{Lat: 33.9871, Lon: 74.7742}},
	{"IXL", "Kushok Bakula Rimpochee, Leh", geo.Coordinate{Lat: 34.1359, Lon: 77.5465}},
	{"GAU", "Lokpriya Gopinath Bordoloi International, Guwahati", geo.Coordinate{Lat: 26.1061, Lon: 91.5859}},
	{"PAT", "Jay Prakash Narayan International, Patna", geo.Coordinate{Lat: 25.5913, Lon: 85.0880}},
	{"BBI", "Biju Patnaik International, Bhubaneswar", geo.Coordinate{Lat: 20.2444, Lon: 85.8178}},
	{"TRV", "Thiruvananthapuram International", geo.Coordinate{Lat: 8.4821, Lon: 76.9201}},
	{"VNS", "Lal Bahadur Shastri International, Varanasi", geo.Coordinate{Lat: 25.4524, Lon: 82.8593}},
	{"IXC", "Shaheed Bhagat Singh International, Chandigarh", geo.Coordinate{Lat: 30.6735, Lon: 76.7885}},
	{"NAG", "Dr. Babasaheb Ambedkar International, Nagpur", geo.Coordinate{Lat: 21.0922, Lon: 79.0472}},

	// Asia / Middle East
	{"KTM", "Tribhuvan International, Kathmandu", geo.Coordinate{Lat: 27.6966, Lon: 85.3591}},
	{"CMB", "Bandaranaike International, Colombo", geo.Coordinate{Lat: 7.1808, Lon: 79.8841}},
	{"DAC", "Hazrat Shahjalal International, Dhaka", geo.Coordinate{Lat: 23.8433, Lon: 90.3978}},
	{"MLE", "Velana International, Male", geo.Coordinate{Lat: 4.1918, Lon: 73.5291}},
	{"DXB", "Dubai International", geo.Coordinate{Lat: 25.2532, Lon: 55.3657}},
	{"AUH", "Zayed International, Abu Dhabi", geo.Coordinate{Lat: 24.4330, Lon: 54.6511}},
	{"DOH", "Hamad International, Doha", geo.Coordinate{Lat: 25.2731, Lon: 51.6081}},
	{"SIN", "Singapore Changi", geo.Coordinate{Lat: 1.3644, Lon: 103.9915}},
	{"KUL", "Kuala Lumpur International", geo.Coordinate{Lat: 2.7456, Lon: 101.7099}},
	{"CGK", "Soekarno-Hatta International, Jakarta", geo.Coordinate{Lat: -6.1256, Lon: 106.6559}},
	{"BKK", "Suvarnabhumi, Bangkok", geo.Coordinate{Lat: 13.6900, Lon: 100.7501}},
	{"HKG", "Hong Kong International", geo.Coordinate{Lat: 22.3080, Lon: 113.9185}},
	{"PEK", "Beijing Capital International", geo.Coordinate{Lat: 40.0799, Lon: 116.6031}},
	{"PVG", "Shanghai Pudong International", geo.Coordinate{Lat: 31.1443, Lon: 121.8083}},
	{"ICN", "Incheon International, Seoul", geo.Coordinate{Lat: 37.4602, Lon: 126.4407}},
	{"NRT", "Narita International, Tokyo", geo.Coordinate{Lat: 35.7720, Lon: 140.3929}},
	{"HND", "Haneda, Tokyo", geo.Coordinate{Lat: 35.5494, Lon: 139.7798}},

	// Europe / Africa
	{"LHR", "London Heathrow", geo.Coordinate{Lat: 51.4700, Lon: -0.4543}},
	{"CDG", "Paris Charles de Gaulle", geo.Coordinate{Lat: 49.0097, Lon: 2.5479}},
	{"TLS", "Toulouse-Blagnac", geo.Coordinate{Lat: 43.6291, Lon: 1.3638}},
	{"FRA", "Frankfurt am Main", geo.Coordinate{Lat: 50.0379, Lon: 8.5622}},
	{"AMS", "Amsterdam Schiphol", geo.Coordinate{Lat: 52.3105, Lon: 4.7683}},
	{"ZRH", "Zurich", geo.Coordinate{Lat: 47.4582, Lon: 8.5555}},
	{"IST", "Istanbul", geo.Coordinate{Lat: 41.2753, Lon: 28.7519}},
	{"KEF", "Keflavik International", geo.Coordinate{Lat: 63.9850, Lon: -22.6056}},
	{"TOS", "Tromso Langnes", geo.Coordinate{Lat: 69.6833, Lon: 18.9189}},
	{"CAI", "Cairo International", geo.Coordinate{Lat: 30.1219, Lon: 31.4056}},
	{"NBO", "Jomo Kenyatta International, Nairobi", geo.Coordinate{Lat: -1.3192, Lon: 36.9278}},
	{"JNB", "O. R. Tambo International, Johannesburg", geo.Coordinate{Lat: -26.1367, Lon: 28.2411}},
	{"CPT", "Cape Town International", geo.Coordinate{Lat: -33.9715, Lon: 18.6021}},

	// Americas / Oceania
	{"JFK", "John F. Kennedy International, New York", geo.Coordinate{Lat: 40.6413, Lon: -73.7781}},
	{"EWR", "Newark Liberty International", geo.Coordinate{Lat: 40.6895, Lon: -74.1745}},
	{"ORD", "Chicago O'Hare International", geo.Coordinate{Lat: 41.9742, Lon: -87.9073}},
	{"ATL", "Hartsfield-Jackson Atlanta International", geo.Coordinate{Lat: 33.6407, Lon: -84.4277}},
	{"DFW", "Dallas/Fort Worth International", geo.Coordinate{Lat: 32.8998, Lon: -97.0403}},
	{"LAX", "Los Angeles International", geo.Coordinate{Lat: 33.9416, Lon: -118.4085}},
	{"SFO", "San Francisco International", geo.Coordinate{Lat: 37.6213, Lon: -122.3790}},
	{"SEA", "Seattle-Tacoma International", geo.Coordinate{Lat: 47.4502, Lon: -122.3088}},
	{"ANC", "Ted Stevens Anchorage International", geo.Coordinate{Lat: 61.1743, Lon: -149.9962}},
	{"HNL", "Daniel K. Inouye International, Honolulu", geo.Coordinate{Lat: 21.3245, Lon: -157.9251}},
	{"YYZ", "Toronto Pearson International", geo.Coordinate{Lat: 43.6777, Lon: -79.6248}},
	{"YVR", "Vancouver International", geo.Coordinate{Lat: 49.1967, Lon: -123.1815}},
	{"MEX", "Mexico City International", geo.Coordinate{Lat: 19.4361, Lon: -99.0719}},
	{"GRU", "Sao Paulo/Guarulhos International", geo.Coordinate{Lat: -23.4356, Lon: -46.4731}},
	{"EZE", "Ministro Pistarini International, Buenos Aires", geo.Coordinate{Lat: -34.8222, Lon: -58.5358}},
	{"SYD", "Sydney Kingsford Smith", geo.Coordinate{Lat: -33.9399, Lon: 151.1753}},
	{"MEL", "Melbourne", geo.Coordinate{Lat: -37.6690, Lon: 144.8410}},
	{"AKL", "Auckland", geo.Coordinate{Lat: -37.0082, Lon: 174.7850}},
})

func build(list []Airport) map[string]Airport {
	m := make(map[string]Airport, len(list))
	for _, a := range list {
		m[a.Code] = a
	}
	return m
}

// Normalize upper-cases and trims a user supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup finds an airport by code, case-insensitively.
func Lookup(code string) (Airport, bool) {
	a, ok := table[Normalize(code)]
	return a, ok
}

// All returns the table sorted by code.
func All() []Airport {
	list := make([]Airport, 0, len(table))
	for _, a := range table {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}
