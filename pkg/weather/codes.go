package weather

// WMO weather interpretation codes (WW). The groups below follow the
// Open-Meteo documentation: 0-3 clear/cloudy, 45/48 fog, 51-67 drizzle
// and rain, 71-77 snow, 80-82 rain showers, 85/86 snow showers, 95+
// thunderstorms.

var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Heavy drizzle",
	61: "Light rain",
	63: "Rain",
	65: "Heavy rain",
	71: "Light snow",
	73: "Snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Light showers",
	81: "Showers",
	82: "Heavy showers",
	85: "Light snow showers",
	86: "Snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with hail",
}

// Description returns a human-readable label for a WMO weather code.
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Unknown"
}

// Icon returns a one-glyph icon for a WMO weather code.
func Icon(code int) string {
	switch {
	case code == 0 || code == 1:
		return "☀"
	case code == 2 || code == 3:
		return "☁"
	case code == 45 || code == 48:
		return "🌫"
	case code >= 51 && code <= 67:
		return "💧"
	case code >= 71 && code <= 77:
		return "❄"
	case code >= 80 && code <= 82:
		return "🌧"
	case code == 85 || code == 86:
		return "🌨"
	case code >= 95:
		return "⛈"
	default:
		return "🌤"
	}
}
