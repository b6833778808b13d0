// README: Google Maps web URL builders; pure string computation, no API calls.
package maps

import (
	"net/url"
	"strings"
)

// SearchURL returns a Google Maps search link for a single place.
func SearchURL(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}

// RouteURL returns the full-journey link for an ordered location sequence:
// none → empty string, one → a search link, two or more → a directions link
// with the first location as origin, the last as destination and the interior
// ones as ordered waypoints.
func RouteURL(locations []string) string {
	switch len(locations) {
	case 0:
		return ""
	case 1:
		return SearchURL(locations[0])
	}

	origin := url.QueryEscape(locations[0])
	destination := url.QueryEscape(locations[len(locations)-1])
	full := "https://www.google.com/maps/dir/?api=1&origin=" + origin + "&destination=" + destination

	interior := locations[1 : len(locations)-1]
	if len(interior) > 0 {
		escaped := make([]string, len(interior))
		for i, loc := range interior {
			escaped[i] = url.QueryEscape(loc)
		}
		full += "&waypoints=" + strings.Join(escaped, "%7C")
	}
	return full
}
