package geo

// walkableHighways are the highway values a pedestrian can use.
var walkableHighways = map[string]bool{
	"footway":        true,
	"path":           true,
	"pedestrian":     true,
	"steps":          true,
	"living_street":  true,
	"residential":    true,
	"service":        true,
	"unclassified":   true,
	"tertiary":       true,
	"tertiary_link":  true,
	"secondary":      true,
	"secondary_link": true,
	"primary":        true,
	"primary_link":   true,
	"track":          true,
	"cycleway":       true,
	"corridor":       true,
	"bridleway":      true,
	"road":           true,
}

// ValidPOITags are the keys that turn a named OSM feature into a point of interest.
var ValidPOITags = map[string]bool{
	"amenity":    true,
	"building":   true,
	"shop":       true,
	"tourism":    true,
	"leisure":    true,
	"office":     true,
	"healthcare": true,
	"historic":   true,
}

var blockedAccess = map[string]bool{
	"private": true,
	"no":      true,
}

var allowedFoot = map[string]bool{
	"yes":        true,
	"designated": true,
	"permissive": true,
}
