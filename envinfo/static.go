package envinfo

import beacon "github.com/beaconhq/beacon-go"

// Static serves environment facts from a fixed map. Missing or empty
// entries are reported as misses.
type Static map[beacon.Field]string

// Lookup implements beacon.EnvironmentProvider.
func (s Static) Lookup(f beacon.Field) (string, bool) {
	v := s[f]
	return v, v != ""
}
