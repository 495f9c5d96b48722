package envinfo

import (
	"os"
	"runtime"
	"strings"

	beacon "github.com/beaconhq/beacon-go"
)

// Host derives environment facts from the local process. AppVersion is
// whatever the embedding application reports about itself; leave it empty
// to omit the field.
type Host struct {
	AppVersion string
}

// Lookup implements beacon.EnvironmentProvider.
func (h Host) Lookup(f beacon.Field) (string, bool) {
	switch f {
	case beacon.FieldPlatform, beacon.FieldOSName:
		return runtime.GOOS, true
	case beacon.FieldDeviceType:
		return runtime.GOARCH, true
	case beacon.FieldOSVersion:
		return osVersion()
	case beacon.FieldLanguage:
		language, _ := locale()
		return language, language != ""
	case beacon.FieldCountry:
		_, country := locale()
		return country, country != ""
	case beacon.FieldAppVersion:
		return h.AppVersion, h.AppVersion != ""
	}
	return "", false
}

// locale splits a POSIX locale like "en_US.UTF-8" into language and
// country. LC_ALL takes precedence over LANG; the C and POSIX locales
// carry no usable information.
func locale() (language, country string) {
	v := os.Getenv("LC_ALL")
	if v == "" {
		v = os.Getenv("LANG")
	}
	v, _, _ = strings.Cut(v, ".")
	if v == "" || v == "C" || v == "POSIX" {
		return "", ""
	}
	language, country, _ = strings.Cut(v, "_")
	return language, country
}

func osVersion() (string, bool) {
	// Kernel release on Linux; other platforms fall back to a miss and
	// the field is omitted from the envelope.
	b, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(b))
	return v, v != ""
}
