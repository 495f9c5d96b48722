package beacon

// Field identifies an environment-derived attribute that can be attached
// to an envelope on request. The string value doubles as the wire key.
type Field string

const (
	FieldPlatform   Field = "platform"
	FieldCountry    Field = "country"
	FieldLanguage   Field = "language"
	FieldDeviceType Field = "device_type"
	FieldAppVersion Field = "app_version"
	FieldOSName     Field = "os_name"
	FieldOSVersion  Field = "os_version"

	// FieldAll expands to every concrete field above at composition time.
	// It has no wire key and never appears in an envelope itself.
	FieldAll Field = "all"
)

var concreteFields = []Field{
	FieldPlatform,
	FieldCountry,
	FieldLanguage,
	FieldDeviceType,
	FieldAppVersion,
	FieldOSName,
	FieldOSVersion,
}

// expandFields resolves FieldAll and drops duplicates, preserving first
// occurrence order. The result contains concrete fields only.
func expandFields(fields []Field) []Field {
	for _, f := range fields {
		if f == FieldAll {
			return concreteFields
		}
	}

	seen := make(map[Field]struct{}, len(fields))
	expanded := make([]Field, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		expanded = append(expanded, f)
	}
	return expanded
}
