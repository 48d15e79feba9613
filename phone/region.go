package phone

import "github.com/nyaruka/phonenumbers"

const unknownRegion = "ZZ"

// Region returns the ISO 3166-1 alpha-2 region that owns the number according
// to libphonenumber metadata ("US", "CA", ...), or "" when the number is not
// assigned to any NANP region.
func (n Number) Region() string {
	d := n.digits()
	if d == Invalid {
		return ""
	}

	pn, err := phonenumbers.Parse("+1"+d, unknownRegion)
	if err != nil || !phonenumbers.IsValidNumber(pn) {
		return ""
	}

	region := phonenumbers.GetRegionCodeForNumber(pn)
	if region == unknownRegion {
		return ""
	}
	return region
}
