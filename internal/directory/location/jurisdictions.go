package location

import "strconv"

// jurisdictions lists the two-letter keys of US states, DC and territories.
var jurisdictions = map[string]struct{}{
	"al": {}, "ak": {}, "az": {}, "ar": {}, "ca": {}, "co": {}, "ct": {}, "de": {}, "fl": {}, "ga": {},
	"hi": {}, "id": {}, "il": {}, "in": {}, "ia": {}, "ks": {}, "ky": {}, "la": {}, "me": {}, "md": {},
	"ma": {}, "mi": {}, "mn": {}, "ms": {}, "mo": {}, "mt": {}, "ne": {}, "nv": {}, "nh": {}, "nj": {},
	"nm": {}, "ny": {}, "nc": {}, "nd": {}, "oh": {}, "ok": {}, "or": {}, "pa": {}, "ri": {}, "sc": {},
	"sd": {}, "tn": {}, "tx": {}, "ut": {}, "vt": {}, "va": {}, "wa": {}, "wv": {}, "wi": {}, "wy": {},
	"dc": {}, "pr": {}, "vi": {}, "gu": {}, "as": {}, "mp": {},
}

// IsJurisdiction reports whether key is a known two-letter jurisdiction.
func IsJurisdiction(key string) bool {
	_, ok := jurisdictions[key]
	return ok
}

type prefixRange struct {
	from, to     int
	jurisdiction string
}

// postalPrefixExceptions take precedence over postalPrefixRanges.
var postalPrefixExceptions = map[int]string{
	5: "ny", 8: "vi", 55: "ma", 201: "va", 569: "dc", 733: "tx", 885: "tx", 969: "gu",
}

// postalPrefixRanges maps three-digit ZIP prefixes to jurisdictions. Military
// prefixes (090-099, 340, 962-966) are intentionally absent.
var postalPrefixRanges = []prefixRange{
	{6, 9, "pr"},
	{10, 27, "ma"}, {28, 29, "ri"}, {30, 38, "nh"}, {39, 49, "me"}, {50, 59, "vt"},
	{60, 69, "ct"}, {70, 89, "nj"},
	{100, 149, "ny"}, {150, 196, "pa"}, {197, 199, "de"}, {200, 205, "dc"}, {206, 219, "md"},
	{220, 246, "va"}, {247, 268, "wv"}, {270, 289, "nc"}, {290, 299, "sc"}, {300, 319, "ga"},
	{320, 339, "fl"}, {341, 349, "fl"}, {350, 369, "al"}, {370, 385, "tn"}, {386, 397, "ms"},
	{398, 399, "ga"}, {400, 427, "ky"}, {430, 459, "oh"}, {460, 479, "in"}, {480, 499, "mi"},
	{500, 528, "ia"}, {530, 549, "wi"}, {550, 567, "mn"}, {570, 577, "sd"}, {580, 588, "nd"},
	{590, 599, "mt"}, {600, 629, "il"}, {630, 658, "mo"}, {660, 679, "ks"}, {680, 693, "ne"},
	{700, 714, "la"}, {716, 729, "ar"}, {730, 749, "ok"}, {750, 799, "tx"}, {800, 816, "co"},
	{820, 831, "wy"}, {832, 838, "id"}, {840, 847, "ut"}, {850, 865, "az"}, {870, 884, "nm"},
	{889, 898, "nv"}, {900, 961, "ca"}, {967, 968, "hi"}, {970, 979, "or"}, {980, 994, "wa"},
	{995, 999, "ak"},
}

// jurisdictionForPostalCode returns "" for unknown or military prefixes.
func jurisdictionForPostalCode(code string) string {
	if len(code) < 3 {
		return ""
	}
	prefix, err := strconv.Atoi(code[:3])
	if err != nil {
		return ""
	}
	if j, ok := postalPrefixExceptions[prefix]; ok {
		return j
	}
	for _, r := range postalPrefixRanges {
		if prefix >= r.from && prefix <= r.to {
			return r.jurisdiction
		}
	}
	return ""
}
