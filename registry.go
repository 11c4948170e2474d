package vastcheck

// Enum values shared across contexts.
var (
	envEnum    = Enum("vp", "instream", "outstream")
	outputEnum = Enum("vast", "xml_vast2", "xml_vast3", "xml_vast4")
	vposEnum   = Enum("preroll", "midroll", "postroll", "1", "2", "3", "0")
)

// registry is the authoritative parameter table per implementation type.
// It encodes the published VAST request requirements verbatim; do not edit
// without checking them against the ad server documentation.
var registry = map[string]*ContextSchema{
	"web": {
		Required: []Param{
			{"correlator", Int()},
			{"description_url", URL()},
			{"env", envEnum},
			{"gdfp_req", Int()},
			{"iu", Str()},
			{"output", outputEnum},
			{"sz", Size()},
			{"unviewed_position_start", Int()},
			{"url", URL()},
			{"vpmute", Bool()},
		},
		ProgrammaticRequired: []Param{
			{"ott_placement", Int()},
			{"plcmt", Int()},
			{"vpa", Bool()},
		},
		ProgrammaticRecommended: []Param{
			{"aconp", Bool()},
			{"dth", Int()},
			{"givn", Str()},
			{"hl", Str()},
			{"omid_p", Str()},
			{"vconp", Bool()},
			{"vid_d", Int()},
			{"vpos", vposEnum},
			{"wta", Int()},
		},
	},
	"app": {
		Required: []Param{
			{"correlator", Int()},
			{"description_url", URL()},
			{"env", envEnum},
			{"gdfp_req", Int()},
			{"iu", Str()},
			{"output", outputEnum},
			{"sz", Size()},
			{"unviewed_position_start", Int()},
			{"url", URL()},
			{"vpmute", Bool()},
		},
		ProgrammaticRequired: []Param{
			{"idtype", Int()},
			{"is_lat", Bool()},
			{"ott_placement", Int()},
			{"plcmt", Int()},
			{"rdid", Str()},
			{"vpa", Bool()},
		},
		ProgrammaticRecommended: []Param{
			{"aconp", Bool()},
			{"an", Str()},
			{"dth", Int()},
			{"givn", Str()},
			{"hl", Str()},
			{"msid", Str()},
			{"omid_p", Str()},
			{"pvid", Str()},
			{"sid", Str()},
			{"vconp", Bool()},
			{"vid_d", Int()},
			{"vpos", vposEnum},
			{"wta", Int()},
		},
	},
	"ctv": {
		Required: []Param{
			{"correlator", Int()},
			{"env", envEnum},
			{"gdfp_req", Int()},
			{"iu", Str()},
			{"output", outputEnum},
			{"sz", Size()},
			{"url", URL()},
		},
		ProgrammaticRequired: []Param{
			{"idtype", Int()},
			{"is_lat", Bool()},
			{"ott_placement", Int()},
			{"plcmt", Int()},
			{"rdid", Str()},
			{"vpa", Bool()},
			{"vpmute", Bool()},
		},
		ProgrammaticRecommended: []Param{
			{"aconp", Bool()},
			{"an", Str()},
			{"dth", Int()},
			{"givn", Str()},
			{"hl", Str()},
			{"msid", Str()},
			{"omid_p", Str()},
			{"sid", Str()},
			{"vconp", Bool()},
			{"vid_d", Int()},
			{"vpos", vposEnum},
			{"wta", Int()},
		},
	},
	"audio": {
		Required: []Param{
			{"ad_type", Str()},
			{"correlator", Int()},
			{"env", envEnum},
			{"gdfp_req", Int()},
			{"iu", Str()},
			{"output", outputEnum},
			{"url", URL()},
		},
		ProgrammaticRequired: []Param{
			{"idtype", Int()},
			{"is_lat", Bool()},
			{"plcmt", Int()},
			{"rdid", Str()},
			{"vpa", Bool()},
			{"vpmute", Bool()},
		},
		ProgrammaticRecommended: []Param{
			{"aconp", Bool()},
			{"an", Str()},
			{"dth", Int()},
			{"givn", Str()},
			{"hl", Str()},
			{"msid", Str()},
			{"omid_p", Str()},
			{"sid", Str()},
			{"vconp", Bool()},
			{"vpos", vposEnum},
			{"wta", Int()},
		},
	},
	"doh": {
		Required: []Param{
			{"correlator", Int()},
			{"env", envEnum},
			{"gdfp_req", Int()},
			{"iu", Str()},
			{"output", outputEnum},
			{"sz", Size()},
			{"url", URL()},
			{"vpmute", Bool()},
		},
		ProgrammaticRequired: []Param{
			{"idtype", Int()},
			{"is_lat", Bool()},
			{"plcmt", Int()},
			{"rdid", Str()},
			{"sid", Str()},
			{"venuetype", Int()},
		},
		ProgrammaticRecommended: []Param{
			{"aconp", Bool()},
			{"an", Str()},
			{"dth", Int()},
			{"givn", Str()},
			{"hl", Str()},
			{"msid", Str()},
			{"omid_p", Str()},
		},
	},
}
