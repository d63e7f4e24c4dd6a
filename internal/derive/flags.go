// Package derive computes the per-variant values that are not read from a
// table directly: the FCT flags and the output directory.
package derive

import "strings"

// Namelist logical tokens.
const (
	True  = "T"
	False = "F"
)

// Flags are the derived FCT switches for one resolution.
type Flags struct {
	FCT            string // USER_FLAG_FCT
	FCTAlongStream string // ATMOS_DYN_FLAG_FCT_ALONG_STREAM
}

// DeriveFlags computes the FCT flags from a resolution tag. A tag
// containing "fct" enables FCT; along-stream FCT is on only when FCT is on
// and the tag does not also contain "fctori". Both substrings are checked
// independently.
func DeriveFlags(tag string) Flags {
	f := Flags{FCT: False, FCTAlongStream: True}
	if strings.Contains(tag, "fct") {
		f.FCT = True
	}
	if f.FCT == False || strings.Contains(tag, "fctori") {
		f.FCTAlongStream = False
	}
	return f
}
