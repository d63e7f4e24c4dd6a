package derive

// Separator joins tags in an output path.
const Separator = "/"

// OutputPath returns the relative directory "{res}/{case}/{numeric}/" for a
// variant. It never touches the filesystem.
func OutputPath(resolution, caseShape, numeric string) string {
	return resolution + Separator + caseShape + Separator + numeric + Separator
}
