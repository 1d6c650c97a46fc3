package semver

// Relation describes how a pinned revision stands against the latest tag.
type Relation string

const (
	RelationCurrent Relation = "current"
	RelationBehind  Relation = "behind"
	RelationAhead   Relation = "ahead"
	// RelationDiffers marks equal precedence with different spelling, e.g. "v1.0.0" vs "1.0.0".
	RelationDiffers Relation = "differs"
	RelationUnknown Relation = "unknown"
)

// Relate compares a pinned revision with the latest tag.
// Exact string equality is always current; otherwise both must parse.
func Relate(pinned, latest string) Relation {
	if pinned == latest {
		return RelationCurrent
	}

	p, err := Parse(pinned)
	if err != nil {
		return RelationUnknown
	}
	l, err := Parse(latest)
	if err != nil {
		return RelationUnknown
	}

	switch p.Compare(l) {
	case -1:
		return RelationBehind
	case 1:
		return RelationAhead
	default:
		return RelationDiffers
	}
}
