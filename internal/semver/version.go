package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed release identifier (major.minor.patch-pre+build).
// Calendar-style tags such as "24.1.0" parse the same way.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

// maxVersionLength bounds the input handed to the regex.
const maxVersionLength = 128

var (
	versionRegex = regexp.MustCompile(
		`^v?(\d+)\.(\d+)\.(\d+)` +
			`(?:-([0-9A-Za-z\-\.]+))?` +
			`(?:\+([0-9A-Za-z\-\.]+))?$`,
	)

	// ErrInvalidVersion is returned for strings that are not major.minor.patch.
	ErrInvalidVersion = errors.New("invalid version format")
)

// String returns the canonical form without a "v" prefix.
func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// Parse parses s, accepting an optional "v" prefix.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidVersion, maxVersionLength)
	}

	m := versionRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	nums := [3]int{}
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %s", ErrInvalidVersion, err.Error())
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], PreRelease: m[4], Build: m[5]}, nil
}

// Compare returns -1, 0 or +1 as v sorts before, equal to, or after other.
// A pre-release sorts before its release; build metadata is ignored.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == other.PreRelease:
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	for i := range min(len(aIDs), len(bIDs)) {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(aIDs), len(bIDs))
}

// compareIdentifier orders numeric identifiers before alphanumeric ones.
func compareIdentifier(a, b string) int {
	aNum, aIsNum := numericIdentifier(a)
	bNum, bIsNum := numericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// numericIdentifier parses digits-only identifiers without leading zeros.
func numericIdentifier(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
