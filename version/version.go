package version

import (
	"fmt"
)

const Name = "starchain"

const Major = 0
const Minor = 1
const Fix = 0

var Version = fmt.Sprintf("%d.%d.%d", Major, Minor, Fix)

// Full is the name and version, as printed by -version.
func Full() string {
	return Name + " " + Version
}
