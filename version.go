package tokenswap

// Release is the semantic version of the build. Release builds set it with
//
//   -ldflags "-X github.com/iov-one/tokenswap.Release=v1.2.3"
var Release = "v0.1.0-dev"

// GitCommit set by build flags
var GitCommit = ""

// Version is the string reported by the node and the CLI.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
