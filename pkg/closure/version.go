package closure

// Version is populated at build time via ldflags:
//
//	-ldflags "-X github.com/cclosures/cclosures-go/pkg/closure.Version=v1.2.0"
var Version = "v0.0.0-in-progress"

// BridgeVersion returns the semantic version of the bridge. In development
// it defaults to v0.0.0-in-progress.
func BridgeVersion() string {
	return Version
}
