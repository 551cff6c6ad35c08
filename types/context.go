package types

// DefaultVersion is the version reported when no AppContext is supplied,
// e.g. when a command is exercised directly in tests
const DefaultVersion = "dev"

// AppContext carries application-wide information from main into the
// compress and check command Run methods
type AppContext struct {
	Version string
}
