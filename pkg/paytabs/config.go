package paytabs

// Config holds the merchant credentials every operation is sent with.
type Config struct {
	// ProfileID is the merchant profile id issued by PayTabs.
	ProfileID string
	// ServerKey is sent verbatim in the authorization header.
	ServerKey string
	Region    Region
}

func (c Config) endpoint(path string) (string, bool) {
	base, ok := ResolveEndpoint(c.Region)
	if !ok {
		return "", false
	}
	return base + path, true
}
