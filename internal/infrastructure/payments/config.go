package payments

import (
	"os"
	"strings"

	"paytabs_gateway/pkg/paytabs"
)

// NewPayTabsConfigFromEnv builds the client configuration.
//
// Supported env vars:
//   - PAYTABS_PROFILE_ID
//   - PAYTABS_SERVER_KEY
//   - PAYTABS_REGION (default: GLOBAL)
func NewPayTabsConfigFromEnv() (paytabs.Config, error) {
	region, err := paytabs.ParseRegion(getenvDefault("PAYTABS_REGION", string(paytabs.RegionGlobal)))
	if err != nil {
		return paytabs.Config{}, err
	}
	return paytabs.Config{
		ProfileID: strings.TrimSpace(os.Getenv("PAYTABS_PROFILE_ID")),
		ServerKey: strings.TrimSpace(os.Getenv("PAYTABS_SERVER_KEY")),
		Region:    region,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYTABS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
