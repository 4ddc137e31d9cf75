package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".annualreport.yml"

// DefaultConfig returns a Config with sensible defaults. An empty DataDir
// means the data embedded in the binary.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:         "BHC Annual Report",
			Organization:  "Black Hills Consortium",
			Year:          2026,
			ContactEmail:  "info@blackhillsconsortium.com",
			InvestorEmail: "investors@blackhillsconsortium.com",
		},
		OutputDir: "dist",
		Server: ServerConfig{
			Port: 8080,
		},
		Remote: RemoteConfig{
			TimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Path: ".annualreport/cache.db",
		},
	}
}
