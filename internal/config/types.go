package config

// Config is the top-level annualreport configuration, corresponding to
// .annualreport.yml.
type Config struct {
	Site      SiteConfig     `yaml:"site" koanf:"site"`
	DataDir   string         `yaml:"data_dir" koanf:"data_dir"`
	OutputDir string         `yaml:"output_dir" koanf:"output_dir"`
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	Remote    RemoteConfig   `yaml:"remote" koanf:"remote"`
	Database  DatabaseConfig `yaml:"database" koanf:"database"`
}

// SiteConfig is the branding shown on every page.
type SiteConfig struct {
	Title         string `yaml:"title" koanf:"title"`
	Organization  string `yaml:"organization" koanf:"organization"`
	Year          int    `yaml:"year" koanf:"year"`
	ContactEmail  string `yaml:"contact_email" koanf:"contact_email"`
	InvestorEmail string `yaml:"investor_email" koanf:"investor_email"`
}

type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool `yaml:"watch" koanf:"watch"`
}

// RemoteConfig locates the hosted backend. An empty URL disables it.
type RemoteConfig struct {
	URL            string `yaml:"url" koanf:"url"`
	AnonKey        string `yaml:"anon_key" koanf:"anon_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}
