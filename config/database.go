package config

// DBConfig contains PostgreSQL configuration for the audit trail.
// The portal runs without Postgres; when no host is configured the
// audit trail is disabled rather than failing startup.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:""`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"staffportal"`
	Password string `env:"PASSWORD" envDefault:"staffportal"`
	Name     string `env:"NAME"     envDefault:"staffportal"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// Enabled reports whether an audit database has been configured.
func (d DBConfig) Enabled() bool { return d.Host != "" }

// RedisConfig contains Redis configuration for sessions and the alert
// register.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}
