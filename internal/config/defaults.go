package config

// Default values for optional configuration fields.
const (
	DefaultInputPath   = "raw_data/sales.csv"
	DefaultOutputPath  = "clean_sales.json"
	DefaultIndent      = 4
	DefaultUSDToINR    = 83
	DefaultPolicy      = PolicyAbort
	DefaultRejectsPath = "rejected_rows.jsonl"
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 1
)

func (c *Config) applyDefaults() {
	if c.Input.Path == "" {
		c.Input.Path = DefaultInputPath
	}

	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = DefaultIndent
	}

	if c.Convert.USDToINR == 0 {
		c.Convert.USDToINR = DefaultUSDToINR
	}

	if c.Errors.Policy == "" {
		c.Errors.Policy = DefaultPolicy
	}
	if c.Errors.RejectsPath == "" {
		c.Errors.RejectsPath = DefaultRejectsPath
	}

	if c.Sinks.Postgres.Enabled() {
		applyDBDefaults(&c.Sinks.Postgres)
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
