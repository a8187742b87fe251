package config

// Config is the root configuration for a cleaning run.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Errors  ErrorsConfig  `yaml:"errors"`
	Sinks   SinksConfig   `yaml:"sinks"`
}

// InputConfig locates the raw sales file.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls the JSON report artifact.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Indent int    `yaml:"indent"`
}

// ConvertConfig holds currency derivation settings.
type ConvertConfig struct {
	USDToINR float64 `yaml:"usd_to_inr"`
}

// ErrorsConfig selects how the pipeline reacts to malformed rows.
//
// Policy "abort" fails the whole run on the first bad row (the reference
// contract). Policy "skip" drops bad rows, records them in the rejects
// file, and lets the run succeed with the surviving records.
type ErrorsConfig struct {
	Policy      string `yaml:"policy"`
	RejectsPath string `yaml:"rejects_path"`
}

// Error policies.
const (
	PolicyAbort = "abort"
	PolicySkip  = "skip"
)

// SinksConfig holds optional export destinations. A sink with an empty
// path/host is disabled.
type SinksConfig struct {
	SQLite   SQLiteConfig `yaml:"sqlite"`
	Postgres DBConfig     `yaml:"postgres"`
}

// SQLiteConfig holds the local archive database location.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// DBConfig holds a Postgres warehouse connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Enabled reports whether the SQLite sink is configured.
func (c SQLiteConfig) Enabled() bool {
	return c.Path != ""
}

// Enabled reports whether the Postgres sink is configured.
func (db DBConfig) Enabled() bool {
	return db.Host != ""
}
