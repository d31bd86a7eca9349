package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Verify Verify `mapstructure:"verify"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`  // Days
	MaxSize     int    `mapstructure:"max_size"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Verify is the configuration for cross-checking primality strategies
type Verify struct {
	Strategies []string `mapstructure:"strategies"`  // Empty means all
	RangeLimit uint32   `mapstructure:"range_limit"` // Inclusive upper bound for IsPrime checks
	Indices    []uint32 `mapstructure:"indices"`     // NthPrime indices to compare
	Samples    int      `mapstructure:"samples"`     // Random IsPrime checks above RangeLimit
	Seed       uint64   `mapstructure:"seed"`        // Zero picks a time-based seed
}

// DefaultVerify returns a Verify that compares every strategy on
// [0, 100000], on a handful of indices and on 1000 random values.
func DefaultVerify() Verify {
	return Verify{
		RangeLimit: 100000,
		Indices:    []uint32{0, 1, 5, 100, 10000},
		Samples:    1000,
	}
}
