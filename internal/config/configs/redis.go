package configs

// Redis configures the connection to the event counter store.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// KeyPrefix is prepended to every counter key, e.g. "adspend:".
	KeyPrefix string `env:"KEY_PREFIX" envDefault:""`
}
