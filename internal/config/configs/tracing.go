package configs

// Tracing configures OpenTelemetry export. Disabled by default.
type Tracing struct {
	Enabled    bool    `env:"ENABLED" envDefault:"false"`
	Endpoint   string  `env:"ENDPOINT" envDefault:"localhost:4317"`
	SampleRate float64 `env:"SAMPLE_RATE" envDefault:"1.0"`
}
