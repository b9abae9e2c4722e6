package configs

// ClickHouse configures the raw event log used when the engine counts
// events itself.
type ClickHouse struct {
	DSN string `env:"DSN" envDefault:"clickhouse://default:@localhost:9000/default"`
}
