package service

// Config defines application settings.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8010"`

	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}
