package config

import (
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"sqlite"`
	Url             string        `envconfig:"URL" default:"invochain.db"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"30s"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	SeedDemo        bool          `envconfig:"SEED_DEMO" default:"false"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
	// BcryptCost is the work factor used when hashing credentials.
	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`
	// MaxConcurrentHashes bounds how many bcrypt operations run at once.
	// Zero means GOMAXPROCS.
	MaxConcurrentHashes int `envconfig:"MAX_CONCURRENT_HASHES" default:"0"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Cors struct {
	Origins string `envconfig:"ORIGINS" default:"http://localhost:5173"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[invochain]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Cors      *Cors      `envconfig:"CORS"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (a *App) IsDevelopment() bool {
	return a.Env == "development"
}
