package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"oja/internal/adapters/out/postgres"
	"oja/internal/core/application/usecases/queries"
	"oja/internal/core/domain/services"
	"oja/internal/pkg/logging"
	"oja/internal/simulation"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// EnvPrefix marks the environment variables read by Load. Nested keys use a double
// underscore: OJA_DB__HOST sets db.host.
const EnvPrefix = "OJA_"

type Config struct {
	HTTP        HTTPConfig        `koanf:"http"`
	DB          DBConfig          `koanf:"db"`
	Log         logging.Config    `koanf:"log"`
	Marketplace MarketplaceConfig `koanf:"marketplace"`
	Simulation  SimulationConfig  `koanf:"simulation"`
	Stores      StoresConfig      `koanf:"stores"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DBConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SslMode         string        `koanf:"sslmode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// MarketplaceConfig holds the money and time rules of checkout and payout.
type MarketplaceConfig struct {
	DeliveryFee    int64         `koanf:"delivery_fee"`
	CommissionRate string        `koanf:"commission_rate"`
	ETA            time.Duration `koanf:"eta"`
}

type SimulationConfig struct {
	Step         float64       `koanf:"step"`
	TickInterval time.Duration `koanf:"tick_interval"`
}

type StoresConfig struct {
	NearbyRadiusKm float64 `koanf:"nearby_radius_km"`
}

// DefaultConfig returns the values used for every key that no source sets.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "oja",
			Name:            "oja",
			SslMode:         "disable",
			MaxOpenConns:    postgres.DefaultPoolConfig.MaxOpenConns,
			MaxIdleConns:    postgres.DefaultPoolConfig.MaxIdleConns,
			ConnMaxLifetime: postgres.DefaultPoolConfig.ConnMaxLifetime,
		},
		Log: logging.DefaultConfig(),
		Marketplace: MarketplaceConfig{
			DeliveryFee:    services.DefaultDeliveryFee,
			CommissionRate: services.DefaultCommissionRate.String(),
			ETA:            services.DefaultETA,
		},
		Simulation: SimulationConfig{
			Step:         simulation.DefaultStep,
			TickInterval: time.Second,
		},
		Stores: StoresConfig{
			NearbyRadiusKm: 10,
		},
	}
}

// Load layers the configuration sources, later ones winning:
//  1. DefaultConfig
//  2. the YAML file at configFile, when it is not empty
//  3. .env in the working directory, when present (it never overrides the real environment)
//  4. OJA_ environment variables
func Load(configFile string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", configFile, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ToLower(s)
}

func (c Config) Validate() error {
	var errList []error
	if c.HTTP.Port == "" {
		errList = append(errList, errors.New("http.port required"))
	}
	if c.DB.Host == "" {
		errList = append(errList, errors.New("db.host required"))
	}
	if c.DB.Name == "" {
		errList = append(errList, errors.New("db.name required"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errList = append(errList, fmt.Errorf("log.level: %w", err))
	}
	if c.Marketplace.DeliveryFee < 0 {
		errList = append(errList, errors.New("marketplace.delivery_fee must not be negative"))
	}
	if _, err := c.Marketplace.Commission(); err != nil {
		errList = append(errList, fmt.Errorf("marketplace.commission_rate: %w", err))
	}
	if c.Marketplace.ETA <= 0 {
		errList = append(errList, errors.New("marketplace.eta must be positive"))
	}
	if c.Simulation.Step <= 0 || c.Simulation.Step > 1 {
		errList = append(errList, errors.New("simulation.step must be in (0, 1]"))
	}
	if c.Simulation.TickInterval <= 0 {
		errList = append(errList, errors.New("simulation.tick_interval must be positive"))
	}
	if c.Stores.NearbyRadiusKm <= 0 || c.Stores.NearbyRadiusKm > queries.MaxNearbyRadiusKm {
		errList = append(errList, fmt.Errorf("stores.nearby_radius_km must be in (0, %g]", queries.MaxNearbyRadiusKm))
	}
	return errors.Join(errList...)
}

// Commission parses the configured commission rate.
func (m MarketplaceConfig) Commission() (decimal.Decimal, error) {
	return decimal.NewFromString(m.CommissionRate)
}

// DSN builds the lib/pq connection URL.
func (d DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SslMode}}.Encode(),
	}
	return u.String()
}

func (d DBConfig) Pool() postgres.PoolConfig {
	return postgres.PoolConfig{
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
	}
}
