package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/govalues/decimal"
)

type Config struct {
	App      *App
	Database *Database
	HTTP     *HTTP
	Auth     *Auth
	Gateway  *Gateway
	Pricing  *Pricing
	Mailer   *Mailer
	Redis    *Redis
	Sweeper  *Sweeper
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString  string `env:"RUN_ADDRESS"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
}

type Auth struct {
	// TokenKey is a hex encoded v4 symmetric key; empty means a fresh key per start.
	TokenKey    string        `env:"TOKEN_KEY"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
	AdminEmails []string      `env:"ADMIN_EMAILS" envSeparator:","`
}

const GatewayEnvSandbox = "sandbox"
const GatewayEnvProduction = "production"

type Gateway struct {
	AppID            string        `env:"CASHFREE_APP_ID"`
	SecretKey        string        `env:"CASHFREE_SECRET_KEY"`
	Env              string        `env:"CASHFREE_ENV" envDefault:"sandbox"`
	BaseURL          string        `env:"CASHFREE_BASE_URL"`
	Timeout          time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
	WebhookTolerance time.Duration `env:"WEBHOOK_TOLERANCE" envDefault:"5m"`
}

// Endpoint returns BaseURL or the default host for Env.
func (g *Gateway) Endpoint() string {
	if g.BaseURL != "" {
		return g.BaseURL
	}
	if g.Env == GatewayEnvProduction {
		return "https://api.cashfree.com/pg"
	}
	return "https://sandbox.cashfree.com/pg"
}

type Pricing struct {
	TaxRateString string `env:"TAX_RATE" envDefault:"0.18"`
	Currency      string `env:"CURRENCY" envDefault:"INR"`
	TaxRate       decimal.Decimal
}

type Mailer struct {
	APIKey  string `env:"RESEND_API_KEY"`
	From    string `env:"MAIL_FROM" envDefault:"Bootcamp <onboarding@resend.dev>"`
	BaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
}

type Redis struct {
	Address  string        `env:"REDIS_ADDRESS"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"24h"`
}

type Sweeper struct {
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	MinAge   time.Duration `env:"SWEEP_MIN_AGE" envDefault:"2m"`
	Workers  int           `env:"SWEEP_WORKERS" envDefault:"2"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:], env.Options{})
}

func parse(fs *flag.FlagSet, args []string, opts env.Options) (*Config, error) {
	var db Database
	var http HTTP
	var app App
	auth := Auth{}
	gateway := Gateway{}
	pricing := Pricing{}
	mailer := Mailer{}
	redis := Redis{}
	sweeper := Sweeper{}

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	sections := []struct {
		name string
		v    any
	}{
		{"database", &db},
		{"http", &http},
		{"app", &app},
		{"auth", &auth},
		{"gateway", &gateway},
		{"pricing", &pricing},
		{"mailer", &mailer},
		{"redis", &redis},
		{"sweeper", &sweeper},
	}
	for _, s := range sections {
		err = env.Parse(s.v, opts)
		if err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", s.name, err)
		}
	}

	pricing.TaxRate, err = decimal.Parse(pricing.TaxRateString)
	if err != nil {
		return nil, fmt.Errorf("error parsing tax rate %q: %w", pricing.TaxRateString, err)
	}
	if pricing.TaxRate.IsNeg() {
		return nil, fmt.Errorf("tax rate must not be negative: %s", pricing.TaxRateString)
	}
	if gateway.Env != GatewayEnvSandbox && gateway.Env != GatewayEnvProduction {
		return nil, fmt.Errorf("unknown gateway env %q", gateway.Env)
	}

	config := Config{
		App:      &app,
		Database: &db,
		HTTP:     &http,
		Auth:     &auth,
		Gateway:  &gateway,
		Pricing:  &pricing,
		Mailer:   &mailer,
		Redis:    &redis,
		Sweeper:  &sweeper,
	}

	return &config, nil
}
