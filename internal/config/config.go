package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Variables holds the settings read once at startup. Names map directly to
// environment variables (MONGO_URL, PORT, ...).
type Variables struct {
	Addr           string        `required:"false" envconfig:"addr"`
	Port           int           `required:"false" envconfig:"port" default:"8000"`
	MongoURL       string        `required:"false" envconfig:"mongo_url"`
	MongoDB        string        `required:"false" envconfig:"mongo_db" default:"media_catalog"`
	ConnectTimeout time.Duration `required:"false" envconfig:"mongo_connect_timeout" default:"10s"`
	StoreBackend   string        `required:"false" envconfig:"store_backend" default:"mongo"`
	SeedFile       string        `required:"false" envconfig:"seed_file"`
	LogLevel       string        `required:"false" envconfig:"log_level" default:"info"`
	AppName        string        `required:"false" envconfig:"app_name" default:"media-catalog"`
}

// Load reads an optional .env file from the working directory and then the
// environment.
func Load() (Variables, error) {
	var v Variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return v, errors.Wrap(err, "load .env file")
	}
	if err := envconfig.Process("", &v); err != nil {
		return v, errors.Wrap(err, "process env variables")
	}
	if err := v.validate(); err != nil {
		return v, err
	}
	return v, nil
}

// ListenAddr returns ADDR when set, otherwise ":PORT".
func (v Variables) ListenAddr() string {
	if v.Addr != "" {
		return v.Addr
	}
	return ":" + strconv.Itoa(v.Port)
}

func (v Variables) validate() error {
	switch v.StoreBackend {
	case BackendMongo:
		if v.MongoURL == "" {
			return errors.New("MONGO_URL is required when STORE_BACKEND is mongo")
		}
	case BackendMemory:
	default:
		return errors.Errorf("unknown STORE_BACKEND %q", v.StoreBackend)
	}
	if v.Port <= 0 || v.Port > 65535 {
		return errors.Errorf("PORT %d out of range", v.Port)
	}
	return nil
}
