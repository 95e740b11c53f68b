package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Listen   string   `koanf:"listen"`
	Frontend Frontend `koanf:"frontend"`
	Api      Api      `koanf:"api"`
	Catalog  Catalog  `koanf:"catalog"`
	Database Database `koanf:"db"`
	KV       KV       `koanf:"kv"`
	Schedule Schedule `koanf:"schedule"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

// Api toggles between live catalog data and the bundled fallback dataset.
type Api struct {
	Enabled bool `koanf:"enabled"`
}

type Catalog struct {
	// Source is either "database" or "remote".
	Source   string        `koanf:"source"`
	Upstream string        `koanf:"upstream"`
	Timeout  time.Duration `koanf:"timeout"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

type KV struct {
	// Backend is either "memory" or "redis".
	Backend  string `koanf:"backend"`
	RedisUrl string `koanf:"redisurl"`
}

type Schedule struct {
	BaseDate      string        `koanf:"basedate"`
	Timezone      string        `koanf:"timezone"`
	ToastDuration time.Duration `koanf:"toastduration"`
	ClassDuration time.Duration `koanf:"classduration"`
	SessionTTL    time.Duration `koanf:"sessionttl"`
	JanitorCron   string        `koanf:"janitorcron"`
}

// Defaults returns the configuration used when neither a file nor environment overrides a key.
func Defaults() Application {
	return Application{
		Host:   "http://localhost:5173",
		Listen: ":4000",
		Frontend: Frontend{
			Enabled: false,
			Dir:     "frontend",
		},
		Api: Api{
			Enabled: false,
		},
		Catalog: Catalog{
			Source:  "database",
			Timeout: 5 * time.Second,
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "ampliy",
			Pass:   "",
			Name:   "ampliy",
			Schema: "ampliy",
		},
		KV: KV{
			Backend: "memory",
		},
		Schedule: Schedule{
			BaseDate:      "2025-10-30",
			Timezone:      "America/Sao_Paulo",
			ToastDuration: 3500 * time.Millisecond,
			ClassDuration: time.Hour,
			SessionTTL:    2 * time.Hour,
			JanitorCron:   "@every 1m",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "AMPLIY_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "AMPLIY_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
