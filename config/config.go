package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		Env        string `default:"development" env:"APP_ENV"`
		LogLevel   string `default:"info" env:"APP_LOG_LEVEL"`
		BodyLimit  int    `default:"1048576" env:"APP_BODY_LIMIT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"employees" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Admin struct {
		Username       string `default:"admin" env:"ADMIN_USERNAME"`
		PasswordHash   string `env:"ADMIN_PASSWORD_HASH"`
		JWTSecret      string `env:"ADMIN_JWT_SECRET"`
		JWTExpireInSec int    `default:"28800" env:"ADMIN_JWT_EXPIRE_IN_SEC"`
	}
	Swagger struct {
		FilePath string `default:"./docs/swagger.json" env:"SWAGGER_FILE_PATH"`
	}
	ErrNotify struct {
		Addr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
}

func (c Configuration) IsProduction() bool {
	return c.App.Env == "production"
}

// AdminEnabled reports whether the admin console has both a password hash
// and a signing secret configured.
func (c Configuration) AdminEnabled() bool {
	return c.Admin.PasswordHash != "" && c.Admin.JWTSecret != ""
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded, using process environment")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
