// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// TokenConfig is handed to the token service at startup so it never
// reads ambient settings
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// HostConfig is handed to the router at startup
type HostConfig struct {
	Port        int
	CORSOrigins []string
}

// TwilioConfig holds the credentials for the SMS dispatch service
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.cors_origins", "host_cors_origins")

	v.BindEnv("db.path", "db_path")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl_minutes", "jwt_ttl_minutes")

	v.BindEnv("twilio.account_sid", "twilio_account_sid")
	v.BindEnv("twilio.auth_token", "twilio_auth_token")
	v.BindEnv("twilio.from_number", "twilio_from_number")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.path", "database.db")

	v.SetDefault("jwt.ttl_minutes", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetInt("jwt.ttl_minutes") <= 0 {
		return errors.New("jwt.ttl_minutes must be bigger than 0")
	}

	if v.GetString("twilio.account_sid") == "" {
		return errors.New("twilio account sid can't be empty")
	}

	if v.GetString("twilio.auth_token") == "" {
		return errors.New("twilio auth token can't be empty")
	}

	if v.GetString("twilio.from_number") == "" {
		return errors.New("twilio from number can't be empty")
	}

	return nil
}

// Host returns the settings snapshot for the router
func Host() HostConfig {
	return HostConfig{
		Port:        v.GetInt("host.port"),
		CORSOrigins: v.GetStringSlice("host.cors_origins"),
	}
}

// Token returns the settings snapshot for the token service
func Token() TokenConfig {
	return TokenConfig{
		Secret: v.GetString("jwt.secret"),
		TTL:    time.Duration(v.GetInt("jwt.ttl_minutes")) * time.Minute,
	}
}

// Twilio returns the settings snapshot for the SMS dispatch service
func Twilio() TwilioConfig {
	return TwilioConfig{
		AccountSID: v.GetString("twilio.account_sid"),
		AuthToken:  v.GetString("twilio.auth_token"),
		FromNumber: v.GetString("twilio.from_number"),
	}
}
