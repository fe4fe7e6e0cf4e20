package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dotEnvFile is read if present; process variables override its values.
var dotEnvFile = ".env"

// lookupEnv is a seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

var envKeys = []string{
	"ENVIRONMENT",
	"HTTP_ADDR",
	"DATABASE_URL",
	"SECRET_KEY",
	"ACCESS_TOKEN_VALIDITY",
	"REFRESH_TOKEN_VALIDITY",
	"COOKIE_SECURE",
	"ALLOWED_ORIGINS",
	"LOG_FORMAT",
	"S3_ROOT_USER",
	"S3_ROOT_PASSWORD",
	"S3_BUCKET",
	"S3_REGION",
	"S3_BASE_ENDPOINT",
}

// parseEnv overlays config with environment variables. Durations use
// time.ParseDuration syntax, ALLOWED_ORIGINS is comma separated. Invalid
// values panic.
func parseEnv(config *Config) {
	vars, err := godotenv.Read(dotEnvFile)
	if err != nil {
		vars = map[string]string{}
	}
	for _, k := range envKeys {
		if v, ok := lookupEnv(k); ok {
			vars[k] = v
		}
	}

	setString(&config.Environment, vars["ENVIRONMENT"])
	setString(&config.HTTPAddr, vars["HTTP_ADDR"])
	setString(&config.DatabaseDSN, vars["DATABASE_URL"])
	setString(&config.SecretKey, vars["SECRET_KEY"])
	setDuration(&config.AccessTokenValidityDuration, vars["ACCESS_TOKEN_VALIDITY"])
	setDuration(&config.RefreshTokenValidityDuration, vars["REFRESH_TOKEN_VALIDITY"])
	if v := vars["COOKIE_SECURE"]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.CookieSecure = b
	}
	if v := vars["ALLOWED_ORIGINS"]; v != "" {
		config.AllowedOrigins = splitList(v)
	}
	setString(&config.LogFormat, vars["LOG_FORMAT"])
	setString(&config.S3RootUser, vars["S3_ROOT_USER"])
	setString(&config.S3RootPassword, vars["S3_ROOT_PASSWORD"])
	setString(&config.S3Bucket, vars["S3_BUCKET"])
	setString(&config.S3Region, vars["S3_REGION"])
	setString(&config.S3BaseEndpoint, vars["S3_BASE_ENDPOINT"])
}

func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
