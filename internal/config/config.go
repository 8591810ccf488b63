package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Env         string
	AppSecret   string
	JWTSecret   string
	Port        string
	LogLevel    string
	DatabaseURL string
	AutoMigrate bool
	CORSOrigins []string

	Upload   UploadConfig
	S3       S3Config
	Identity IdentityConfig
	Stripe   StripeConfig
}

// UploadConfig 文件上传微服务
type UploadConfig struct {
	BaseURL string
	Timeout time.Duration
}

// S3Config 对象存储
type S3Config struct {
	Bucket             string
	Region             string
	AccessKey          string
	SecretKey          string
	DistributionDomain string
}

// IdentityConfig Auth0 管理接口
type IdentityConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Audience     string
	CacheTTL     time.Duration
	Timeout      time.Duration
}

// StripeConfig 支付
type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Currency   string
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load 加载配置
func Load() *Config {
	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "filmhub")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", defaultSecret)
	env := getEnv("APP_ENV", "development")

	if env == "production" && appSecret == defaultSecret {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return &Config{
		Env:         env,
		AppSecret:   appSecret,
		JWTSecret:   getEnv("JWT_SECRET", appSecret),
		Port:        getEnv("PORT", "5005"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: dbURL,
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Upload: UploadConfig{
			BaseURL: strings.TrimRight(getEnv("UPLOAD_SERVICE_URL", ""), "/"),
			Timeout: time.Duration(getEnvInt("UPLOAD_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		S3: S3Config{
			Bucket:             getEnv("S3_BUCKET", ""),
			Region:             getEnv("S3_REGION", "ap-southeast-1"),
			AccessKey:          getEnv("S3_ACCESS_KEY", ""),
			SecretKey:          getEnv("S3_SECRET_KEY", ""),
			DistributionDomain: strings.TrimRight(getEnv("S3_DISTRIBUTION_DOMAIN", ""), "/"),
		},
		Identity: IdentityConfig{
			Domain:       getEnv("AUTH0_DOMAIN", ""),
			ClientID:     getEnv("AUTH0_CLIENT_ID", ""),
			ClientSecret: getEnv("AUTH0_CLIENT_SECRET", ""),
			Audience:     getEnv("AUTH0_AUDIENCE", ""),
			CacheTTL:     time.Duration(getEnvInt("IDENTITY_CACHE_TTL_MINUTES", 60)) * time.Minute,
			Timeout:      10 * time.Second,
		},
		Stripe: StripeConfig{
			SecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
			SuccessURL: getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/payment/success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:  getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/payment/cancel"),
			Currency:   getEnv("STRIPE_CURRENCY", "vnd"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var res []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
