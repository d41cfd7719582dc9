package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// MaxPageSize é o limite de registros por página imposto pela API da Fudo
	MaxPageSize = 500

	productionAPIURL  = "https://api.fu.do/v1alpha1"
	productionAuthURL = "https://auth.fu.do/api"
	stagingAPIURL     = "https://api.staging.fu.do/v1alpha1"
	stagingAuthURL    = "https://auth.staging.fu.do/api"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Fudo         Fudo         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ReportCache  ReportCache  `mapstructure:",squash"`
	ReportWarmup ReportWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Timezone é o fuso usado para converter os horários das vendas,
	// que chegam em UTC da API
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Fudo struct {
	Environment string `mapstructure:"fudo_environment"`
	APIURL      string `mapstructure:"fudo_api_url"`
	AuthURL     string `mapstructure:"fudo_auth_url"`
	APIKey      string `mapstructure:"fudo_api_key"`
	APISecret   string `mapstructure:"fudo_api_secret"`
	PageSize    int    `mapstructure:"fudo_page_size"`
	MaxRetries  int    `mapstructure:"fudo_max_retries"`
}

// HasCredentials informa se as credenciais da Fudo foram configuradas.
// A ausência de credenciais é um estado válido: o pipeline passa a servir
// dados de exemplo em vez de falhar na inicialização
func (f Fudo) HasCredentials() bool {
	return f.APIKey != "" && f.APISecret != ""
}

type Auth struct {
	// DashboardPasswordHash é o hash bcrypt da senha única do dashboard.
	// Vazio significa modo de desenvolvimento, sem autenticação
	DashboardPasswordHash string `mapstructure:"dashboard_password_hash"`
	SecretKey             string `mapstructure:"secret_key"`
}

type ReportCache struct {
	TTLSeconds int  `mapstructure:"report_cache_ttl_seconds"`
	Enabled    bool `mapstructure:"report_cache_enabled"`
}

type ReportWarmup struct {
	CronSchedule string `mapstructure:"report_warmup_cron"`
	LookbackDays int    `mapstructure:"report_warmup_lookback_days"`
	Enabled      bool   `mapstructure:"report_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("FUDO_ENVIRONMENT", "production")
	viper.SetDefault("FUDO_API_URL", "")
	viper.SetDefault("FUDO_AUTH_URL", "")
	viper.SetDefault("FUDO_API_KEY", "")
	viper.SetDefault("FUDO_API_SECRET", "")
	viper.SetDefault("FUDO_PAGE_SIZE", MaxPageSize)
	viper.SetDefault("FUDO_MAX_RETRIES", 3)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")

	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 300) // 5 minutos, igual ao dashboard
	viper.SetDefault("REPORT_CACHE_ENABLED", true)

	viper.SetDefault("REPORT_WARMUP_CRON", "*/30 * * * *")
	viper.SetDefault("REPORT_WARMUP_LOOKBACK_DAYS", 30)
	viper.SetDefault("REPORT_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Argentina/Buenos_Aires")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	applyFudoEnvironment(&config.Fudo)

	if !config.Fudo.HasCredentials() {
		logrus.Warn("Credenciais da Fudo não configuradas. O pipeline servirá dados de exemplo")
	}

	return config, nil
}

// applyFudoEnvironment resolve as URLs da API conforme o ambiente quando
// não foram configuradas explicitamente
func applyFudoEnvironment(fudo *Fudo) {
	staging := fudo.Environment == "staging"

	if fudo.APIURL == "" {
		if staging {
			fudo.APIURL = stagingAPIURL
		} else {
			fudo.APIURL = productionAPIURL
		}
	}

	if fudo.AuthURL == "" {
		if staging {
			fudo.AuthURL = stagingAuthURL
		} else {
			fudo.AuthURL = productionAuthURL
		}
	}

	if fudo.PageSize <= 0 || fudo.PageSize > MaxPageSize {
		fudo.PageSize = MaxPageSize
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
