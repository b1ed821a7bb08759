package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	SalesPlatform  SalesPlatform  `mapstructure:",squash"`
	Collection     Collection     `mapstructure:",squash"`
	CollectionSync CollectionSync `mapstructure:",squash"`
	Mapping        Mapping        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	SlowRequest    time.Duration `mapstructure:"http_slow_request"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	LockTTL  time.Duration `mapstructure:"redis_lock_ttl"`
	LockKey  string        `mapstructure:"redis_lock_key"`
}

type Meta struct {
	BaseURL     string   `mapstructure:"meta_base_url"`
	URL         string   `mapstructure:"-"`
	Version     string   `mapstructure:"meta_version"`
	AccessToken string   `mapstructure:"meta_access_token"`
	AdAccounts  []string `mapstructure:"meta_ad_accounts"`
}

type SalesPlatform struct {
	URL       string `mapstructure:"sales_platform_url"`
	Email     string `mapstructure:"sales_platform_email"`
	Password  string `mapstructure:"sales_platform_password"`
	ProductID string `mapstructure:"sales_platform_product_id"`
}

type Collection struct {
	DefaultChannel string        `mapstructure:"collection_default_channel"`
	OverallChannel string        `mapstructure:"collection_overall_channel"`
	Channels       []string      `mapstructure:"collection_channels"`
	Affiliates     []string      `mapstructure:"collection_affiliates"` // codigo:canal
	MaxConcurrent  int           `mapstructure:"collection_max_concurrent"`
	FetchTimeout   time.Duration `mapstructure:"collection_fetch_timeout"`
	RunBudget      time.Duration `mapstructure:"collection_run_budget"`
	RetryAttempts  int           `mapstructure:"collection_retry_attempts"`
	RetryBackoff   time.Duration `mapstructure:"collection_retry_backoff"`
}

type CollectionSync struct {
	CronSchedule    string `mapstructure:"collection_sync_cron"`
	IntervalMinutes int    `mapstructure:"collection_sync_interval_minutes"`
	Enabled         bool   `mapstructure:"collection_sync_enabled"`
}

type Mapping struct {
	Source   string `mapstructure:"mapping_source"` // database ou file
	FilePath string `mapstructure:"mapping_file_path"`
}

// AffiliateChannels converte a lista "codigo:canal" em mapa
func (c Collection) AffiliateChannels() map[string]string {
	table := make(map[string]string, len(c.Affiliates))
	for _, entry := range c.Affiliates {
		code, channel, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || code == "" || channel == "" {
			logrus.WithField("entry", entry).Warn("Entrada de afiliado inválida na configuração, ignorando")
			continue
		}
		table[strings.TrimSpace(code)] = strings.TrimSpace(channel)
	}
	return table
}

// HasChannel verifica se o canal está entre os canais configurados
func (c Collection) HasChannel(channel string) bool {
	for _, configured := range c.Channels {
		if configured == channel {
			return true
		}
	}
	return false
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("HTTP_SLOW_REQUEST", "500ms") // Acima disso a requisição é logada como lenta

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/roi?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LOCK_TTL", "3m")             // maior que o orçamento de uma coleta
	viper.SetDefault("REDIS_LOCK_KEY", "roi-collection") // chave do lock distribuído

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNTS", strings.Join([]string{
		"act_2067257390316380",
		"act_1391112848236399",
		"act_406219475582745",
		"act_790223756353632",
		"act_772777644802886",
		"act_303402486183447",
	}, ","))

	viper.SetDefault("SALES_PLATFORM_URL", "https://node209534-imperiopremioss.sp1.br.saveincloud.net.br/api")
	viper.SetDefault("SALES_PLATFORM_EMAIL", "")
	viper.SetDefault("SALES_PLATFORM_PASSWORD", "")
	viper.SetDefault("SALES_PLATFORM_PRODUCT_ID", "684c73283d75820c0a77a42f")

	// Defaults para a coleta
	viper.SetDefault("COLLECTION_DEFAULT_CHANNEL", "instagram")       // Canal principal de campanhas
	viper.SetDefault("COLLECTION_OVERALL_CHANNEL", "geral")           // Canal sintetizado com o total da plataforma
	viper.SetDefault("COLLECTION_CHANNELS", "geral,instagram,grupos") // Canais conhecidos
	viper.SetDefault("COLLECTION_AFFILIATES", "L8UTEDVTI0:instagram,17QB25AKRL:grupos")
	viper.SetDefault("COLLECTION_MAX_CONCURRENT", 5)    // 5 requisições simultâneas
	viper.SetDefault("COLLECTION_FETCH_TIMEOUT", "20s") // Timeout de cada chamada externa
	viper.SetDefault("COLLECTION_RUN_BUDGET", "2m")     // Tempo máximo de uma coleta
	viper.SetDefault("COLLECTION_RETRY_ATTEMPTS", 2)    // Novas tentativas após falha
	viper.SetDefault("COLLECTION_RETRY_BACKOFF", "5s")  // Espera inicial entre tentativas

	viper.SetDefault("COLLECTION_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("COLLECTION_SYNC_INTERVAL_MINUTES", 30) // Exibido no painel
	viper.SetDefault("COLLECTION_SYNC_ENABLED", true)        // Habilitar coleta agendada

	viper.SetDefault("MAPPING_SOURCE", "database")
	viper.SetDefault("MAPPING_FILE_PATH", "channel_mapping.yaml")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SalesPlatform.ProductID == "" {
		return fmt.Errorf("SALES_PLATFORM_PRODUCT_ID é obrigatório")
	}

	if c.Collection.MaxConcurrent <= 0 {
		c.Collection.MaxConcurrent = 5
	}

	if !c.Collection.HasChannel(c.Collection.DefaultChannel) {
		c.Collection.Channels = append(c.Collection.Channels, c.Collection.DefaultChannel)
	}

	if !c.Collection.HasChannel(c.Collection.OverallChannel) {
		c.Collection.Channels = append(c.Collection.Channels, c.Collection.OverallChannel)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
