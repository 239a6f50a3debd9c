package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Modos de associação de uma carga de vendas a uma data_source
const (
	SourceModeExplicit = "explicit"
	SourceModeLegacy   = "legacy"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Ingestion Ingestion `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Host            string        `mapstructure:"database_host"`
	Port            string        `mapstructure:"database_port"`
	User            string        `mapstructure:"database_user"`
	Password        string        `mapstructure:"database_password"`
	Name            string        `mapstructure:"database_name"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Ingestion struct {
	SourceMode     string `mapstructure:"ingestion_source_mode"`
	MaxUploadBytes int64  `mapstructure:"ingestion_max_upload_bytes"`
	PreviewRows    int    `mapstructure:"ingestion_preview_rows"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Parâmetros de conexão que nunca têm valor padrão no código
var requiredDatabaseKeys = []string{
	"database_host",
	"database_port",
	"database_user",
	"database_name",
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("INGESTION_SOURCE_MODE", SourceModeExplicit)
	v.SetDefault("INGESTION_MAX_UPLOAD_BYTES", 10<<20) // 10 MiB
	v.SetDefault("INGESTION_PREVIEW_ROWS", 100)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Sem default, o AutomaticEnv não enxerga essas chaves no Unmarshal
	for _, key := range append(requiredDatabaseKeys, "database_password") {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("erro ao associar variável %s: %w", strings.ToUpper(key), err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// Validate garante que os parâmetros de conexão vieram de configuração externa
func (c *Config) Validate() error {
	values := map[string]string{
		"database_host": c.Database.Host,
		"database_port": c.Database.Port,
		"database_user": c.Database.User,
		"database_name": c.Database.Name,
	}

	missing := make([]string, 0)
	for _, key := range requiredDatabaseKeys {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, strings.ToUpper(key))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("configuração do banco de dados incompleta, defina: %s", strings.Join(missing, ", "))
	}

	switch c.Ingestion.SourceMode {
	case SourceModeExplicit, SourceModeLegacy:
	default:
		return fmt.Errorf("INGESTION_SOURCE_MODE inválido: %q (use %s ou %s)",
			c.Ingestion.SourceMode, SourceModeExplicit, SourceModeLegacy)
	}

	if c.Ingestion.MaxUploadBytes <= 0 {
		return fmt.Errorf("INGESTION_MAX_UPLOAD_BYTES deve ser positivo")
	}

	return nil
}

// BuildDSN monta a URL de conexão escapando usuário e senha
func (d Database) BuildDSN() string {
	dsn := url.URL{
		Scheme: d.Driver,
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}

	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}

	return dsn.String()
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
