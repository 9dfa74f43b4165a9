package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"

	DefaultSecretKey = "your_secret_key"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Dataset define de onde a tabela de vendas é carregada
type Dataset struct {
	Source    string `mapstructure:"dataset_source"` // file ou postgres
	Path      string `mapstructure:"dataset_path"`
	Delimiter string `mapstructure:"dataset_delimiter"`
	Sheet     string `mapstructure:"dataset_sheet"`
	Table     string `mapstructure:"dataset_table"`
}

type Dashboard struct {
	TopProducts int `mapstructure:"dashboard_top_products"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// DelimiterRune retorna o delimitador configurado ou zero para usar o padrão da extensão
func (d Dataset) DelimiterRune() rune {
	switch d.Delimiter {
	case "":
		return 0
	case `\t`, "tab":
		return '\t'
	default:
		return []rune(d.Delimiter)[0]
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceFile)
	viper.SetDefault("DATASET_PATH", "Sample - Superstore.csv")
	viper.SetDefault("DATASET_DELIMITER", "")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_TABLE", "sales_records")

	viper.SetDefault("DASHBOARD_TOP_PRODUCTS", 10)

	viper.SetDefault("DATASET_RELOAD_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("SECRET_KEY", DefaultSecretKey)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a carga do dataset
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", DatasetSourceFile)
		}
	case DatasetSourcePostgres:
		if c.Dataset.Table == "" {
			return fmt.Errorf("DATASET_TABLE é obrigatório quando DATASET_SOURCE=%s", DatasetSourcePostgres)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Dashboard.TopProducts <= 0 {
		return fmt.Errorf("DASHBOARD_TOP_PRODUCTS deve ser positivo: %d", c.Dashboard.TopProducts)
	}

	return nil
}

// ValidateSecretKey exige uma chave própria para assinar tokens das rotas administrativas
func (c *Config) ValidateSecretKey() error {
	if c.SecretKey == "" || c.SecretKey == DefaultSecretKey {
		return fmt.Errorf("SECRET_KEY deve ser definido com um valor próprio para habilitar as rotas administrativas")
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
