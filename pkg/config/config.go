package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	SGA      SGAConfig
	Estatico EstaticoConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SGAConfig credenciais e endereço da API Hinova SGA v2.
// O token de associação e o usuário/senha são segredos injetados por ambiente;
// nunca ficam hard-coded no binário.
type SGAConfig struct {
	BaseURL         string // ex: https://api.hinova.com.br/api/sga/v2
	TokenAssociacao string // bearer de longa duração que identifica a associação
	Usuario         string
	Senha           string
	TimeoutSeconds  int // timeout de rede das chamadas ao SGA
}

// Timeout devolve o timeout das chamadas upstream como time.Duration.
func (c SGAConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validar garante que os segredos obrigatórios foram informados.
// Em development a validação é relaxada para permitir subir o servidor com mocks.
func (c SGAConfig) Validar(env string) error {
	if env == "development" {
		return nil
	}
	if c.TokenAssociacao == "" || c.Usuario == "" || c.Senha == "" {
		return fmt.Errorf("config SGA incompleta: defina SGA_TOKEN_ASSOCIACAO, SGA_USUARIO e SGA_SENHA")
	}
	return nil
}

// EstaticoConfig serve a SPA do portal (arquivos estáticos + fallback index.html).
type EstaticoConfig struct {
	Dir string
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, SGA_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Também tenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Bind de variáveis de ambiente
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "portal-associado-jrpv"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		SGA: SGAConfig{
			BaseURL:         getString(v, "SGA_BASE_URL", "https://api.hinova.com.br/api/sga/v2"),
			TokenAssociacao: getString(v, "SGA_TOKEN_ASSOCIACAO", ""),
			Usuario:         getString(v, "SGA_USUARIO", ""),
			Senha:           getString(v, "SGA_SENHA", ""),
			TimeoutSeconds:  getInt(v, "SGA_TIMEOUT_SECONDS", 30),
		},
		Estatico: EstaticoConfig{
			Dir: getString(v, "STATIC_DIR", "./public"),
		},
	}

	if err := cfg.SGA.Validar(cfg.App.Env); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
