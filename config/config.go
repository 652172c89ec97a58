package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Content  ContentConfig  `yaml:"content"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

type ContentConfig struct {
	Dir string `yaml:"dir"` // 主题 markdown 文件根目录
}

type AuthConfig struct {
	Provider    string            `yaml:"provider"` // none, simple, cognito, azure, google
	RequireAuth bool              `yaml:"require_auth"`
	AdminOnly   bool              `yaml:"admin_only"`
	Simple      SimpleAuthConfig  `yaml:"simple"`
	Cognito     CognitoAuthConfig `yaml:"cognito"`
	Azure       AzureAuthConfig   `yaml:"azure"`
	Google      GoogleAuthConfig  `yaml:"google"`
}

type SimpleAuthConfig struct {
	UserUsername  string `yaml:"user_username"`
	UserPassword  string `yaml:"user_password"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
}

type CognitoAuthConfig struct {
	UserPoolID     string `yaml:"user_pool_id"`
	ClientID       string `yaml:"client_id"`
	Region         string `yaml:"region"`
	AdminGroupName string `yaml:"admin_group_name"`
}

type AzureAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	Authority    string `yaml:"authority"`
	RedirectURI  string `yaml:"redirect_uri"`
	AdminGroupID string `yaml:"admin_group_id"`
}

type GoogleAuthConfig struct {
	ClientID    string `yaml:"client_id"`
	RedirectURI string `yaml:"redirect_uri"`
	AdminDomain string `yaml:"admin_domain"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/app.db",
		},
		Content: ContentConfig{
			Dir: filepath.Join("content", "topics"),
		},
		Auth: AuthConfig{
			Provider: "none",
			Cognito: CognitoAuthConfig{
				AdminGroupName: "Administrators",
			},
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 环境变量优先级高于配置文件
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		config.Server.Mode = mode
	}

	// 数据库环境变量
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	// 内容目录环境变量（Docker 部署时挂载自定义目录）
	if dir := os.Getenv("TOPICS_STORAGE_PATH"); dir != "" {
		config.Content.Dir = dir
	}

	// 认证环境变量
	if provider := os.Getenv("AUTH_PROVIDER"); provider != "" {
		config.Auth.Provider = provider
	}
	if os.Getenv("REQUIRE_AUTH") == "true" {
		config.Auth.RequireAuth = true
	}
	if os.Getenv("ADMIN_ONLY") == "true" {
		config.Auth.AdminOnly = true
	}
	if v := os.Getenv("USER_USERNAME"); v != "" {
		config.Auth.Simple.UserUsername = v
	}
	if v := os.Getenv("USER_PASSWORD"); v != "" {
		config.Auth.Simple.UserPassword = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		config.Auth.Simple.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		config.Auth.Simple.AdminPassword = v
	}
	if v := os.Getenv("COGNITO_USER_POOL_ID"); v != "" {
		config.Auth.Cognito.UserPoolID = v
	}
	if v := os.Getenv("COGNITO_CLIENT_ID"); v != "" {
		config.Auth.Cognito.ClientID = v
	}
	if v := os.Getenv("COGNITO_REGION"); v != "" {
		config.Auth.Cognito.Region = v
	}
	if v := os.Getenv("COGNITO_ADMIN_GROUP_NAME"); v != "" {
		config.Auth.Cognito.AdminGroupName = v
	}
	if v := os.Getenv("AZURE_CLIENT_ID"); v != "" {
		config.Auth.Azure.ClientID = v
	}
	if v := os.Getenv("AZURE_AUTHORITY"); v != "" {
		config.Auth.Azure.Authority = v
	}
	if v := os.Getenv("AZURE_REDIRECT_URI"); v != "" {
		config.Auth.Azure.RedirectURI = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		config.Auth.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_REDIRECT_URI"); v != "" {
		config.Auth.Google.RedirectURI = v
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
