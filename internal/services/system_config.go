package services

import (
	"strconv"

	"github.com/agora-dev/teko-board/backend/internal/config"
	"github.com/agora-dev/teko-board/backend/internal/models"
	"gorm.io/gorm"
)

type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

func (s *SystemConfigService) Get(key string) (string, error) {
	var cfg models.SystemConfig
	if err := s.db.Where("`key` = ?", key).First(&cfg).Error; err != nil {
		return "", err
	}
	return cfg.Value, nil
}

func (s *SystemConfigService) GetWithDefault(key, defaultValue string) string {
	value, err := s.Get(key)
	if err != nil {
		return defaultValue
	}
	return value
}

func (s *SystemConfigService) Set(key, value string) error {
	var cfg models.SystemConfig
	err := s.db.Where("`key` = ?", key).First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = models.SystemConfig{
			Key:   key,
			Value: value,
		}
		return s.db.Create(&cfg).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&cfg).Update("value", value).Error
}

func (s *SystemConfigService) GetByGroup(group string) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := s.db.Where("`group` = ?", group).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// GetLDAPConfig assembles the LDAP settings stored in system_configs,
// falling back to the file config for anything unset.
func (s *SystemConfigService) GetLDAPConfig(fallback *config.LDAPConfig) *config.LDAPConfig {
	port, err := strconv.Atoi(s.GetWithDefault("ldap_port", strconv.Itoa(fallback.Port)))
	if err != nil {
		port = fallback.Port
	}
	return &config.LDAPConfig{
		Enabled:      s.GetWithDefault("ldap_enabled", strconv.FormatBool(fallback.Enabled)) == "true",
		Host:         s.GetWithDefault("ldap_host", fallback.Host),
		Port:         port,
		BaseDN:       s.GetWithDefault("ldap_base_dn", fallback.BaseDN),
		BindDN:       s.GetWithDefault("ldap_bind_dn", fallback.BindDN),
		BindPassword: s.GetWithDefault("ldap_bind_password", fallback.BindPassword),
		UserFilter:   s.GetWithDefault("ldap_user_filter", fallback.UserFilter),
		UseSSL:       s.GetWithDefault("ldap_use_ssl", strconv.FormatBool(fallback.UseSSL)) == "true",
	}
}
