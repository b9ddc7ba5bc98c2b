package mapping

import (
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/models"
)

// ToModelSetting converts a domain Setting to a model Setting
func ToModelSetting(d domain.Setting) models.Setting {
	return models.Setting{Key: string(d.Key), Value: d.Value}
}

// ToDomainSetting converts a model Setting to a domain Setting
func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{Key: domain.SettingKey(m.Key), Value: m.Value}
}
