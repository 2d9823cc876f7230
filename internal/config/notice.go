package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// NoticeConfig controls whether reconciliation writes customer-visible
// audit comments on the order. Operators toggle it without a restart.
type NoticeConfig struct {
	WriteCustomerNotice bool `mapstructure:"writeCustomerNotice"`
}

type NoticeConfigHolder struct {
	current atomic.Value // holds NoticeConfig
}

// NewNoticeConfigHolder reads notice.yml if present and watches it for
// changes. Without a config file the env-derived default applies.
func NewNoticeConfigHolder(appCfg Config) (*NoticeConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("notice")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/mollie-reconciler/config")
	v.AddConfigPath("/etc/mollie-reconciler")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOLLIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	holder := &NoticeConfigHolder{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		holder.current.Store(NoticeConfig{WriteCustomerNotice: appCfg.WriteCustomerNotice})
		return holder, nil
	}

	var cfg NoticeConfig
	if err := v.UnmarshalKey("notice", &cfg); err != nil {
		return nil, err
	}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated NoticeConfig
		if err := v.UnmarshalKey("notice", &updated); err != nil {
			log.Printf("[notice-config] reload failed: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[notice-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *NoticeConfigHolder) Get() NoticeConfig {
	return h.current.Load().(NoticeConfig)
}

// Set replaces the current notice config. Used by tests.
func (h *NoticeConfigHolder) Set(cfg NoticeConfig) {
	h.current.Store(cfg)
}
