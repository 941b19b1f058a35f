package config

import (
	"fmt"

	"msg-relay-go/internal/di"

	"github.com/spf13/viper"
	"go.uber.org/dig"
)

type configValueProvider struct {
	cfg        *viper.Viper
	configPath string
	diPath     string
}

func provideConfigValue(cfg *viper.Viper, path string) configValueProvider {
	if !cfg.IsSet(path) {
		panic(fmt.Errorf("config key not found: %s", path))
	}
	return configValueProvider{cfg, path, "config." + path}
}

func (p configValueProvider) asInt() di.ConstructorWithOpts {
	return di.ProvideValue(p.cfg.GetInt(p.configPath), dig.Name(p.diPath))
}

func (p configValueProvider) asString() di.ConstructorWithOpts {
	return di.ProvideValue(p.cfg.GetString(p.configPath), dig.Name(p.diPath))
}

func (p configValueProvider) asBool() di.ConstructorWithOpts {
	return di.ProvideValue(p.cfg.GetBool(p.configPath), dig.Name(p.diPath))
}

func (p configValueProvider) asDuration() di.ConstructorWithOpts {
	return di.ProvideValue(p.cfg.GetDuration(p.configPath), dig.Name(p.diPath))
}

func Provide(container *dig.Container, cfg *viper.Viper) error {
	return di.ProvideAll(container,
		// tcp server config
		provideConfigValue(cfg, "tcpServer.host").asString(),
		provideConfigValue(cfg, "tcpServer.port").asInt(),
		provideConfigValue(cfg, "tcpServer.writeTimeout").asDuration(),
		provideConfigValue(cfg, "tcpServer.maxLineBytes").asInt(),

		// relay config
		provideConfigValue(cfg, "relay.deliverSender").asBool(),

		// client config
		provideConfigValue(cfg, "client.ioTimeout").asDuration(),
		provideConfigValue(cfg, "client.senderFraming").asBool(),
	)
}
