package config

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestConfig(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		t.Run("should load default config merged with env config", func(t *testing.T) {
			cfg, err := Load(NewLoadOpts().WithEnv("test"))
			require.NoError(t, err)
			assert.Equal(t, "debug", cfg.GetString("defaultLogLevel"))
			assert.Equal(t, "127.0.0.1", cfg.GetString("tcpServer.host"))
			assert.Equal(t, 0, cfg.GetInt("tcpServer.port"))
			assert.Equal(t, 2*time.Second, cfg.GetDuration("tcpServer.writeTimeout"))
			assert.True(t, cfg.GetBool("relay.deliverSender"))
		})
		t.Run("should use local env by default", func(t *testing.T) {
			t.Setenv("APP_ENV", "")
			cfg, err := Load(NewLoadOpts())
			require.NoError(t, err)
			assert.Equal(t, "debug", cfg.GetString("defaultLogLevel"))
			assert.Equal(t, 1025, cfg.GetInt("tcpServer.port"))
		})
		t.Run("should fail for unknown env", func(t *testing.T) {
			_, err := Load(NewLoadOpts().WithEnv(faker.UUIDHyphenated()))
			assert.ErrorContains(t, err, "no config found for env")
		})
		t.Run("should allow env variable overrides", func(t *testing.T) {
			wantPort := 20000 + rand.IntN(10000)
			t.Setenv("RELAY_TCPSERVER_PORT", strconv.Itoa(wantPort))
			cfg, err := Load(NewLoadOpts().WithEnv("test"))
			require.NoError(t, err)
			assert.Equal(t, wantPort, cfg.GetInt("tcpServer.port"))
		})
	})

	t.Run("Provide", func(t *testing.T) {
		t.Run("should provide config values as named dependencies", func(t *testing.T) {
			cfg, err := Load(NewLoadOpts().WithEnv("test"))
			require.NoError(t, err)

			container := dig.New()
			require.NoError(t, Provide(container, cfg))

			type params struct {
				dig.In

				Host          string        `name:"config.tcpServer.host"`
				Port          int           `name:"config.tcpServer.port"`
				WriteTimeout  time.Duration `name:"config.tcpServer.writeTimeout"`
				MaxLineBytes  int           `name:"config.tcpServer.maxLineBytes"`
				DeliverSender bool          `name:"config.relay.deliverSender"`
				IOTimeout     time.Duration `name:"config.client.ioTimeout"`
				SenderFraming bool          `name:"config.client.senderFraming"`
			}
			require.NoError(t, container.Invoke(func(p params) {
				assert.Equal(t, "127.0.0.1", p.Host)
				assert.Equal(t, 65536, p.MaxLineBytes)
				assert.Equal(t, 2*time.Second, p.IOTimeout)
				assert.True(t, p.SenderFraming)
			}))
		})
		t.Run("should panic if config key is missing", func(t *testing.T) {
			cfg, err := Load(NewLoadOpts().WithEnv("test"))
			require.NoError(t, err)
			assert.Panics(t, func() {
				provideConfigValue(cfg, faker.Word()+"."+faker.Word())
			})
		})
	})
}
