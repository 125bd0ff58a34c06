package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TOAST_TTL", "")
	t.Setenv("SCHOOL_TIMEZONE", "")
	t.Setenv("TRUST_PROXY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.TrustProxy)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 3*time.Second, cfg.App.ToastTTL)
	assert.Equal(t, "Australia/Adelaide", cfg.App.Timezone)
	assert.Equal(t, 10, cfg.LeadRate.Limit)
	assert.False(t, cfg.Email.MailEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOAST_TTL", "5s")
	t.Setenv("SCHOOL_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("MAIL_HOST", "smtp.test")
	t.Setenv("OFFICE_EMAIL", "office@cirkidz.test")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.TrustProxy)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.App.ToastTTL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Email.MailEnabled())
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("SCHOOL_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "SCHOOL_TIMEZONE")
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SCHOOL_TIMEZONE", "UTC")
	cfg, err := Load()
	require.NoError(t, err)

	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-p", "7000", "--toast-ttl", "1s"}))

	assert.Equal(t, "7000", cfg.App.Port)
	assert.Equal(t, time.Second, cfg.App.ToastTTL)
	assert.NoError(t, cfg.Validate())
}
