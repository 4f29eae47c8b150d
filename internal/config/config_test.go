package config

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFunctionAppEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AzureWebJobsStorage", "UseDevelopmentStorage=true")
	t.Setenv("BLOB_CONTAINER", "repo")
	t.Setenv("FUNCTIONS_CUSTOMHANDLER_PORT", "7071")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "UseDevelopmentStorage=true", cfg.ConnectionString)
	assert.Equal(t, "repo", cfg.Container)
	assert.Equal(t, 7071, cfg.Port)
}

func TestLoadViperOverridesEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("BLOB_CONTAINER", "from-env")
	viper.Set("connection_string", "conn")
	viper.Set("container", "from-viper")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-viper", cfg.Container)
	assert.Equal(t, defaultPort, cfg.Port)
}

func TestLoadMissingConnectionString(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AzureWebJobsStorage", "")
	t.Setenv("BLOB_CONTAINER", "repo")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestLoadMissingContainer(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AzureWebJobsStorage", "conn")
	t.Setenv("BLOB_CONTAINER", "")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestLoadBadPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("AzureWebJobsStorage", "conn")
	t.Setenv("BLOB_CONTAINER", "repo")
	t.Setenv("FUNCTIONS_CUSTOMHANDLER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
