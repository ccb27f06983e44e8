package cfg

import (
	"starchain/chain"

	"bytes"
	"io/ioutil"
	"os"
	"testing"
	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigEncodeDecode(t *testing.T) {
	config := DefaultConfig()
	b := &bytes.Buffer{}
	enc := toml.NewEncoder(b)
	enc.Indent = ""
	require.NoError(t, enc.Encode(config))

	config2, err := DecodeConfig(b.String())
	require.NoError(t, err)
	assert.Equal(t, config, config2)
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	config, err := DecodeConfig(`
LogLevel = "debug"

[Chain]
ChallengeWindow = 120
`)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "starchain", config.ChainId)
	assert.Equal(t, int64(120), config.Chain.ChallengeWindow)
	assert.Equal(t, chain.DEFAULT_DOMAIN_TAG, config.Chain.DomainTag)
	assert.Equal(t, 60, config.Audit.Interval)
}

func TestDecodeConfigBad(t *testing.T) {
	bad := []string{
		`LogLevel = `,
		`ChainId = ""`,
		"[Chain]\nChallengeWindow = 0",
		"[Chain]\nDomainTag = \"a:b\"",
		"[Audit]\nInterval = -1",
	}
	for _, data := range bad {
		_, err := DecodeConfig(data)
		assert.Error(t, err, data)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpfile, err := ioutil.TempFile("", "starchain-config")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("ChainId = \"local\"\n[Audit]\nInterval = 5\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "local", config.ChainId)
	assert.Equal(t, 5, config.Audit.Interval)

	_, err = LoadConfig(tmpfile.Name() + ".missing")
	assert.Error(t, err)
}
