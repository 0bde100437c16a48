package httpapi

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailablePort_SkipsBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	_, err = FindAvailablePort(port, port)
	assert.Error(t, err)

	got, err := FindAvailablePort(port, port+20)
	if err == nil {
		assert.NotEqual(t, port, got)
	}
}

func TestResolveAddr(t *testing.T) {
	addr, err := ResolveAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	addr, err = ResolveAddr("")
	if err != nil {
		t.Skipf("no free port in default range: %v", err)
	}
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, DefaultStartPort)
	assert.LessOrEqual(t, n, DefaultEndPort)
}
