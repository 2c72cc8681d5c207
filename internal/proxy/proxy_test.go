package proxy

import (
	"testing"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/testutil"
)

func TestResolveOffIgnoresURL(t *testing.T) {
	res, err := Resolve(config.Proxy{Support: config.ProxyOff, URL: "http://proxy.example:3128"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ModeOff, res.Mode)
	testutil.AssertEqual(t, false, res.Configured())
}

func TestResolveEnabledWithoutURL(t *testing.T) {
	res, err := Resolve(config.Proxy{Support: config.ProxyDefault, Auth: "Basic abc"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ModeUnset, res.Mode)
	testutil.AssertEqual(t, false, res.Configured())
	testutil.AssertEqual(t, "Basic abc", res.Auth)
}

func TestResolveConfigured(t *testing.T) {
	res, err := Resolve(config.Proxy{Support: config.ProxyOverride, URL: "http://proxy.example:3128"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ModeConfigured, res.Mode)
	testutil.AssertEqual(t, "http", res.Config.Protocol)
	testutil.AssertEqual(t, "proxy.example", res.Config.Host)
	testutil.AssertEqual(t, "3128", res.Config.Port)
	testutil.AssertEqual(t, "http://proxy.example:3128", res.URL().String())
}

func TestResolvePortOmitted(t *testing.T) {
	res, err := Resolve(config.Proxy{Support: config.ProxyDefault, URL: "https://proxy.example"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ModeConfigured, res.Mode)
	testutil.AssertEqual(t, "", res.Config.Port)
	testutil.AssertEqual(t, "https://proxy.example", res.URL().String())
}

func TestResolveMalformedURL(t *testing.T) {
	_, err := Resolve(config.Proxy{Support: config.ProxyDefault, URL: "proxy.example:3128:extra"})
	testutil.AssertError(t, err)

	_, err = Resolve(config.Proxy{Support: config.ProxyDefault, URL: "proxy.example"})
	testutil.AssertError(t, err)
}
