package config

// Version is the package version, reported in the User-Agent header.
const Version = "0.1.0"

// App holds the immutable identity constants. Constructed once at startup
// and passed down, so tests can substitute their own values.
type App struct {
	KeyringService string
	UserAgent      string
}

func DefaultApp() App {
	return App{
		KeyringService: "scanbridge",
		UserAgent:      "scanbridge/" + Version,
	}
}
