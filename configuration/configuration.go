package configuration

type Configuration struct {
	HttpAddr   string `usage:"HTTP address"`
	IdField    string `usage:"record field used as identifier"`
	EnvName    string `usage:"environment variable driving validation"`
	EnvPattern string `usage:"pattern the variable must match to enable validation"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:   ":8080",
		IdField:    "id",
		EnvName:    "ENVIRONMENT",
		EnvPattern: "dev*",
	}
}
