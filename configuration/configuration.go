package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	EnableCompression bool   `usage:"enable gzip compression"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:   "localhost:6971",
		ShowBanner: true,
	}
}
