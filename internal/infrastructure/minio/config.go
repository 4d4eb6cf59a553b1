package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	// PublicURL is the externally reachable base the stored blob URLs are
	// built from, e.g. "http://media.example.com".
	PublicURL string `yaml:"public_url"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
