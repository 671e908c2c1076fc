package domain

type Config struct {
	Version          string
	ConfigPath       string
	DownloadLocation string `yaml:"downloadLocation"`
	NamingTemplate   string `yaml:"namingTemplate"`
	CheckInterval    int    `yaml:"checkInterval"`
	ImageQuality     string `yaml:"imageQuality"`
	OpenSource       bool   `yaml:"openSource"`
	GroupTags        bool   `yaml:"groupTags"`
	UseAlternateAPI  bool   `yaml:"useAlternateAPI"`
	AlternateAPIURL  string `yaml:"alternateAPIURL"`
	UseEmail         bool   `yaml:"useEmail"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	LogPath          string `yaml:"logPath"`
	LogLevel         string `yaml:"LogLevel"`
	LogMaxSize       int    `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups    int    `yaml:"logMaxBackups"`
}

// SourceURLStore keeps the original source URL of a gallery keyed by
// its generated /g/{id}/{key} path, for hosts that open the source
// site instead of the gallery page.
type SourceURLStore interface {
	SourceURL(path string) (string, bool)
	SetSourceURL(path, url string)
}
