package config

// Config is the top-level semview configuration, corresponding to
// .semview.yml.
type Config struct {
	// Source is where the mapping document lives: an http(s) URL or a
	// local file path.
	Source string `yaml:"source" koanf:"source"`
	// Title is the page title shown above the viewer.
	Title string `yaml:"title" koanf:"title"`
	// Port is the HTTP port the serve command listens on.
	Port int `yaml:"port" koanf:"port"`
	// OutputDir is where the render command writes the static site.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// AllowAllOrigins opens CORS to any origin (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
