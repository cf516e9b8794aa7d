package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/penlight",
			SQLiteFile: "penlight.db",
		},
		Filters: FiltersConfig{
			DefaultGroup: "nogi",
		},
		Share: ShareConfig{
			BaseURL: "https://sakamichi-tools.github.io/penlight/",
		},
		Export: ExportConfig{
			Filename: "penlight_notes_export.json",
		},
		Privacy: PrivacyConfig{
			WarnPatterns: DefaultWarnPatterns(),
		},
		Theme: ThemeConfig{
			Default: "dark",
		},
	}
}
