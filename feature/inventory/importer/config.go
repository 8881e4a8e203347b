package importer

// Config holds the defaults applied to imported rows.
type Config struct {
	// DefaultMinStock is used when the row has no reorder threshold. Zero is honored.
	DefaultMinStock int `mapstructure:"default_min_stock" default:"10"`
	// DefaultCategory replaces empty or UNKNOWN categories.
	DefaultCategory string `mapstructure:"default_category" default:"Other"`
	// DefaultSupplier replaces empty or UNKNOWN suppliers.
	DefaultSupplier string `mapstructure:"default_supplier" default:"Imported"`
	// DefaultIcon is the display glyph for rows without one.
	DefaultIcon string `mapstructure:"default_icon" default:"📦"`
	// ProgressMaxInterval caps how many rows pass between progress messages.
	ProgressMaxInterval int `mapstructure:"progress_max_interval" default:"500"`
}

// DefaultConfig returns the stock defaults.
func DefaultConfig() Config {
	return Config{
		DefaultMinStock:     10,
		DefaultCategory:     "Other",
		DefaultSupplier:     "Imported",
		DefaultIcon:         "📦",
		ProgressMaxInterval: 500,
	}
}

// withDefaults fills empty strings and a non-positive progress interval so a partially
// populated Config still works. DefaultMinStock is kept as given, since zero is a valid
// threshold; negative values become zero.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DefaultCategory == "" {
		c.DefaultCategory = d.DefaultCategory
	}
	if c.DefaultSupplier == "" {
		c.DefaultSupplier = d.DefaultSupplier
	}
	if c.DefaultIcon == "" {
		c.DefaultIcon = d.DefaultIcon
	}
	if c.DefaultMinStock < 0 {
		c.DefaultMinStock = 0
	}
	if c.ProgressMaxInterval <= 0 {
		c.ProgressMaxInterval = d.ProgressMaxInterval
	}
	return c
}
