package archive

import "fmt"

// Config holds the archive locations.
type Config struct {
	// Path is the game installation directory or a direct path to a *_dir.vpk.
	Path string `mapstructure:"path" default:""`
	// ItemsEntry is the item definition document inside the archive.
	ItemsEntry string `mapstructure:"items_entry" default:"scripts/items/items_game.txt"`
	// AssetExtension selects the texture entries.
	AssetExtension string `mapstructure:"asset_extension" default:"vtex_c"`
	// AssetDir selects texture entries whose directory starts with it, so
	// siblings such as "loadingscreens_ti" are included.
	AssetDir string `mapstructure:"asset_dir" default:"panorama/images/loadingscreens"`
	// AssetGlob optionally narrows the selected entries by full path.
	AssetGlob string `mapstructure:"asset_glob" default:""`
	// DirPrefix is stripped from entry paths before matching item asset paths.
	DirPrefix string `mapstructure:"dir_prefix" default:"panorama/images/"`
}

// AssetFilter combines AssetDir and AssetGlob. Empty values accept everything.
func (c Config) AssetFilter() (Filter, error) {
	var filters []Filter
	if c.AssetDir != "" {
		filters = append(filters, DirPrefix(c.AssetDir))
	}
	if c.AssetGlob != "" {
		g, err := Glob(c.AssetGlob)
		if err != nil {
			return nil, err
		}
		filters = append(filters, g)
	}
	return All(filters...), nil
}

// AssetSelection describes the asset filter for messages.
func (c Config) AssetSelection() string {
	switch {
	case c.AssetDir != "" && c.AssetGlob != "":
		return fmt.Sprintf("%s* and %s", c.AssetDir, c.AssetGlob)
	case c.AssetGlob != "":
		return c.AssetGlob
	case c.AssetDir != "":
		return c.AssetDir + "*"
	}
	return "*"
}
