package overrides

// Config holds the workspace settings.
type Config struct {
	// Root is the directory searched for override files.
	Root string `mapstructure:"root" default:"." validate:"required"`
	// Filename is the reserved override file name.
	Filename string `mapstructure:"override_filename" default:".sptids" validate:"required,excludesall=/\\"`
	// Exclude lists directory names that are never searched.
	Exclude []string `mapstructure:"exclude" default:"node_modules,build,dist,out"`
	// Workers bounds concurrent file parsing.
	Workers int `mapstructure:"workers" default:"4" validate:"gte=1,lte=64"`
}
