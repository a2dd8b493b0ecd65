package pitchdeck

import "log/slog"

// SaveOptions holds the configuration of a build.
type SaveOptions struct {
	// Output path; "" uses the version's fixed path.
	output string

	// Extras written after the package
	previewDir string
	outline    string
	thumbnail  bool
	proof      bool

	logger *slog.Logger
}

// defaultOptions returns the default save options: thumbnail on, no extras.
func defaultOptions() SaveOptions {
	return SaveOptions{
		thumbnail: true,
		logger:    slog.Default(),
	}
}

// clone creates a copy of SaveOptions.
func (o SaveOptions) clone() SaveOptions {
	return o
}
