package config

// NewApp builds an App with a preset profile path, bypassing flag parsing.
func NewApp(path string) *App {
	return &App{profilePath: path}
}
