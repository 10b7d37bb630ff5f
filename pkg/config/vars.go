package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "herbario"

	// ChecklistFile is the cached copy of the reference checklist.
	ChecklistFile = "species_names.csv"

	// TableFile is the final simplified table.
	TableFile = "herbario_species.csv"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/herbario by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

// DataDir returns the directory for downloaded and generated artifacts,
// relative to the working directory.
func DataDir(workDir string) string {
	return filepath.Join(workDir, "data")
}

// TempDir returns the directory for stage checkpoint files.
func TempDir(workDir string) string {
	return filepath.Join(DataDir(workDir), "temp")
}

// ErrorsDir returns the directory for dated error logs.
func ErrorsDir(workDir string) string {
	return filepath.Join(workDir, "errors")
}

// ChecklistPath returns the path of the cached reference checklist.
func ChecklistPath(workDir string) string {
	return filepath.Join(DataDir(workDir), ChecklistFile)
}

// TablePath returns the path of the final simplified table.
func TablePath(workDir string) string {
	return filepath.Join(DataDir(workDir), TableFile)
}
