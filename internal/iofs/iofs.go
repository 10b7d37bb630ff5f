package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/herbdata/herbario/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed sources.yaml
var SourcesYAML string

// EnsureConfigDirs creates the configuration directory under the user's
// home directory.
func EnsureConfigDirs(homeDir string) error {
	return touchDir(config.ConfigDir(homeDir))
}

// EnsureWorkDirs creates the data, checkpoint and error-log directories
// under the working directory.
func EnsureWorkDirs(workDir string) error {
	dirs := []string{
		config.DataDir(workDir),
		config.TempDir(workDir),
		config.ErrorsDir(workDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded default config.yaml to the config
// directory if no config file exists yet.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureSourcesFile writes the embedded default sources.yaml to the config
// directory if no sources file exists yet.
func EnsureSourcesFile(homeDir string) error {
	sourcesPath := config.SourcesFilePath(homeDir)

	if _, err := os.Stat(sourcesPath); err == nil {
		return nil
	}

	if err := os.WriteFile(sourcesPath, []byte(SourcesYAML), 0644); err != nil {
		return CopyFileError(sourcesPath, err)
	}

	return nil
}

// CleanEmptyLogs removes zero-length files from the error-log directory.
// Logs that received entries are kept.
func CleanEmptyLogs(errorsDir string) error {
	entries, err := os.ReadDir(errorsDir)
	if err != nil {
		return ReadFileError(errorsDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return ReadFileError(entry.Name(), err)
		}
		if info.Size() > 0 {
			continue
		}
		path := filepath.Join(errorsDir, entry.Name())
		if err := os.Remove(path); err != nil {
			return RemoveFileError(path, err)
		}
	}
	return nil
}

// CleanTemp removes every checkpoint file from the temp directory. A
// cleaned pipeline cannot be resumed and starts from scratch.
func CleanTemp(tempDir string) error {
	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		return nil
	}
	if err := gnsys.CleanDir(tempDir); err != nil {
		return RemoveFileError(tempDir, err)
	}
	return nil
}

// PurgeLogs removes every file from the error-log directory, empty or
// not.
func PurgeLogs(errorsDir string) error {
	if _, err := os.Stat(errorsDir); os.IsNotExist(err) {
		return nil
	}
	if err := gnsys.CleanDir(errorsDir); err != nil {
		return RemoveFileError(errorsDir, err)
	}
	return nil
}
