package notes

import (
	"os"
	"os/user"
	"path/filepath"
)

const configFolder = ".config/lazyufw"

// Dir resolves the annotation directory under the invoking user's home.
// The tool normally runs under sudo, so SUDO_USER wins over root's own home:
// annotations belong to the person at the keyboard, not to root.
func Dir() (string, error) {
	home, err := resolveHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFolder), nil
}

func ServicesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "services.txt"), nil
}

func NotesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notes.txt"), nil
}

func resolveHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil && u.HomeDir != "" {
			return u.HomeDir, nil
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}
