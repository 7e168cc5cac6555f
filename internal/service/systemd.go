package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	unitName = "clipsync.service"

	serviceTemplate = `
[Unit]
Description=Wayland <-> X11 clipboard sync
Documentation=https://github.com/labi-le/clipsync

PartOf=graphical-session.target

After=graphical-session.target

ConditionEnvironment=WAYLAND_DISPLAY

[Service]
Type=simple
ExecStart=%s
Environment="PATH=%s"
Environment="DISPLAY=%s"
Environment="WAYLAND_DISPLAY=%s"
Restart=on-failure
RestartSec=10

StandardOutput=journal
StandardError=journal

[Install]
WantedBy=graphical-session.target
`
)

// Unit renders the user unit for the given executable and session.
func Unit(exe, envPath, display, waylandDisplay string) string {
	if strings.Contains(exe, " ") {
		exe = fmt.Sprintf(`"%s"`, exe)
	}

	return fmt.Sprintf(serviceTemplate, exe, envPath, display, waylandDisplay)
}

func InstallService(logger zerolog.Logger) error {
	envPath := os.Getenv("PATH")
	if envPath == "" {
		return fmt.Errorf("critical env missing: PATH is empty. Cannot install service")
	}

	display := os.Getenv("DISPLAY")
	if display == "" {
		return fmt.Errorf("critical env missing: DISPLAY is empty. Cannot install service")
	}

	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	if waylandDisplay == "" {
		return fmt.Errorf("critical env missing: WAYLAND_DISPLAY is empty. Cannot install service")
	}

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to detect executable path: %w", err)
	}

	exePath, err = filepath.EvalSymlinks(exePath)
	if err != nil {
		return fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	absPath, err := filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home dir: %w", err)
	}

	systemdDir := filepath.Join(homeDir, ".config", "systemd", "user")
	serviceFile := filepath.Join(systemdDir, unitName)

	logger.Info().Msg("try to delete the old service instance")
	_ = runSystemctl(logger, "disable", "--now", unitName)

	if err := os.MkdirAll(systemdDir, 0755); err != nil {
		return fmt.Errorf("failed to create systemd directory: %w", err)
	}

	content := Unit(absPath, envPath, display, waylandDisplay)

	if err := os.WriteFile(serviceFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}

	logger.Info().Str("path", serviceFile).Msg("service file created")

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", unitName},
		{"restart", unitName},
	} {
		if err := runSystemctl(logger, args...); err != nil {
			return err
		}
	}

	logger.Info().Msg("service installed and started successfully")
	return nil
}

func runSystemctl(logger zerolog.Logger, args ...string) error {
	logger.Debug().Strs("args", args).Msg("executing systemctl")

	cmd := exec.Command("systemctl", append([]string{"--user"}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("systemctl %s failed: %w", strings.Join(args, " "), err)
	}
	return nil
}
