// Package browser hands listing links to the system browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrUnsafeLink is returned for links that are not absolute http(s) URLs.
var ErrUnsafeLink = errors.New("only http and https links can be opened")

// Validate checks that link is an absolute http or https URL with a host.
func Validate(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrUnsafeLink, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrUnsafeLink)
	}
	return nil
}

// Command returns the launcher and arguments used on goos.
func Command(goos, link string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		// rundll32 avoids cmd /c start and its shell parsing
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// Open validates link and starts the platform launcher without waiting for it.
func Open(link string) error {
	if err := Validate(link); err != nil {
		return err
	}
	name, args := Command(runtime.GOOS, link)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}
