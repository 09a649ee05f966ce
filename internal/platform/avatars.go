package platform

import (
	"file-storage-server/config"
	"fmt"
	"net/url"
	"strings"
)

type avatars struct {
	cfg config.PlatformConfig
}

// GetInitials : ссылка на аватар; если задан плейсхолдер, используется он
func (a *avatars) GetInitials(name string) string {
	if a.cfg.AvatarPlaceholderURL != "" {
		return a.cfg.AvatarPlaceholderURL
	}

	return fmt.Sprintf("%s/avatars/initials?name=%s&project=%s",
		strings.TrimRight(a.cfg.Endpoint, "/"),
		url.QueryEscape(name),
		url.QueryEscape(a.cfg.ProjectID),
	)
}
