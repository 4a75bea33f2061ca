// internal/adapters/discord/policy.go
// Minimal privilege checks based on role-id env lists or Administrator
// permission. Admins manage tracking, reporters may submit scores.

package discord

import (
	"os"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

var (
	rolesOnce       sync.Once
	adminRoleID     = map[string]struct{}{}
	reporterRoleIDs = map[string]struct{}{}
)

func loadRolesFromEnv() {
	for id := range splitIDs(os.Getenv("ADMIN_ROLE_IDS")) {
		adminRoleID[id] = struct{}{}
	}
	for id := range splitIDs(os.Getenv("REPORTER_ROLE_IDS")) {
		reporterRoleIDs[id] = struct{}{}
	}
}

func splitIDs(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			out[id] = struct{}{}
		}
	}
	return out
}

// IsPrivileged returns true if the member has Administrator or one of ADMIN_ROLE_IDS.
func IsPrivileged(i *discordgo.InteractionCreate) bool {
	rolesOnce.Do(loadRolesFromEnv)
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	for _, r := range i.Member.Roles {
		if _, ok := adminRoleID[r]; ok {
			return true
		}
	}
	return false
}

// IsReporter returns true for admins and for members carrying one of
// REPORTER_ROLE_IDS. With no reporter roles configured, anyone may report.
func IsReporter(i *discordgo.InteractionCreate) bool {
	rolesOnce.Do(loadRolesFromEnv)
	if IsPrivileged(i) {
		return true
	}
	if len(reporterRoleIDs) == 0 {
		return true
	}
	if i.Member == nil {
		return false
	}
	for _, r := range i.Member.Roles {
		if _, ok := reporterRoleIDs[r]; ok {
			return true
		}
	}
	return false
}

// RequirePrivileged replies ephemeral and returns false if not privileged.
func RequirePrivileged(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if IsPrivileged(i) {
		return true
	}
	_ = SendEphemeral(s, i, "⛔ You don't have permission for this action.")
	return false
}

// RequireReporter replies ephemeral and returns false if reporting is not allowed.
func RequireReporter(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if IsReporter(i) {
		return true
	}
	_ = SendEphemeral(s, i, "⛔ You are not allowed to report scores.")
	return false
}
