package ui

import (
	"fmt"
	"strings"
	"time"
)

func bracketTitle(name, state string) string {
	badge := "⏳"
	switch state {
	case "underway":
		badge = "🎮 En juego"
	case "complete":
		badge = "🏁 Finalizado"
	}
	return fmt.Sprintf("Bracket — %s - %s", safe(name), badge)
}

// humanize the time of match
func humanSince(t time.Time) string {
	if t.IsZero() {
		return "desconocido"
	}
	d := time.Since(t)
	if d < time.Minute {
		return "hace segundos"
	}
	if d < time.Hour {
		return fmt.Sprintf("hace %d min", int(d.Minutes()))
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("hace %dh", h)
	}
	return fmt.Sprintf("hace %dh %dm", h, m)
}

// fallback to falsy data
func safe(s string) string {
	t := strings.TrimSpace(s)
	if t == "" || t == "-" {
		return "—"
	}
	return t
}
