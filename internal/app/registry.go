package app

import (
	"sort"
	"sync"
	"time"

	"github.com/jose-valero/challonge-bracket-bot/internal/challonge"
)

// Tracked is one tournament the bot follows. Key is the rendered
// TournamentID, which is also what users pass to /untrack.
type Tracked struct {
	Key     string
	ID      challonge.TournamentID
	Name    string
	URL     string // full challonge page
	Game    string
	Players int
	AddedAt time.Time
}

var (
	trackMu    sync.RWMutex
	trackByKey = map[string]Tracked{} // key -> tournament
	matchOwner = map[uint64]string{}  // match id -> tournament key
)

func TrackPut(t Tracked) {
	trackMu.Lock()
	trackByKey[t.Key] = t
	trackMu.Unlock()
}

func TrackRemove(key string) bool {
	trackMu.Lock()
	_, ok := trackByKey[key]
	delete(trackByKey, key)
	for mid, owner := range matchOwner {
		if owner == key {
			delete(matchOwner, mid)
		}
	}
	trackMu.Unlock()
	return ok
}

func TrackGet(key string) (Tracked, bool) {
	trackMu.RLock()
	t, ok := trackByKey[key]
	trackMu.RUnlock()
	return t, ok
}

func TrackCount() int {
	trackMu.RLock()
	n := len(trackByKey)
	trackMu.RUnlock()
	return n
}

func TrackList() []Tracked {
	trackMu.RLock()
	out := make([]Tracked, 0, len(trackByKey))
	for _, t := range trackByKey {
		out = append(out, t)
	}
	trackMu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out
}

// MatchOwnerPut remembers which tournament a match belongs to, so component
// interactions can route a bare match id back to its tracked tournament.
func MatchOwnerPut(matchID uint64, key string) {
	trackMu.Lock()
	matchOwner[matchID] = key
	trackMu.Unlock()
}

func MatchOwner(matchID uint64) (string, bool) {
	trackMu.RLock()
	key, ok := matchOwner[matchID]
	trackMu.RUnlock()
	return key, ok
}
