package mem

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// Cache keeps the built placeholder map of each championship year,
// tagged with a version hash of the underlying game data. A stale
// version misses, the map is never mutated in place.
type Cache struct {
	mu      sync.RWMutex
	entries map[int]entry
}

type entry struct {
	version uint64
	teamMap map[string]string
}

func New() *Cache {
	return &Cache{
		entries: make(map[int]entry),
	}
}

func (c *Cache) Get(yearID int, version uint64) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[yearID]
	if !ok || e.version != version {
		return nil, false
	}
	return e.teamMap, true
}

func (c *Cache) Put(yearID int, version uint64, teamMap map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[yearID] = entry{version: version, teamMap: teamMap}
}

func (c *Cache) Invalidate(yearID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, yearID)
}

// Version hashes everything the placeholder map depends on: game
// numbers, participants, scores and result types.
func Version(games []domain.Game) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, g := range games {
		binary.LittleEndian.PutUint64(buf[:], uint64(g.Number))
		_, _ = h.Write(buf[:])
		_, _ = h.WriteString(g.Round)
		_, _ = h.WriteString(g.Team1Code)
		_, _ = h.WriteString(g.Team2Code)
		if g.HasResult() {
			_, _ = h.WriteString(strconv.Itoa(*g.Team1Score))
			_, _ = h.WriteString(":")
			_, _ = h.WriteString(strconv.Itoa(*g.Team2Score))
			_, _ = h.WriteString(string(g.Result))
		}
	}
	return h.Sum64()
}
