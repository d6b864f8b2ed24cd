package mem

import (
	"testing"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

func TestCacheVersioning(t *testing.T) {
	c := New()
	games := []domain.Game{
		{Number: 1, Round: "Preliminary Round", Team1Code: "CAN", Team2Code: "FIN"},
	}
	v1 := Version(games)
	c.Put(1, v1, map[string]string{"A1": "CAN"})

	if got, ok := c.Get(1, v1); !ok || got["A1"] != "CAN" {
		t.Fatalf("Get = %v %v, want cached map", got, ok)
	}

	// Entering a score changes the version, the old map misses.
	s1, s2 := 3, 1
	games[0].Team1Score = &s1
	games[0].Team2Score = &s2
	games[0].Result = domain.ResultRegulation
	v2 := Version(games)
	if v1 == v2 {
		t.Fatal("version unchanged after score update")
	}
	if _, ok := c.Get(1, v2); ok {
		t.Fatal("stale entry served for new version")
	}

	c.Invalidate(1)
	if _, ok := c.Get(1, v1); ok {
		t.Fatal("entry survived invalidation")
	}
}

func TestVersionIgnoresOrderOfFields(t *testing.T) {
	a := []domain.Game{{Number: 57, Round: "Quarterfinals", Team1Code: "A1", Team2Code: "B2"}}
	b := []domain.Game{{Number: 57, Round: "Quarterfinals", Team1Code: "A1", Team2Code: "B2"}}
	if Version(a) != Version(b) {
		t.Fatal("identical snapshots hash differently")
	}
}
