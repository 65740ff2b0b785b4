package provenance

import (
	"strings"
	"testing"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/utils"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBadges(t *testing.T) {
	t.Run("should only award DECLARED for an empty declaration", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared}, DeriveBadges(models.Declaration{}))
	})

	t.Run("should award every badge in registry order", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared, BadgeDeepStack, BadgeProcessDoc, BadgeMultiplayer, BadgeFullLineage}, DeriveBadges(fullDeclaration()))
	})

	t.Run("should award DEEP_STACK starting with 5 distinct tools", func(t *testing.T) {
		d := models.Declaration{DAWs: "Reaper", Plugins: "Serum, Diva, reaper", AIModels: "Suno"}
		assert.NotContains(t, DeriveBadges(d), BadgeDeepStack)

		d.AIModels = "Suno, Udio"
		assert.Contains(t, DeriveBadges(d), BadgeDeepStack)
	})

	t.Run("should require more than 200 characters for PROCESS_DOC", func(t *testing.T) {
		d := models.Declaration{Methodology: utils.Ptr(strings.Repeat("a", 200))}
		assert.NotContains(t, DeriveBadges(d), BadgeProcessDoc)

		d.Methodology = utils.Ptr(strings.Repeat("a", 201))
		assert.Contains(t, DeriveBadges(d), BadgeProcessDoc)
	})

	t.Run("should require cid and hash for FULL_LINEAGE", func(t *testing.T) {
		d := models.Declaration{IPFSCID: "bafy"}
		assert.NotContains(t, DeriveBadges(d), BadgeFullLineage)

		d.SHA256 = "abc"
		assert.Contains(t, DeriveBadges(d), BadgeFullLineage)
	})

	t.Run("should award MULTIPLAYER if there is at least one contributor", func(t *testing.T) {
		d := models.Declaration{Contributors: []models.Contributor{{Name: "a"}}}
		assert.Equal(t, []BadgeKey{BadgeDeclared, BadgeMultiplayer}, DeriveBadges(d))
	})
}

func TestParseBadges(t *testing.T) {
	t.Run("should trim keys and keep the stored order", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeMultiplayer, BadgeDeclared}, ParseBadges(" MULTIPLAYER , DECLARED"))
	})

	t.Run("should drop legacy and unknown keys", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared}, ParseBadges("HUMAN_CRAFTED,DECLARED,AI_ASSISTED,whatever"))
	})

	t.Run("should drop duplicates", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeepStack}, ParseBadges("DEEP_STACK,DEEP_STACK"))
	})

	t.Run("should return an empty list for an empty string", func(t *testing.T) {
		assert.Empty(t, ParseBadges(""))
	})

	t.Run("should be the inverse of JoinBadges", func(t *testing.T) {
		keys := DeriveBadges(fullDeclaration())
		assert.Equal(t, keys, ParseBadges(JoinBadges(keys)))
	})
}

func TestResolveBadges(t *testing.T) {
	d := models.Declaration{Badge: "DECLARED,MULTIPLAYER"}

	t.Run("should prefer the stored badges", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared, BadgeMultiplayer}, ResolveBadges(d, false))
	})

	t.Run("should derive the badges if fresh is requested", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared}, ResolveBadges(d, true))
	})

	t.Run("should derive the badges if nothing is stored", func(t *testing.T) {
		assert.Equal(t, []BadgeKey{BadgeDeclared}, ResolveBadges(models.Declaration{}, false))
	})
}

func TestBadgeRegistry(t *testing.T) {
	t.Run("should not leak the registry", func(t *testing.T) {
		defs := BadgeDefinitions()
		defs[0].Label = "changed"

		b, ok := LookupBadge(BadgeDeclared)
		assert.True(t, ok)
		assert.Equal(t, "Declared", b.Label)
		assert.Equal(t, "Declared", BadgeDefinitions()[0].Label)
	})

	t.Run("should not find unknown keys", func(t *testing.T) {
		_, ok := LookupBadge("HUMAN_CRAFTED")
		assert.False(t, ok)
	})

	t.Run("should list the gallery filters starting with all", func(t *testing.T) {
		filters := GalleryFilters()
		assert.Len(t, filters, 4)
		assert.Equal(t, "all", filters[0].Key)
	})
}

func TestIsStale(t *testing.T) {
	d := fullDeclaration()
	d.TransparencyScore = Score(d)
	d.Badge = JoinBadges(DeriveBadges(d))
	assert.False(t, IsStale(d))

	d.Contributors = nil
	assert.True(t, IsStale(d))

	// legacy records scored with the old formula
	legacy := models.Declaration{TransparencyScore: 30, Badge: "HUMAN_CRAFTED"}
	assert.True(t, IsStale(legacy))
}
