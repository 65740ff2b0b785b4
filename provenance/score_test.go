package provenance

import (
	"strings"
	"testing"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/utils"
	"github.com/stretchr/testify/assert"
)

// fullDeclaration discloses everything and reaches the maximum score.
func fullDeclaration() models.Declaration {
	return models.Declaration{
		ID:            "decl-full",
		Title:         "Night Drive",
		ArtistName:    "Mira Vale",
		ArtistWallet:  utils.Ptr("0xabc"),
		DAWs:          "Ableton Live",
		Plugins:       "Serum, Valhalla VintageVerb, FabFilter Pro-Q 3",
		AIModels:      "Suno v4",
		AIComposition: utils.Ptr(0),
		AIArrangement: utils.Ptr(20),
		AIProduction:  utils.Ptr(40),
		AIMixing:      utils.Ptr(60),
		AIMastering:   utils.Ptr(80),
		Methodology:   utils.Ptr(strings.Repeat("m", 250)),
		IPFSCID:       "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		SHA256:        "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		Contributors: []models.Contributor{
			{Name: "Jun", Role: "vocals", Split: 30},
			{Name: "Ola", Role: "mixing", Split: 20},
		},
		TrainingRights: true,
		RemixRights:    true,
	}
}

func TestScore(t *testing.T) {
	t.Run("should only award the base score for an empty declaration", func(t *testing.T) {
		d := models.Declaration{ArtistName: "anon"}
		assert.Equal(t, 30, Score(d))
	})

	t.Run("should reach the maximum score if everything is disclosed", func(t *testing.T) {
		assert.Equal(t, MaxScore, Score(fullDeclaration()))
	})

	t.Run("should award disclosure of 0 percent the same as any other value", func(t *testing.T) {
		zero := models.Declaration{AIComposition: utils.Ptr(0)}
		high := models.Declaration{AIComposition: utils.Ptr(100)}
		assert.Equal(t, 34, Score(zero))
		assert.Equal(t, Score(zero), Score(high))
	})

	t.Run("should cap the creative stack at 15 points with 5 distinct tools", func(t *testing.T) {
		d := models.Declaration{DAWs: "Logic Pro, Ableton Live", Plugins: "Serum, Massive", AIModels: "Udio"}
		b := CalculateScoreBreakdown(d)
		assert.Equal(t, 15, b.Stack)
		assert.Equal(t, 45, b.Total)

		d.Plugins += ", Kontakt"
		assert.Equal(t, 15, CalculateScoreBreakdown(d).Stack)
	})

	t.Run("should count duplicated tools only once", func(t *testing.T) {
		d := models.Declaration{DAWs: "Ableton Live, ableton live ", Plugins: ",,Serum,", AIModels: "SERUM"}
		assert.Equal(t, 2, ToolCount(d))
		assert.Equal(t, 6, CalculateScoreBreakdown(d).Stack)
	})

	t.Run("should scale the methodology points with the length", func(t *testing.T) {
		cases := []struct {
			length   int
			expected int
		}{
			{0, 0},
			{100, 8},
			{200, 15},
			{1000, 15},
		}
		for _, c := range cases {
			d := models.Declaration{Methodology: utils.Ptr(strings.Repeat("a", c.length))}
			assert.Equal(t, c.expected, CalculateScoreBreakdown(d).Methodology, "length %d", c.length)
		}
	})

	t.Run("should count characters and not bytes in the methodology", func(t *testing.T) {
		d := models.Declaration{Methodology: utils.Ptr(strings.Repeat("ä", 200))}
		assert.Equal(t, 15, CalculateScoreBreakdown(d).Methodology)
	})

	t.Run("should ignore blank cid and hash", func(t *testing.T) {
		d := models.Declaration{IPFSCID: "  ", SHA256: "\t"}
		assert.Equal(t, 0, CalculateScoreBreakdown(d).Provenance)

		d.IPFSCID = "bafy"
		assert.Equal(t, 5, CalculateScoreBreakdown(d).Provenance)
	})

	t.Run("should be monotonic in every disclosure and never exceed 100", func(t *testing.T) {
		steps := []func(d *models.Declaration){
			func(d *models.Declaration) { d.AIComposition = utils.Ptr(10) },
			func(d *models.Declaration) { d.AIArrangement = utils.Ptr(0) },
			func(d *models.Declaration) { d.AIProduction = utils.Ptr(50) },
			func(d *models.Declaration) { d.AIMixing = utils.Ptr(100) },
			func(d *models.Declaration) { d.AIMastering = utils.Ptr(5) },
			func(d *models.Declaration) { d.Methodology = utils.Ptr(strings.Repeat("x", 50)) },
			func(d *models.Declaration) { d.Methodology = utils.Ptr(strings.Repeat("x", 150)) },
			func(d *models.Declaration) { d.Methodology = utils.Ptr(strings.Repeat("x", 300)) },
			func(d *models.Declaration) { d.DAWs = "Bitwig" },
			func(d *models.Declaration) { d.Plugins = "Diva, Serum" },
			func(d *models.Declaration) { d.AIModels = "Suno, Udio, Stable Audio" },
			func(d *models.Declaration) { d.IPFSCID = "bafy" },
			func(d *models.Declaration) { d.SHA256 = "abc" },
			func(d *models.Declaration) { d.Contributors = []models.Contributor{{Name: "a", Split: 10}} },
		}

		d := models.Declaration{}
		previous := Score(d)
		for i, step := range steps {
			step(&d)
			current := Score(d)
			assert.GreaterOrEqual(t, current, previous, "step %d", i)
			assert.LessOrEqual(t, current, MaxScore)
			previous = current
		}
		assert.Equal(t, MaxScore, previous)
	})

	t.Run("should sum the breakdown to the total", func(t *testing.T) {
		b := CalculateScoreBreakdown(fullDeclaration())
		assert.Equal(t, b.Base+b.Phases+b.Methodology+b.Stack+b.Provenance+b.Collaboration, b.Total)
	})
}

func TestAverageAI(t *testing.T) {
	t.Run("should treat undisclosed phases as 0", func(t *testing.T) {
		d := models.Declaration{AIComposition: utils.Ptr(50), AIMixing: utils.Ptr(25)}
		assert.InDelta(t, 15.0, AverageAI(d), 0.0001)
	})

	t.Run("should return the mean of all five phases", func(t *testing.T) {
		assert.InDelta(t, 40.0, AverageAI(fullDeclaration()), 0.0001)
	})
}

func TestCreativeStack(t *testing.T) {
	t.Run("should keep the first spelling in list order", func(t *testing.T) {
		d := models.Declaration{DAWs: "FL Studio", Plugins: "fl studio, Serum", AIModels: "serum, Suno"}
		assert.Equal(t, []string{"FL Studio", "Serum", "Suno"}, CreativeStack(d))
	})

	t.Run("should return an empty stack if nothing is declared", func(t *testing.T) {
		assert.Empty(t, CreativeStack(models.Declaration{}))
		assert.Equal(t, 0, ToolCount(models.Declaration{}))
	})
}
