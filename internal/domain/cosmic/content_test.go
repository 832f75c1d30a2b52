//go:build unit

package cosmic_test

import (
	"testing"

	"cosmic-courier/internal/domain/cosmic"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("moon phase with sign decoration", func(t *testing.T) {
		e := cosmic.Event{Name: "Pink Moon", Type: cosmic.EventMoon, Priority: 10}

		n := cosmic.Classify(e, "Scorpio")

		assert.Equal(t, "Pink Moon", n.Title)
		assert.Equal(t, "Moon in Scorpio: Peak illumination brings clarity to accomplishments and reveals areas ready for release and transformation.", n.Body)
		assert.Equal(t, "cosmic-moon", n.Tag)
		assert.Equal(t, "Pink Moon", n.Data["eventName"])
		assert.Equal(t, 10, n.Data["priority"])
	})

	t.Run("moon phase without sign", func(t *testing.T) {
		e := cosmic.Event{Name: "New Moon", Type: cosmic.EventMoon, Priority: 10}

		n := cosmic.Classify(e, "")

		assert.Equal(t, "A powerful reset point for manifestation and new beginnings. Set intentions aligned with your deeper purpose.", n.Body)
	})

	t.Run("aspect title and body are built from the planets", func(t *testing.T) {
		e := cosmic.Event{
			Name:       "Jupiter-Saturn conjunction",
			Type:       cosmic.EventAspect,
			Priority:   9,
			PlanetA:    cosmic.Jupiter,
			PlanetB:    cosmic.Saturn,
			AspectType: cosmic.Conjunction,
		}

		n := cosmic.Classify(e, "")

		assert.Equal(t, "Jupiter-Saturn Conjunction", n.Title)
		assert.Equal(t, "Jupiter and Saturn unite their energies, creating powerful cosmic influence", n.Body)
		assert.Equal(t, "cosmic-aspect", n.Tag)
	})

	t.Run("each aspect type has its own verb", func(t *testing.T) {
		verbs := map[cosmic.AspectType]string{
			cosmic.Trine:      "flow harmoniously together",
			cosmic.Square:     "create dynamic tension",
			cosmic.Sextile:    "offer cooperative opportunities",
			cosmic.Opposition: "seek balance between",
		}
		for aspectType, verb := range verbs {
			e := cosmic.Event{
				Type:       cosmic.EventAspect,
				PlanetA:    cosmic.Sun,
				PlanetB:    cosmic.Neptune,
				AspectType: aspectType,
			}
			assert.Contains(t, cosmic.Classify(e, "").Body, verb)
		}
	})

	t.Run("ingress", func(t *testing.T) {
		e := cosmic.Event{
			Name:     "Mars enters Taurus",
			Type:     cosmic.EventIngress,
			Priority: 4,
			Planet:   cosmic.Mars,
			Sign:     "Taurus",
		}

		n := cosmic.Classify(e, "")

		assert.Equal(t, "Mars Enters Taurus", n.Title)
		assert.Equal(t, "This amplifies focus on Taurus themes and energies", n.Body)
	})

	t.Run("seasonal equinox and solstice phrasing differ", func(t *testing.T) {
		equinox := cosmic.Classify(cosmic.Event{Name: "Autumn Equinox", Type: cosmic.EventSeasonal, Priority: 8}, "")
		solstice := cosmic.Classify(cosmic.Event{Name: "Winter Solstice", Type: cosmic.EventSeasonal, Priority: 8}, "")

		assert.Equal(t, "Autumn Equinox", equinox.Title)
		assert.Contains(t, equinox.Body, "Equal day and night")
		assert.Contains(t, solstice.Body, "turning point")
	})

	t.Run("retrograde meaning per planet", func(t *testing.T) {
		e := cosmic.Event{
			Name:     "Mercury is retrograde",
			Type:     cosmic.EventRetrograde,
			Priority: 6,
			Planet:   cosmic.Mercury,
			Sign:     "Gemini",
		}

		n := cosmic.Classify(e, "")

		assert.Equal(t, "Mercury Retrograde", n.Title)
		assert.Equal(t, "This invites reflection on communication, technology, and mental patterns in Gemini", n.Body)
	})

	t.Run("general event renders its energy", func(t *testing.T) {
		e := cosmic.Event{
			Name:     "Cosmic Flow",
			Type:     cosmic.EventGeneral,
			Priority: 1,
			Energy:   "Steady cosmic currents support daily rhythms and gentle progress",
		}

		n := cosmic.Classify(e, "")

		assert.Equal(t, "Cosmic Flow", n.Title)
		assert.Equal(t, e.Energy, n.Body)
		assert.Equal(t, "cosmic-general", n.Tag)
	})

	t.Run("zero event still renders something sendable", func(t *testing.T) {
		n := cosmic.Classify(cosmic.Event{}, "")

		assert.Equal(t, "Cosmic Event", n.Title)
		assert.NotEmpty(t, n.Body)
	})
}

func TestSignDescription(t *testing.T) {
	assert.Equal(t, "transforming and intense", cosmic.SignDescription("Scorpio"))
	assert.Equal(t, "cosmic", cosmic.SignDescription("Ophiuchus"))
}
