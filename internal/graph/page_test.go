package graph

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderPage_FullRecipe(t *testing.T) {
	r := model.NewRecipe(model.ParseModeStructured)
	r.Title = "Spaghetti Napoli"
	r.Servings = "4"
	r.Time = "30 min"
	r.Difficulty = "einfach"
	r.Ingredients = []string{"200 g Spaghetti", "Tomatensauce"}
	r.Steps = []string{"Nudeln kochen", "Sauce erhitzen"}
	r.Images = []string{"https://example.com/napoli.jpg"}

	out := RenderPage(r)

	assert.Contains(t, out, "<title>Spaghetti Napoli</title>")
	assert.Contains(t, out, "Portionen: 4 • Zeit: 30 min • Schwierigkeit: einfach")
	assert.Contains(t, out, "<h2>Zutaten</h2>")
	assert.Contains(t, out, "<li>200 g Spaghetti</li>")
	assert.Contains(t, out, "<h2>Zubereitung</h2>")
	assert.Contains(t, out, "<li>Nudeln kochen</li>")
	assert.Contains(t, out, `<img src="https://example.com/napoli.jpg"`)
}

func TestRenderPage_EscapesMarkup(t *testing.T) {
	r := model.NewRecipe(model.ParseModeFallback)
	r.Title = `Süß & "sauer" <Wok>`
	r.Ingredients = []string{"1 EL Sojasauce <dunkel>"}

	out := RenderPage(r)

	assert.Contains(t, out, "Süß &amp; &#34;sauer&#34; &lt;Wok&gt;")
	assert.Contains(t, out, "1 EL Sojasauce &lt;dunkel&gt;")
	assert.NotContains(t, out, "<Wok>")
}

func TestRenderPage_PrefersDisplayTitle(t *testing.T) {
	r := model.NewRecipe(model.ParseModeStructured)
	r.Title = "Lasagne"
	r.DisplayTitle = "[Vegetarisch] Lasagne"

	out := RenderPage(r)
	assert.Contains(t, out, "<title>[Vegetarisch] Lasagne</title>")
}

func TestRenderPage_EmptyRecipe(t *testing.T) {
	out := RenderPage(model.NewRecipe(model.ParseModeFallback))

	assert.Contains(t, out, "<title>(ohne Titel)</title>")
	assert.NotContains(t, out, "<h2>Zutaten</h2>")
	assert.NotContains(t, out, "<h2>Zubereitung</h2>")
	assert.NotContains(t, out, "<img")
}
