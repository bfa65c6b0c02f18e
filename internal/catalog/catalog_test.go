package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.Incentivos, 3)
	assert.Len(t, c.Noticias, 3)
	assert.Len(t, c.Educacion, 3)
	assert.Len(t, c.Ranking, 5)
	assert.NotEmpty(t, c.Terminos.Secciones)
	assert.Len(t, c.Notificaciones, 2)
}

func TestLoad_IncentivosAreOrderedByCost(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.Len(t, c.Incentivos, 3)
	assert.Equal(t, 50, c.Incentivos[0].PuntosRequeridos)
	assert.Equal(t, 100, c.Incentivos[1].PuntosRequeridos)
	assert.Equal(t, 200, c.Incentivos[2].PuntosRequeridos)
}

func TestLoad_RankingIsDescendingWithContiguousPositions(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	for i, entry := range c.Ranking {
		assert.Equal(t, i+1, entry.Posicion)
		if i > 0 {
			assert.GreaterOrEqual(t, c.Ranking[i-1].Puntos, entry.Puntos)
		}
	}
}

func TestLoad_OverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	override := `version: 7
incentivos:
  - id: "99"
    nombre: "Premio local"
    descripcion: "Solo para la prueba"
    puntos_requeridos: 10
    categoria: "prueba"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "incentivos.yaml"), []byte(override), 0o600))

	c, err := Load(dir)
	require.NoError(t, err)

	// Overridden dataset replaced, the rest still comes from the embed.
	require.Len(t, c.Incentivos, 1)
	assert.Equal(t, "99", c.Incentivos[0].ID)
	assert.Equal(t, 7, c.Version)
	assert.Len(t, c.Noticias, 3)
	assert.Len(t, c.Ranking, 5)
}

func TestLoad_MalformedOverrideFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noticias.yaml"), []byte("noticias: {not: [valid"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestRenderNotificaciones(t *testing.T) {
	c := &Catalog{
		Notificaciones: []NotificacionTemplate{
			{ID: 1, Mensaje: "Tu reporte fue publicado", Hace: "2h"},
			{ID: 2, Mensaje: "Ganaste 20 puntos", Hace: "24h", Leida: true},
		},
	}

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	out := c.RenderNotificaciones(now)

	require.Len(t, out, 2)
	assert.Equal(t, now.Add(-2*time.Hour), out[0].Fecha)
	assert.False(t, out[0].Leida)
	assert.Equal(t, now.Add(-24*time.Hour), out[1].Fecha)
	assert.True(t, out[1].Leida)
}

func TestRenderNotificaciones_BadOffsetFallsBackToNow(t *testing.T) {
	c := &Catalog{
		Notificaciones: []NotificacionTemplate{{ID: 1, Mensaje: "m", Hace: "hace rato"}},
	}

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	out := c.RenderNotificaciones(now)

	require.Len(t, out, 1)
	assert.Equal(t, now, out[0].Fecha)
}
