// Package catalog serves the fixed reference data of the application:
// incentives, news, education content, ranking, terms and notification
// stubs. The data is versioned configuration, not logic: defaults are
// embedded in the binary and any file can be overridden from a directory
// supplied at startup.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaults embed.FS

type Incentivo struct {
	ID               string `yaml:"id" json:"id"`
	Nombre           string `yaml:"nombre" json:"nombre"`
	Descripcion      string `yaml:"descripcion" json:"descripcion"`
	PuntosRequeridos int    `yaml:"puntos_requeridos" json:"puntos_requeridos"`
	Categoria        string `yaml:"categoria" json:"categoria"`
}

type Noticia struct {
	ID        int    `yaml:"id" json:"id"`
	Titulo    string `yaml:"titulo" json:"titulo"`
	Contenido string `yaml:"contenido" json:"contenido"`
	Fecha     string `yaml:"fecha" json:"fecha"`
	Categoria string `yaml:"categoria" json:"categoria"`
}

type Contenido struct {
	ID        int    `yaml:"id" json:"id"`
	Titulo    string `yaml:"titulo" json:"titulo"`
	Tipo      string `yaml:"tipo" json:"tipo"`
	Contenido string `yaml:"contenido" json:"contenido"`
	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
	Duracion  string `yaml:"duracion,omitempty" json:"duracion,omitempty"`
	Categoria string `yaml:"categoria" json:"categoria"`
}

type RankingEntry struct {
	Posicion int    `yaml:"posicion" json:"posicion"`
	Nombre   string `yaml:"nombre" json:"nombre"`
	Puntos   int    `yaml:"puntos" json:"puntos"`
}

type SeccionTerminos struct {
	Titulo    string `yaml:"titulo" json:"titulo"`
	Contenido string `yaml:"contenido" json:"contenido"`
}

type Terminos struct {
	Titulo      string            `yaml:"titulo" json:"titulo"`
	Actualizado string            `yaml:"actualizado" json:"actualizado"`
	Secciones   []SeccionTerminos `yaml:"secciones" json:"secciones"`
}

// NotificacionTemplate is a stub notification; Hace is an offset into the
// past, rendered against the current time on each request.
type NotificacionTemplate struct {
	ID      int    `yaml:"id" json:"id"`
	Mensaje string `yaml:"mensaje" json:"mensaje"`
	Hace    string `yaml:"hace" json:"-"`
	Leida   bool   `yaml:"leida" json:"leida"`
}

type Notificacion struct {
	ID      int       `json:"id"`
	Mensaje string    `json:"mensaje"`
	Fecha   time.Time `json:"fecha"`
	Leida   bool      `json:"leida"`
}

// Catalog holds every fixed dataset, loaded once at startup.
type Catalog struct {
	Version        int
	Incentivos     []Incentivo
	Noticias       []Noticia
	Educacion      []Contenido
	Ranking        []RankingEntry
	Terminos       Terminos
	Notificaciones []NotificacionTemplate
}

type catalogFile struct {
	Version        int                    `yaml:"version"`
	Incentivos     []Incentivo            `yaml:"incentivos"`
	Noticias       []Noticia              `yaml:"noticias"`
	Contenido      []Contenido            `yaml:"contenido"`
	Ranking        []RankingEntry         `yaml:"ranking"`
	Terminos       *Terminos              `yaml:"terminos"`
	Notificaciones []NotificacionTemplate `yaml:"notificaciones"`
}

// Load reads the embedded defaults, replacing any dataset for which a file
// of the same name exists under dir. An empty dir loads defaults only.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}
	names := []string{
		"incentivos.yaml",
		"noticias.yaml",
		"educacion.yaml",
		"ranking.yaml",
		"terminos.yaml",
		"notificaciones.yaml",
	}

	for _, name := range names {
		data, err := readDataset(dir, name)
		if err != nil {
			return nil, err
		}

		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		if f.Version > c.Version {
			c.Version = f.Version
		}
		if f.Incentivos != nil {
			c.Incentivos = f.Incentivos
		}
		if f.Noticias != nil {
			c.Noticias = f.Noticias
		}
		if f.Contenido != nil {
			c.Educacion = f.Contenido
		}
		if f.Ranking != nil {
			c.Ranking = f.Ranking
		}
		if f.Terminos != nil {
			c.Terminos = *f.Terminos
		}
		if f.Notificaciones != nil {
			c.Notificaciones = f.Notificaciones
		}
	}

	return c, nil
}

func readDataset(dir, name string) ([]byte, error) {
	if dir != "" {
		override := filepath.Join(dir, name)
		if data, err := os.ReadFile(override); err == nil {
			return data, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", override, err)
		}
	}

	data, err := defaults.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, nil
}

// RenderNotificaciones materializes the notification stubs against now.
func (c *Catalog) RenderNotificaciones(now time.Time) []Notificacion {
	out := make([]Notificacion, 0, len(c.Notificaciones))
	for _, n := range c.Notificaciones {
		fecha := now
		if d, err := time.ParseDuration(n.Hace); err == nil {
			fecha = now.Add(-d)
		}
		out = append(out, Notificacion{
			ID:      n.ID,
			Mensaje: n.Mensaje,
			Fecha:   fecha,
			Leida:   n.Leida,
		})
	}
	return out
}
