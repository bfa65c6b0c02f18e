package domain

import "time"

// EstadoActivo is the only lifecycle state the standard submission path
// produces; no endpoint transitions it.
const EstadoActivo = "activo"

// PointsPerReport is the fixed award applied to the submitter's balance,
// together with a +1 on the submitted-report count, per accepted report.
const PointsPerReport = 20

// Report is a geolocated environmental report. UsuarioID is a denormalized
// string copy of the owning user's identifier, not a live relational
// constraint.
type Report struct {
	ID          string
	Descripcion string
	FotoBase64  string
	Latitud     float64
	Longitud    float64
	Direccion   string
	UsuarioID   string
	Fecha       time.Time
	Estado      string
	Publico     bool
}

// SubmitRequest carries the fields accepted at submission.
type SubmitRequest struct {
	Descripcion string
	FotoBase64  string
	Latitud     float64
	Longitud    float64
	Direccion   string
	UsuarioID   string
}

// SubmitResult is returned to the caller. PuntosGanados always reports the
// fixed award, whether or not the submitter's counters could be updated.
type SubmitResult struct {
	ReporteID     string
	PuntosGanados int
}

// PublicReportView is the community-feed projection: full report, photo
// included, owner name attached.
type PublicReportView struct {
	ID            string    `json:"id"`
	Descripcion   string    `json:"descripcion"`
	FotoBase64    string    `json:"foto_base64"`
	Latitud       float64   `json:"latitud"`
	Longitud      float64   `json:"longitud"`
	Direccion     string    `json:"direccion,omitempty"`
	UsuarioID     string    `json:"usuario_id"`
	UsuarioNombre string    `json:"usuario_nombre"`
	Fecha         time.Time `json:"fecha"`
	Estado        string    `json:"estado"`
	Publico       bool      `json:"publico"`
}

// MapReportView is the map-marker projection; the photo is deliberately
// excluded to keep the payload small, not hidden for security (it stays
// reachable through the public feed).
type MapReportView struct {
	ID            string    `json:"id"`
	Latitud       float64   `json:"latitud"`
	Longitud      float64   `json:"longitud"`
	Descripcion   string    `json:"descripcion"`
	Fecha         time.Time `json:"fecha"`
	Direccion     string    `json:"direccion,omitempty"`
	UsuarioID     string    `json:"usuario_id"`
	UsuarioNombre string    `json:"usuario_nombre"`
}

// OwnedReportView is the owner-scoped listing entry; internal identifiers
// are omitted.
type OwnedReportView struct {
	Descripcion string    `json:"descripcion"`
	FotoBase64  string    `json:"foto_base64"`
	Latitud     float64   `json:"latitud"`
	Longitud    float64   `json:"longitud"`
	Direccion   string    `json:"direccion,omitempty"`
	UsuarioID   string    `json:"usuario_id"`
	Fecha       time.Time `json:"fecha"`
	Estado      string    `json:"estado"`
	Publico     bool      `json:"publico"`
}
