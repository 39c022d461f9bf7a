package entity

// Servicio entrada de primer nivel del catálogo (referencia, solo lectura).
type Servicio struct {
	ID     int
	Nombre string
}

// Subservicio entrada de segundo nivel, siempre colgada de un Servicio.
type Subservicio struct {
	ID         int
	IDServicio int
	Nombre     string
}

// Establecimiento punto de emisión para facturación electrónica.
type Establecimiento struct {
	ID                 int
	RazonSocial        string
	CodEstablecimiento string
	CodPuntoEmision    string
}

// Etiqueta texto a mostrar en el selector de establecimientos.
func (e Establecimiento) Etiqueta() string {
	return e.RazonSocial + " " + e.CodEstablecimiento + "-" + e.CodPuntoEmision
}
