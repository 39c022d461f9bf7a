// Package identificacion orquesta la verificación de series de un vehículo:
// consulta autoritativa a la ANT con fallback manual, evidencia fotográfica
// por slots y un commit en dos fases (guardar parcial, finalizar terminal).
package identificacion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
	"github.com/pqautoexpert/suite360-movil/pkg/logger"
)

// Estado fase del workflow de un caso.
type Estado string

const (
	EstadoCargando    Estado = "cargando"
	EstadoEdicion     Estado = "edicion"
	EstadoFinalizando Estado = "finalizando"
	EstadoFinalizada  Estado = "finalizada"
)

// OpcionPostFinalizar acción ofrecida tras finalizar el caso.
type OpcionPostFinalizar string

const (
	OpcionVerDocumento OpcionPostFinalizar = "ver_documento"
	OpcionVolverALista OpcionPostFinalizar = "volver_a_lista"
)

// API puerto hacia los endpoints de identificación.
type API interface {
	ContactoCaso(ctx context.Context, idOrden int) (*entity.Persona, error)
	TraerCaso(ctx context.Context, idOrden int) (*dto.CasoResponse, error)
	ConsultarANT(ctx context.Context, placa string) (*dto.ConsultaANTResponse, error)
	GuardarCaso(ctx context.Context, idOrden int, in dto.GuardarCasoRequest) error
	FinalizarCaso(ctx context.Context, idOrden int, conclusiones string) error
	SubirFoto(ctx context.Context, idOrden int, tipo entity.TipoFoto, nombre string, contenido io.Reader, descripcion string) error
	GuardarDescripcionFoto(ctx context.Context, idFoto int, descripcion string) error
	URLPDF(idOrden int) string
}

// Workflow máquina de estados de un caso: cargando → edicion → (guardar)* →
// finalizando → finalizada. El caso es un borrador-valor que se reemplaza
// completo en cada edición, nunca se muta campo a campo in situ.
type Workflow struct {
	api API
	log *logger.Logger

	idOrden int
	estado  Estado
	caso    entity.CasoIdentificacion
}

// NewWorkflow construye el workflow de un caso; nace en estado cargando.
func NewWorkflow(api API, log *logger.Logger, idOrden int) *Workflow {
	return &Workflow{
		api:     api,
		log:     log,
		idOrden: idOrden,
		estado:  EstadoCargando,
		caso:    entity.CasoIdentificacion{IDOrden: idOrden},
	}
}

// Estado fase actual del workflow.
func (w *Workflow) Estado() Estado { return w.estado }

// Caso copia del borrador vigente.
func (w *Workflow) Caso() entity.CasoIdentificacion { return w.caso }

// Cargar trae el contacto del ticket y el caso guardado. Un fallo deja el
// workflow en cargando: pantalla detenida, reintento manual.
func (w *Workflow) Cargar(ctx context.Context) error {
	if w.estado == EstadoFinalizada {
		return domain.ErrCasoFinalizado
	}

	caso := entity.CasoIdentificacion{IDOrden: w.idOrden}

	persona, err := w.api.ContactoCaso(ctx, w.idOrden)
	if err != nil {
		return fmt.Errorf("identificacion: contacto del caso %d: %w", w.idOrden, err)
	}
	if persona != nil {
		caso.Solicitante = *persona
	}

	resp, err := w.api.TraerCaso(ctx, w.idOrden)
	if err != nil {
		return fmt.Errorf("identificacion: cargar caso %d: %w", w.idOrden, err)
	}
	caso.Placa = resp.Placa
	caso.CedulaSolicitante = resp.Cedula
	caso.Observaciones = resp.Observaciones
	caso.Conclusiones = resp.Conclusiones

	// datos_vehiculo llega como string con JSON adentro; se decodifica en un
	// segundo paso. Un string vacío o corrupto se trata como caso sin ficha.
	if resp.DatosVehiculo != "" {
		var ficha entity.FichaVehiculo
		if err := json.Unmarshal([]byte(resp.DatosVehiculo), &ficha); err == nil {
			caso.Vehiculo = &ficha
		}
	}

	for _, f := range resp.FotosDetalle {
		caso.Fotos = append(caso.Fotos, entity.FotoDetalle{
			ID:          f.ID,
			Tipo:        entity.TipoFoto(f.Tipo),
			Path:        f.Path,
			Descripcion: f.Descripcion,
		})
	}

	w.caso = caso
	w.estado = EstadoEdicion
	return nil
}

// ActualizarBorrador reemplaza el borrador completo con la edición del
// operador. Las fotos y la orden son del servidor y se conservan las vigentes.
func (w *Workflow) ActualizarBorrador(c entity.CasoIdentificacion) error {
	switch w.estado {
	case EstadoCargando:
		return domain.ErrCasoNoCargado
	case EstadoFinalizada, EstadoFinalizando:
		return domain.ErrCasoFinalizado
	}
	c.IDOrden = w.idOrden
	c.Fotos = w.caso.Fotos
	w.caso = c
	return nil
}

// ConsultarANT consulta el registro vehicular por la placa del borrador.
//
// Éxito: la ficha pasa a autoritativa (descarta cualquier digitación manual
// previa) y se toma la cédula del propietario si viene. Fracaso (sin match o
// error de la consulta): la ficha cae a manual sembrada con la placa y el
// operador completa el resto a mano. La caída es unidireccional por intento;
// solo una consulta nueva puede re-promover el caso a autoritativo.
func (w *Workflow) ConsultarANT(ctx context.Context) (encontrado bool, err error) {
	if w.estado != EstadoEdicion {
		return false, domain.ErrCasoNoCargado
	}
	if w.caso.Placa == "" {
		return false, domain.ErrValidacion
	}

	resp, errANT := w.api.ConsultarANT(ctx, w.caso.Placa)
	if errANT != nil || resp == nil || !resp.Ok || resp.Vehiculo == nil {
		w.caerAManual()
		if errANT != nil {
			return false, fmt.Errorf("identificacion: consultar ANT: %w", errANT)
		}
		return false, nil
	}

	v := resp.Vehiculo
	ficha := entity.FichaAutoritativa(entity.DatosVehiculo{
		Placa:        w.caso.Placa,
		Marca:        v.Marca,
		Modelo:       v.Modelo,
		Anio:         v.Anio,
		PaisOrigen:   v.PaisOrigen,
		NumeroMotor:  v.NumeroMotor,
		NumeroChasis: v.NumeroChasis,
	})
	w.caso.Vehiculo = &ficha
	if resp.Propietario != nil && resp.Propietario.Cedula != "" {
		w.caso.CedulaDueno = resp.Propietario.Cedula
	}
	return true, nil
}

// caerAManual conserva lo ya digitado (si había ficha) y siembra la placa.
func (w *Workflow) caerAManual() {
	datos := entity.DatosVehiculo{}
	if w.caso.Vehiculo != nil {
		datos = w.caso.Vehiculo.Datos()
	}
	datos.Placa = w.caso.Placa
	ficha := entity.FichaManual(datos)
	w.caso.Vehiculo = &ficha
}

// Guardar persiste el borrador completo: sobreescritura idempotente, el
// último guardado gana, sin chequeo de concurrencia optimista. No cambia la
// fase del workflow y no exige campos llenos (guardar solo con la placa vale).
func (w *Workflow) Guardar(ctx context.Context) error {
	switch w.estado {
	case EstadoCargando:
		return domain.ErrCasoNoCargado
	case EstadoFinalizada, EstadoFinalizando:
		return domain.ErrCasoFinalizado
	}

	req := dto.GuardarCasoRequest{
		Placa:         w.caso.Placa,
		Cedula:        w.caso.CedulaSolicitante,
		Observaciones: w.caso.Observaciones,
		DatosCedula: dto.DatosCedulaDTO{
			Nombre:          strings.TrimSpace(w.caso.Solicitante.Nombres + " " + w.caso.Solicitante.Apellidos),
			TelefonoManual:  w.caso.Solicitante.Telefono,
			DireccionManual: w.caso.Solicitante.Direccion,
		},
	}
	if w.caso.Vehiculo != nil {
		datos, err := json.Marshal(w.caso.Vehiculo)
		if err != nil {
			return fmt.Errorf("identificacion: serializar ficha: %w", err)
		}
		req.DatosVehiculo = datos
	}

	if err := w.api.GuardarCaso(ctx, w.idOrden, req); err != nil {
		return fmt.Errorf("identificacion: guardar caso %d: %w", w.idOrden, err)
	}
	return nil
}

// CapturarFoto sube la foto del slot en una goroutine independiente, al
// estilo dispara-y-olvida: no hay barrera antes de Guardar ni de Finalizar y
// un fallo no revierte otras subidas. El resultado se observa por alTerminar
// (puede ser nil) y queda en el log. Solo captura en edición: un caso
// finalizado es de solo lectura también para su evidencia.
func (w *Workflow) CapturarFoto(ctx context.Context, tipo entity.TipoFoto, nombre string, contenido io.Reader, descripcion string, alTerminar func(entity.TipoFoto, error)) error {
	switch w.estado {
	case EstadoCargando:
		return domain.ErrCasoNoCargado
	case EstadoFinalizada, EstadoFinalizando:
		return domain.ErrCasoFinalizado
	}
	if nombre == "" {
		nombre = uuid.New().String() + ".jpg"
	}
	go func() {
		err := w.api.SubirFoto(ctx, w.idOrden, tipo, nombre, contenido, descripcion)
		if err != nil {
			w.log.Warn().Err(err).Int("id_orden", w.idOrden).Str("tipo", string(tipo)).Msg("subida de foto falló")
		} else {
			w.log.Debug().Int("id_orden", w.idOrden).Str("tipo", string(tipo)).Msg("foto subida")
		}
		if alTerminar != nil {
			alTerminar(tipo, err)
		}
	}()
	return nil
}

// GuardarDescripcionFoto actualiza la descripción de una foto ya subida.
func (w *Workflow) GuardarDescripcionFoto(ctx context.Context, idFoto int, descripcion string) error {
	if err := w.api.GuardarDescripcionFoto(ctx, idFoto, descripcion); err != nil {
		return fmt.Errorf("identificacion: descripción de foto %d: %w", idFoto, err)
	}
	return nil
}

// Finalizar envía las conclusiones y marca el caso terminal del lado del
// servidor. Es de una sola vía: no hay deshacer; después solo queda el menú
// post-finalización. Que los 7 slots tengan foto es exigencia del proceso de
// negocio, no de este paso.
func (w *Workflow) Finalizar(ctx context.Context, conclusiones string) ([]OpcionPostFinalizar, error) {
	switch w.estado {
	case EstadoCargando:
		return nil, domain.ErrCasoNoCargado
	case EstadoFinalizada, EstadoFinalizando:
		return nil, domain.ErrCasoFinalizado
	}

	w.estado = EstadoFinalizando
	if err := w.api.FinalizarCaso(ctx, w.idOrden, conclusiones); err != nil {
		// El caso sigue editable: el operador corrige y reintenta
		w.estado = EstadoEdicion
		return nil, fmt.Errorf("identificacion: finalizar caso %d: %w", w.idOrden, err)
	}
	w.caso.Conclusiones = conclusiones
	w.estado = EstadoFinalizada

	return []OpcionPostFinalizar{OpcionVerDocumento, OpcionVolverALista}, nil
}

// URLPDF URL firmada del documento del caso (el render lo hace el servidor).
func (w *Workflow) URLPDF() string {
	return w.api.URLPDF(w.idOrden)
}
