package identificacion_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/application/identificacion"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
	"github.com/pqautoexpert/suite360-movil/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto API
// ──────────────────────────────────────────────────────────────────────────────

type identAPIFake struct {
	contacto *entity.Persona
	caso     *dto.CasoResponse
	ant      *dto.ConsultaANTResponse
	antErr   error

	guardado     *dto.GuardarCasoRequest
	guardados    int
	finalizarErr error
	conclusiones string
	fotos        []string
}

func (f *identAPIFake) ContactoCaso(ctx context.Context, idOrden int) (*entity.Persona, error) {
	return f.contacto, nil
}

func (f *identAPIFake) TraerCaso(ctx context.Context, idOrden int) (*dto.CasoResponse, error) {
	if f.caso == nil {
		return &dto.CasoResponse{Envelope: dto.Envelope{Ok: true}}, nil
	}
	return f.caso, nil
}

func (f *identAPIFake) ConsultarANT(ctx context.Context, placa string) (*dto.ConsultaANTResponse, error) {
	return f.ant, f.antErr
}

func (f *identAPIFake) GuardarCaso(ctx context.Context, idOrden int, in dto.GuardarCasoRequest) error {
	f.guardado = &in
	f.guardados++
	return nil
}

func (f *identAPIFake) FinalizarCaso(ctx context.Context, idOrden int, conclusiones string) error {
	if f.finalizarErr != nil {
		return f.finalizarErr
	}
	f.conclusiones = conclusiones
	return nil
}

func (f *identAPIFake) SubirFoto(ctx context.Context, idOrden int, tipo entity.TipoFoto, nombre string, contenido io.Reader, descripcion string) error {
	f.fotos = append(f.fotos, string(tipo)+"/"+nombre)
	return nil
}

func (f *identAPIFake) GuardarDescripcionFoto(ctx context.Context, idFoto int, descripcion string) error {
	return nil
}

func (f *identAPIFake) URLPDF(idOrden int) string {
	return "https://example.test/identificacion/pdf/48?token=abc"
}

func workflowCargado(t *testing.T, api *identAPIFake) *identificacion.Workflow {
	t.Helper()
	w := identificacion.NewWorkflow(api, logger.Nop(), 48)
	require.NoError(t, w.Cargar(context.Background()))
	require.Equal(t, identificacion.EstadoEdicion, w.Estado())
	return w
}

func antEncontrado() *dto.ConsultaANTResponse {
	return &dto.ConsultaANTResponse{
		Envelope: dto.Envelope{Ok: true},
		Vehiculo: &dto.VehiculoANTDTO{
			Marca:        "Chevrolet",
			Modelo:       "Sail",
			Anio:         "2019",
			PaisOrigen:   "Ecuador",
			NumeroMotor:  "M-123",
			NumeroChasis: "CH-456",
		},
		Propietario: &dto.PropietarioANTDTO{Cedula: "0912345678"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cargar
// ──────────────────────────────────────────────────────────────────────────────

func TestCargar_RehidrataElCaso(t *testing.T) {
	ficha := entity.FichaManual(entity.DatosVehiculo{Placa: "ABC-1234", Marca: "Kia"})
	datos, err := json.Marshal(ficha)
	require.NoError(t, err)

	api := &identAPIFake{
		contacto: &entity.Persona{Cedula: "0912345678", Nombres: "Juan", Apellidos: "Pérez"},
		caso: &dto.CasoResponse{
			Envelope:      dto.Envelope{Ok: true},
			Placa:         "ABC-1234",
			Cedula:        "0912345678",
			Observaciones: "vehículo con golpe lateral",
			// datos_vehiculo viaja como string con JSON adentro
			DatosVehiculo: string(datos),
			FotosDetalle: []dto.FotoDetalleDTO{
				{ID: 9, Tipo: "motor", Path: "/fotos/9.jpg", Descripcion: "serie visible"},
			},
		},
	}
	w := workflowCargado(t, api)

	caso := w.Caso()
	assert.Equal(t, "ABC-1234", caso.Placa)
	assert.Equal(t, "Juan", caso.Solicitante.Nombres)
	require.NotNil(t, caso.Vehiculo)
	assert.True(t, caso.Vehiculo.EsManual(), "la ficha guardada era manual")
	assert.Equal(t, "Kia", caso.Vehiculo.Datos().Marca)

	fotos := caso.FotosDeTipo(entity.FotoMotor)
	require.Len(t, fotos, 1)
	assert.Equal(t, 9, fotos[0].ID)
	assert.Empty(t, caso.FotosDeTipo(entity.FotoChasis))
}

// datos_vehiculo vacío o corrupto: caso sin ficha, no error.
func TestCargar_DatosVehiculoCorrupto(t *testing.T) {
	api := &identAPIFake{caso: &dto.CasoResponse{
		Envelope:      dto.Envelope{Ok: true},
		Placa:         "ABC-1234",
		DatosVehiculo: "{no es json",
	}}
	w := workflowCargado(t, api)

	assert.Nil(t, w.Caso().Vehiculo)
}

// Antes de cargar, editar/guardar/finalizar fallan local.
func TestOperacionesAntesDeCargar(t *testing.T) {
	w := identificacion.NewWorkflow(&identAPIFake{}, logger.Nop(), 48)
	require.Equal(t, identificacion.EstadoCargando, w.Estado())

	assert.ErrorIs(t, w.ActualizarBorrador(entity.CasoIdentificacion{}), domain.ErrCasoNoCargado)
	assert.ErrorIs(t, w.Guardar(context.Background()), domain.ErrCasoNoCargado)
	_, err := w.Finalizar(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrCasoNoCargado)
	_, err = w.ConsultarANT(context.Background())
	assert.ErrorIs(t, err, domain.ErrCasoNoCargado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta ANT y fallback manual
// ──────────────────────────────────────────────────────────────────────────────

func TestConsultarANT_ExitoPromueveAAutoritativa(t *testing.T) {
	api := &identAPIFake{ant: antEncontrado()}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "ABC-1234"
	require.NoError(t, w.ActualizarBorrador(caso))

	encontrado, err := w.ConsultarANT(context.Background())
	require.NoError(t, err)
	assert.True(t, encontrado)

	caso = w.Caso()
	require.NotNil(t, caso.Vehiculo)
	assert.False(t, caso.Vehiculo.EsManual(), "la ficha de la ANT es autoritativa")
	assert.Equal(t, "Chevrolet", caso.Vehiculo.Datos().Marca)
	assert.Equal(t, "ABC-1234", caso.Vehiculo.Datos().Placa)
	assert.Equal(t, "0912345678", caso.CedulaDueno, "la cédula del propietario se toma de la ANT")
}

// Sin match: la ficha cae a manual sembrada con la placa, sin error.
func TestConsultarANT_SinMatchCaeAManual(t *testing.T) {
	api := &identAPIFake{ant: &dto.ConsultaANTResponse{Envelope: dto.Envelope{Ok: false, Msg: "no registrado"}}}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "XYZ-9999"
	require.NoError(t, w.ActualizarBorrador(caso))

	encontrado, err := w.ConsultarANT(context.Background())
	require.NoError(t, err, "sin match no es error: dispara el ingreso manual")
	assert.False(t, encontrado)

	caso = w.Caso()
	require.NotNil(t, caso.Vehiculo)
	assert.True(t, caso.Vehiculo.EsManual())
	assert.Equal(t, "XYZ-9999", caso.Vehiculo.Datos().Placa, "la placa se siembra en la ficha manual")
}

// Error de transporte: también cae a manual, pero el error sí se reporta.
// Lo ya digitado se conserva.
func TestConsultarANT_ErrorConservaLoDigitado(t *testing.T) {
	api := &identAPIFake{antErr: errors.New("timeout")}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "XYZ-9999"
	ficha := entity.FichaManual(entity.DatosVehiculo{Placa: "XYZ-9999", Marca: "Kia", NumeroMotor: "M-7"})
	caso.Vehiculo = &ficha
	require.NoError(t, w.ActualizarBorrador(caso))

	encontrado, err := w.ConsultarANT(context.Background())
	require.Error(t, err)
	assert.False(t, encontrado)

	datos := w.Caso().Vehiculo.Datos()
	assert.Equal(t, "Kia", datos.Marca, "el fallback no borra lo ya digitado")
	assert.Equal(t, "M-7", datos.NumeroMotor)
}

// La caída a manual es por intento: una consulta nueva con match re-promueve
// la ficha a autoritativa.
func TestConsultarANT_ReconsultaRepromueve(t *testing.T) {
	api := &identAPIFake{ant: &dto.ConsultaANTResponse{Envelope: dto.Envelope{Ok: false}}}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "ABC-1234"
	require.NoError(t, w.ActualizarBorrador(caso))

	_, err := w.ConsultarANT(context.Background())
	require.NoError(t, err)
	require.True(t, w.Caso().Vehiculo.EsManual())

	api.ant = antEncontrado()
	encontrado, err := w.ConsultarANT(context.Background())
	require.NoError(t, err)
	assert.True(t, encontrado)
	assert.False(t, w.Caso().Vehiculo.EsManual())
}

func TestConsultarANT_SinPlacaFallaLocal(t *testing.T) {
	w := workflowCargado(t, &identAPIFake{})
	_, err := w.ConsultarANT(context.Background())
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardar
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardar_EnviaBorradorCompleto(t *testing.T) {
	api := &identAPIFake{contacto: &entity.Persona{
		Nombres: "Juan", Apellidos: "Pérez", Telefono: "0991234567", Direccion: "Av. Principal",
	}}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "ABC-1234"
	caso.CedulaSolicitante = "0912345678"
	caso.Observaciones = "sin novedad"
	ficha := entity.FichaManual(entity.DatosVehiculo{Placa: "ABC-1234", Marca: "Kia"})
	caso.Vehiculo = &ficha
	require.NoError(t, w.ActualizarBorrador(caso))

	require.NoError(t, w.Guardar(context.Background()))
	require.NotNil(t, api.guardado)

	assert.Equal(t, "ABC-1234", api.guardado.Placa)
	assert.Equal(t, "Juan Pérez", api.guardado.DatosCedula.Nombre)
	assert.Equal(t, "0991234567", api.guardado.DatosCedula.TelefonoManual)

	var ronda entity.FichaVehiculo
	require.NoError(t, json.Unmarshal(api.guardado.DatosVehiculo, &ronda))
	assert.True(t, ronda.EsManual(), "la bandera manual debe sobrevivir la serialización")
	assert.Equal(t, "Kia", ronda.Datos().Marca)

	// Idempotente: repetir el guardado no cambia la fase ni el cuerpo
	require.NoError(t, w.Guardar(context.Background()))
	assert.Equal(t, 2, api.guardados)
	assert.Equal(t, identificacion.EstadoEdicion, w.Estado())
}

// Guardar solo con la placa vale: no se exige el borrador completo.
func TestGuardar_ParcialVale(t *testing.T) {
	api := &identAPIFake{}
	w := workflowCargado(t, api)

	caso := w.Caso()
	caso.Placa = "ABC-1234"
	require.NoError(t, w.ActualizarBorrador(caso))

	require.NoError(t, w.Guardar(context.Background()))
	assert.Empty(t, api.guardado.DatosVehiculo, "sin ficha no viaja datos_vehiculo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fotos
// ──────────────────────────────────────────────────────────────────────────────

// La subida es dispara-y-olvida: el resultado llega por el callback y no
// bloquea nada.
func TestCapturarFoto_NotificaPorCallback(t *testing.T) {
	api := &identAPIFake{}
	w := workflowCargado(t, api)

	hecho := make(chan error, 1)
	err := w.CapturarFoto(context.Background(), entity.FotoMotor, "motor.jpg",
		bytes.NewReader([]byte("jpeg")), "serie visible",
		func(tipo entity.TipoFoto, err error) {
			assert.Equal(t, entity.FotoMotor, tipo)
			hecho <- err
		})
	require.NoError(t, err)

	select {
	case err := <-hecho:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("el callback de la foto nunca llegó")
	}
	require.Len(t, api.fotos, 1)
	assert.Equal(t, "motor/motor.jpg", api.fotos[0])
}

func TestCapturarFoto_NombrePorDefecto(t *testing.T) {
	api := &identAPIFake{}
	w := workflowCargado(t, api)

	hecho := make(chan struct{})
	err := w.CapturarFoto(context.Background(), entity.FotoChasis, "",
		strings.NewReader("jpeg"), "",
		func(entity.TipoFoto, error) { close(hecho) })
	require.NoError(t, err)

	select {
	case <-hecho:
	case <-time.After(2 * time.Second):
		t.Fatal("el callback de la foto nunca llegó")
	}
	require.Len(t, api.fotos, 1)
	assert.True(t, strings.HasSuffix(api.fotos[0], ".jpg"), "el nombre generado termina en .jpg")
}

// La captura respeta la fase igual que las demás mutaciones: nada se sube
// antes de cargar ni después de finalizar.
func TestCapturarFoto_FueraDeEdicion(t *testing.T) {
	api := &identAPIFake{}

	w := identificacion.NewWorkflow(api, logger.Nop(), 48)
	err := w.CapturarFoto(context.Background(), entity.FotoMotor, "motor.jpg",
		strings.NewReader("jpeg"), "", nil)
	assert.ErrorIs(t, err, domain.ErrCasoNoCargado)

	w = workflowCargado(t, api)
	_, err = w.Finalizar(context.Background(), "ok")
	require.NoError(t, err)

	err = w.CapturarFoto(context.Background(), entity.FotoMotor, "motor.jpg",
		strings.NewReader("jpeg"), "", nil)
	assert.ErrorIs(t, err, domain.ErrCasoFinalizado)

	assert.Empty(t, api.fotos, "fuera de edición nada debe llegar al servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalizar
// ──────────────────────────────────────────────────────────────────────────────

// Finalizar no exige los 7 slots con foto: esa exigencia es del proceso de
// negocio, no del software.
func TestFinalizar_SinFotosIgualFinaliza(t *testing.T) {
	api := &identAPIFake{}
	w := workflowCargado(t, api)

	opciones, err := w.Finalizar(context.Background(), "sin novedades")
	require.NoError(t, err)

	assert.Equal(t, identificacion.EstadoFinalizada, w.Estado())
	assert.Equal(t, "sin novedades", api.conclusiones)
	assert.Equal(t, []identificacion.OpcionPostFinalizar{
		identificacion.OpcionVerDocumento,
		identificacion.OpcionVolverALista,
	}, opciones)
}

// Tras finalizar no hay deshacer: editar, guardar o re-finalizar se rechazan.
func TestFinalizar_EsTerminal(t *testing.T) {
	w := workflowCargado(t, &identAPIFake{})

	_, err := w.Finalizar(context.Background(), "ok")
	require.NoError(t, err)

	assert.ErrorIs(t, w.ActualizarBorrador(entity.CasoIdentificacion{}), domain.ErrCasoFinalizado)
	assert.ErrorIs(t, w.Guardar(context.Background()), domain.ErrCasoFinalizado)
	_, err = w.Finalizar(context.Background(), "otra vez")
	assert.ErrorIs(t, err, domain.ErrCasoFinalizado)
}

// Un fallo del servidor devuelve el caso a edición para corregir y reintentar.
func TestFinalizar_FalloVuelveAEdicion(t *testing.T) {
	api := &identAPIFake{finalizarErr: errors.New("timeout")}
	w := workflowCargado(t, api)

	_, err := w.Finalizar(context.Background(), "ok")
	require.Error(t, err)
	assert.Equal(t, identificacion.EstadoEdicion, w.Estado())

	api.finalizarErr = nil
	_, err = w.Finalizar(context.Background(), "ok")
	assert.NoError(t, err, "el reintento debe pasar")
}

func TestURLPDF(t *testing.T) {
	w := identificacion.NewWorkflow(&identAPIFake{}, logger.Nop(), 48)
	assert.Contains(t, w.URLPDF(), "token=", "la URL del documento va firmada con el token")
}
