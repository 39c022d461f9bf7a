package billing

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// ProformaAPI puerto hacia los endpoints de proforma directa.
type ProformaAPI interface {
	BuscarPersonas(ctx context.Context, texto string) ([]entity.Persona, error)
	CrearProforma(ctx context.Context, in dto.CrearProformaRequest) error
}

// BorradorProforma borrador de una proforma directa: cliente, vehículo,
// servicio elegido e ítems, todo en un solo paso. Es un valor que la pantalla
// reemplaza completo en cada edición.
type BorradorProforma struct {
	Cedula    string
	Nombre    string
	Apellido  string
	Telefono  string
	Direccion string
	Placa     string

	Servicio    *entity.Servicio
	Subservicio *entity.Subservicio
	Items       []entity.ItemFactura
}

// ConPersona devuelve el borrador con los datos del cliente elegido del
// autocompletado.
func (b BorradorProforma) ConPersona(p entity.Persona) BorradorProforma {
	b.Cedula = p.Cedula
	b.Nombre = p.Nombres
	b.Apellido = p.Apellidos
	b.Telefono = p.Telefono
	b.Direccion = p.Direccion
	return b
}

// MismosDatos limpia ítems y selección de servicio conservando el cliente:
// "crear otro servicio con los mismos datos".
func (b BorradorProforma) MismosDatos() BorradorProforma {
	b.Items = nil
	b.Servicio = nil
	b.Subservicio = nil
	return b
}

// ProformaUseCase crea proformas directas.
type ProformaUseCase struct {
	api ProformaAPI
}

// NewProformaUseCase construye el caso de uso.
func NewProformaUseCase(api ProformaAPI) *ProformaUseCase {
	return &ProformaUseCase{api: api}
}

// BuscarPersonas autocompletado por cédula. Con menos de 3 caracteres devuelve
// vacío sin tocar la red.
func (uc *ProformaUseCase) BuscarPersonas(ctx context.Context, texto string) ([]entity.Persona, error) {
	if utf8.RuneCountInString(texto) < 3 {
		return nil, nil
	}
	personas, err := uc.api.BuscarPersonas(ctx, texto)
	if err != nil {
		return nil, fmt.Errorf("proforma: buscar personas: %w", err)
	}
	return personas, nil
}

// Crear envía la proforma. El total de cada línea se deriva de
// cantidad×precio al armar el cuerpo; jamás se toma de un campo editable.
func (uc *ProformaUseCase) Crear(ctx context.Context, b BorradorProforma) error {
	if len(b.Items) == 0 {
		return domain.ErrValidacion
	}
	req := dto.CrearProformaRequest{
		NombreCliente:   b.Nombre,
		ApellidoCliente: b.Apellido,
		TelefonoCliente: b.Telefono,
		Direccion:       b.Direccion,
		Placa:           b.Placa,
		NumeroCedula:    b.Cedula,
		Items:           make([]dto.ItemProformaDTO, 0, len(b.Items)),
	}
	if b.Servicio != nil {
		req.IDService = &b.Servicio.ID
	}
	if b.Subservicio != nil {
		req.IDSubservice = &b.Subservicio.ID
	}
	for _, item := range b.Items {
		req.Items = append(req.Items, dto.ItemProformaDTO{
			Descripcion:    item.Descripcion,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.Precio,
			Total:          item.Base(),
		})
	}
	if err := uc.api.CrearProforma(ctx, req); err != nil {
		return fmt.Errorf("proforma: crear: %w", err)
	}
	return nil
}
